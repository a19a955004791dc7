package middleware

import (
	"context"
	"net/http"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

const (
	headerAdminID = "X-Admin-ID"

	msgMissingAdminID = "отсутствует идентификатор администратора"
	msgNotAdmin       = "операция доступна только администратору"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// ConfigProvider интерфейс провайдера бизнес-конфигурации
type ConfigProvider interface {
	GetString(ctx context.Context, key string, def string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth middleware для админских операций: сверяет заголовок
// X-Admin-ID со значением TELEGRAM_ADMIN_ID из бизнес-конфигурации
type AdminAuth struct {
	configs ConfigProvider
	logger  Logger
}

// NewAdminAuth создает новый экземпляр middleware авторизации администратора
func NewAdminAuth(configs ConfigProvider, logger Logger) *AdminAuth {
	return &AdminAuth{
		configs: configs,
		logger:  logger,
	}
}

// Middleware оборачивает обработчик проверкой прав администратора
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(headerAdminID)
		if adminID == "" {
			a.logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, headerAdminID)
			handlers.RespondUnauthorized(w, msgMissingAdminID)
			return
		}

		expected := a.configs.GetString(r.Context(), domain.ConfigKeyTelegramAdminID, "")
		if expected == "" || adminID != expected {
			a.logger.Warn("%s %s - admin access denied for id=%s", r.Method, r.URL.Path, adminID)
			handlers.RespondForbidden(w, msgNotAdmin)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID возвращает идентификатор администратора из контекста запроса
func GetAdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok
}
