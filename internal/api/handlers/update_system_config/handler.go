package update_system_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/service/sysconfig"
)

const (
	msgInvalidKey         = "некорректный ключ конфигурации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "ключ конфигурации не найден"
	msgInvalidValue       = "некорректное значение конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config/{key}
// Только для администратора (X-Admin-ID проверяет middleware).
// Обновляет значение существующего ключа, новые ключи не создает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := strings.TrimSpace(vars["key"])
	if key == "" {
		h.logger.Warn("PUT /config/{key} - Empty config key")
		handlers.RespondBadRequest(w, msgInvalidKey)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/{key} - Invalid request body: key=%s, error=%v", key, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetValue(r.Context(), key, req.Value); err != nil {
		switch {
		case errors.Is(err, sysconfig.ErrConfigNotFound):
			h.logger.Warn("PUT /config/{key} - Key not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sysconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config/{key} - Invalid value: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PUT /config/{key} - Failed to set value: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config/{key} - Value updated: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, ConfigResponse{Key: key, Value: req.Value})
}
