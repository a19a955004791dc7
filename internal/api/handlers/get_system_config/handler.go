package get_system_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/service/sysconfig"
)

const (
	msgInvalidKey = "некорректный ключ конфигурации"
	msgNotFound   = "ключ конфигурации не найден"
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

// Handle GET /api/v1/config/{key}
// Публичный endpoint: бот читает отсюда PAYMENT_INSTRUCTION и
// прочие клиентские настройки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := strings.TrimSpace(vars["key"])
	if key == "" {
		h.logger.Warn("GET /config/{key} - Empty config key")
		handlers.RespondBadRequest(w, msgInvalidKey)
		return
	}

	value, err := h.service.GetValue(r.Context(), key)
	if err != nil {
		if errors.Is(err, sysconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /config/{key} - Key not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /config/{key} - Failed to get value: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config/{key} - Value retrieved: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, ConfigResponse{Key: key, Value: value})
}
