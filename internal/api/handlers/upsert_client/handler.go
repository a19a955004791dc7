package upsert_client

import (
	"errors"
	"net/http"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTelegramID  = "отсутствует идентификатор Telegram"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpsertClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.GetOrCreateByTelegramID(r.Context(), req.TelegramID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Missing telegram ID")
			handlers.RespondBadRequest(w, msgMissingTelegramID)

		default:
			h.logger.Error("POST /clients - Failed: telegram_id=%s, error=%v", req.TelegramID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client resolved: client_id=%d, telegram_id=%s", client.ID, req.TelegramID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(client))
}
