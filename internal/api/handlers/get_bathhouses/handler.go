package get_bathhouses

import (
	"net/http"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
)

type Handler struct {
	provider BathhouseProvider
	logger   Logger
}

func NewHandler(provider BathhouseProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/bathhouses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bathhouses, err := h.provider.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /bathhouses - Failed to list bathhouses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(bathhouses))
}
