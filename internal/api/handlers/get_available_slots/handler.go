package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	getAvailableSlots "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidBathhouseID = "некорректный ID бани"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBathhouseNotFound  = "баня не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bathhouses/{bathhouseId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bathhouseID, err := strconv.ParseInt(vars["bathhouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bathhouses/{id}/available-slots - Invalid bathhouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBathhouseID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bathhouses/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BathhouseID: bathhouseID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBathhouseNotFound):
			h.logger.Warn("GET /bathhouses/{id}/available-slots - Bathhouse not found: bathhouse_id=%d", bathhouseID)
			handlers.RespondNotFound(w, msgBathhouseNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bathhouses/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bathhouses/{id}/available-slots - Failed: bathhouse_id=%d, error=%v", bathhouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
