package get_free_intervals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	getFreeIntervals "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_free_intervals"
)

const (
	msgInvalidBathhouseID = "некорректный ID бани"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMergeGap    = "некорректное значение merge_gap"
	msgBathhouseNotFound  = "баня не найдена"
)

type Handler struct {
	useCase GetFreeIntervalsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeIntervalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bathhouses/{bathhouseId}/free-intervals?date=YYYY-MM-DD&merge_gap=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bathhouseID, err := strconv.ParseInt(vars["bathhouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bathhouses/{id}/free-intervals - Invalid bathhouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBathhouseID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bathhouses/{id}/free-intervals - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	mergeGap := 0
	if raw := r.URL.Query().Get("merge_gap"); raw != "" {
		mergeGap, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bathhouses/{id}/free-intervals - Invalid merge_gap: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMergeGap)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeIntervals.Request{
		BathhouseID:     bathhouseID,
		Date:            date,
		MergeGapMinutes: mergeGap,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeIntervals.ErrBathhouseNotFound):
			h.logger.Warn("GET /bathhouses/{id}/free-intervals - Bathhouse not found: bathhouse_id=%d", bathhouseID)
			handlers.RespondNotFound(w, msgBathhouseNotFound)

		case errors.Is(err, getFreeIntervals.ErrInvalidInput):
			h.logger.Warn("GET /bathhouses/{id}/free-intervals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMergeGap)

		default:
			h.logger.Error("GET /bathhouses/{id}/free-intervals - Failed: bathhouse_id=%d, error=%v", bathhouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
