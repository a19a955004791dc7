package create_booking

import (
	"errors"
	"net/http"

	"github.com/mkorchagin/bathhouse-booking/internal/api/handlers"
	createBooking "github.com/mkorchagin/bathhouse-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат времени, ожидается RFC 3339"
	msgClientNotFound     = "клиент не найден"
	msgBathhouseNotFound  = "баня не найдена"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgLimitExceeded      = "превышен лимит активных бронирований"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrBathhouseNotFound):
			h.logger.Warn("POST /bookings - Bathhouse not found: bathhouse_id=%d", req.BathhouseID)
			handlers.RespondNotFound(w, msgBathhouseNotFound)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: client_id=%d, bathhouse_id=%d", req.ClientID, req.BathhouseID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrLimitExceeded):
			h.logger.Warn("POST /bookings - Active bookings limit exceeded: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgLimitExceeded)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, bathhouse_id=%d, error=%v",
				req.ClientID, req.BathhouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client_id=%d, bathhouse_id=%d",
		result.ID, req.ClientID, req.BathhouseID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
