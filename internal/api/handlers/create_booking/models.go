package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/mkorchagin/bathhouse-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID      int64   `json:"clientId"`
	BathhouseID   int64   `json:"bathhouseId"`
	StartDatetime string  `json:"startDatetime"` // RFC 3339
	EndDatetime   string  `json:"endDatetime"`   // RFC 3339
	Comment       *string `json:"comment,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"clientId"`
	BathhouseID   int64  `json:"bathhouseId"`
	StartDatetime string `json:"startDatetime"`
	EndDatetime   string `json:"endDatetime"`
	Status        string `json:"status"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("invalid startDatetime: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("invalid endDatetime: %w", err)
	}

	return &createBooking.Request{
		ClientID:    r.ClientID,
		BathhouseID: r.BathhouseID,
		StartUTC:    start.UTC(),
		EndUTC:      end.UTC(),
		Comment:     r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ClientID:      resp.ClientID,
		BathhouseID:   resp.BathhouseID,
		StartDatetime: resp.StartUTC.Format(time.RFC3339),
		EndDatetime:   resp.EndUTC.Format(time.RFC3339),
		Status:        resp.Status,
		Comment:       resp.Comment,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
