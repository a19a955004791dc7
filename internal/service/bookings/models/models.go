package models

import (
	"errors"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// RejectBookingRequest запрос на отклонение бронирования
type RejectBookingRequest struct {
	BookingID int64  `json:"bookingId"`
	Reason    string `json:"reason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования.
// Времена отдаются в UTC (RFC 3339), локализация на стороне фронтенда.
type BookingResponse struct {
	ID               int64     `json:"id"`
	ClientID         int64     `json:"clientId"`
	BathhouseID      int64     `json:"bathhouseId"`
	StartDatetime    time.Time `json:"startDatetime"`
	EndDatetime      time.Time `json:"endDatetime"`
	Status           string    `json:"status"`
	PriceTotal       *int64    `json:"priceTotal,omitempty"`
	PrepaymentAmount *int64    `json:"prepaymentAmount,omitempty"`
	Comment          string    `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		ClientID:         b.ClientID,
		BathhouseID:      b.BathhouseID,
		StartDatetime:    b.StartDatetime,
		EndDatetime:      b.EndDatetime,
		Status:           string(b.Status),
		PriceTotal:       b.PriceTotal,
		PrepaymentAmount: b.PrepaymentAmount,
		Comment:          b.Comment,
		CreatedAt:        b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
