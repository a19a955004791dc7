package get_available_slots

import (
	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	getAvailableSlots "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP-модель слота в локальном времени бани
type SlotResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "12:00"
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	BathhouseID int64          `json:"bathhouseId"`
	Date        string         `json:"date"` // "2025-10-15"
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		BathhouseID: resp.BathhouseID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start: slot.Start.Format(domain.TimeFormat),
			End:   slot.End.Format(domain.TimeFormat),
		})
	}

	return out
}
