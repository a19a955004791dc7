package get_free_intervals

import (
	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	getFreeIntervals "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_free_intervals"
)

// IntervalResponse HTTP-модель свободного интервала в локальном времени бани
type IntervalResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "14:00"
}

// FreeIntervalsResponse HTTP response model
type FreeIntervalsResponse struct {
	BathhouseID int64              `json:"bathhouseId"`
	Date        string             `json:"date"` // "2025-10-15"
	Intervals   []IntervalResponse `json:"intervals"`
	Summary     string             `json:"summary,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeIntervals.Response) *FreeIntervalsResponse {
	out := &FreeIntervalsResponse{
		BathhouseID: resp.BathhouseID,
		Date:        resp.Date.Format(domain.DateFormat),
		Intervals:   make([]IntervalResponse, 0, len(resp.Intervals)),
		Summary:     resp.Summary,
	}

	for _, interval := range resp.Intervals {
		out.Intervals = append(out.Intervals, IntervalResponse{
			Start: interval.Start.Format(domain.TimeFormat),
			End:   interval.End.Format(domain.TimeFormat),
		})
	}

	return out
}
