package get_bathhouses

import "github.com/mkorchagin/bathhouse-booking/internal/domain"

// BathhouseResponse HTTP-модель бани
type BathhouseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

// BathhouseListResponse HTTP response model
type BathhouseListResponse struct {
	Bathhouses []BathhouseResponse `json:"bathhouses"`
}

// FromDomainList конвертирует список domain моделей в HTTP response
func FromDomainList(bathhouses []*domain.Bathhouse) *BathhouseListResponse {
	resp := &BathhouseListResponse{
		Bathhouses: make([]BathhouseResponse, 0, len(bathhouses)),
	}

	for _, b := range bathhouses {
		resp.Bathhouses = append(resp.Bathhouses, BathhouseResponse{
			ID:       b.ID,
			Name:     b.Name,
			Capacity: b.Capacity,
		})
	}

	return resp
}
