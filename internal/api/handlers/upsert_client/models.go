package upsert_client

import (
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// UpsertClientRequest HTTP request model
type UpsertClientRequest struct {
	TelegramID string `json:"telegramId"`
	Name       string `json:"name,omitempty"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	TelegramID *string `json:"telegramId,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// FromDomainClient конвертирует domain модель в HTTP response
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		TelegramID: c.TelegramID,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}
