package upsert_client

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

type ClientService interface {
	GetOrCreateByTelegramID(ctx context.Context, telegramID, name string) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
