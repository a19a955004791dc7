package sysconfig

import (
	"context"

	sysconfigRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/sysconfig"
)

// ConfigRepository интерфейс репозитория системной конфигурации
type ConfigRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	Upsert(ctx context.Context, entry sysconfigRepo.Entry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
