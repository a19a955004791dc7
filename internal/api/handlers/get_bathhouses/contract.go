package get_bathhouses

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

type BathhouseProvider interface {
	ListActive(ctx context.Context) ([]*domain.Bathhouse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
