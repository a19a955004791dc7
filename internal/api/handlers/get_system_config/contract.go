package get_system_config

import "context"

type ConfigService interface {
	GetValue(ctx context.Context, key string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
