package update_system_config

import "context"

type ConfigService interface {
	SetValue(ctx context.Context, key, value string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
