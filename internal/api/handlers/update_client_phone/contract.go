package update_client_phone

import "context"

type ClientService interface {
	UpdatePhone(ctx context.Context, id int64, phone string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
