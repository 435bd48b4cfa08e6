package delete_field

import "context"

type CatalogService interface {
	DeleteField(ctx context.Context, serviceID, fieldID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
