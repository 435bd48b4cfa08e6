package get_service

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

type CatalogService interface {
	GetService(ctx context.Context, id string) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
