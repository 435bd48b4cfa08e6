package create_field

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateField(ctx context.Context, serviceID string, req *models.FieldRequest) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
