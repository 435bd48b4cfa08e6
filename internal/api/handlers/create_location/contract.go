package create_location

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
