package create_vehicle_type

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateVehicleType(ctx context.Context, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
