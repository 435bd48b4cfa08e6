package update_pricing

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

type PricingService interface {
	Update(ctx context.Context, id string, req *models.PricingRequest) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
