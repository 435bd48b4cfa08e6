package list_pricing

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

type PricingService interface {
	List(ctx context.Context, req *models.ListPricingRequest) (*models.PricingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
