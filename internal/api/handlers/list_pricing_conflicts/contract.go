package list_pricing_conflicts

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

type PricingService interface {
	ListConflicts(ctx context.Context) (*models.ConflictListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
