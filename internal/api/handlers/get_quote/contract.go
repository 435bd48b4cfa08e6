package get_quote

import (
	"context"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

type PricingService interface {
	Quote(ctx context.Context, key domain.PricingKey) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
