package create_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные цены"
	msgPricingConflict    = "цена для этого направления уже задана"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /admin/pricing - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrPricingConflict):
			h.logger.Warn("POST /admin/pricing - Key already priced: service_id=%s, vehicle_type_id=%s",
				req.ServiceID, req.VehicleTypeID)
			handlers.RespondConflict(w, msgPricingConflict)

		default:
			h.logger.Error("POST /admin/pricing - Failed to create pricing: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/pricing - Pricing created: pricing_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
