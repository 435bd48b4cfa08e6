package update_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные цены"
	msgNotFound           = "цена не найдена"
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

// Handle PUT /api/admin/pricing/{pricingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pricingID := mux.Vars(r)["pricingId"]

	var req models.PricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/pricing/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), pricingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("PUT /admin/pricing/{id} - Invalid input: pricing_id=%s, error=%v", pricingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrPricingNotFound):
			h.logger.Warn("PUT /admin/pricing/{id} - Pricing not found: pricing_id=%s", pricingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pricing.ErrPricingConflict):
			h.logger.Warn("PUT /admin/pricing/{id} - Key already priced: pricing_id=%s", pricingID)
			handlers.RespondConflict(w, msgPricingConflict)

		default:
			h.logger.Error("PUT /admin/pricing/{id} - Failed to update pricing: pricing_id=%s, error=%v", pricingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/pricing/{id} - Pricing updated: pricing_id=%s", pricingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
