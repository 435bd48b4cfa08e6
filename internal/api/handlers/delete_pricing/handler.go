package delete_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing"
)

const (
	msgNotFound = "цена не найдена"
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

// Handle DELETE /api/admin/pricing/{pricingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pricingID := mux.Vars(r)["pricingId"]

	if err := h.service.Delete(r.Context(), pricingID); err != nil {
		switch {
		case errors.Is(err, pricing.ErrPricingNotFound):
			h.logger.Warn("DELETE /admin/pricing/{id} - Pricing not found: pricing_id=%s", pricingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/pricing/{id} - Failed to delete pricing: pricing_id=%s, error=%v", pricingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/pricing/{id} - Pricing deleted: pricing_id=%s", pricingID)
	handlers.RespondNoContent(w)
}
