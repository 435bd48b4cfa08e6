package get_quote

import (
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

const (
	msgMissingServiceID = "не указан serviceId"
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

// Handle GET /api/pricing/quote
// Query params: serviceId (обязательно), vehicleTypeId, pickup, destination
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := ToPricingKey(r.URL.Query())
	if key.ServiceID == "" {
		h.logger.Warn("GET /pricing/quote - Missing serviceId")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	quote, err := h.service.Quote(r.Context(), key)
	if err != nil {
		h.logger.Error("GET /pricing/quote - Failed to resolve price: service_id=%s, error=%v", key.ServiceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing/quote - Quote resolved: service_id=%s, vehicle_type_id=%s, quote_required=%t",
		key.ServiceID, key.VehicleTypeID, quote.QuoteRequired)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
