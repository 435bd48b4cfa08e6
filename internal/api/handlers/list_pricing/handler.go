package list_pricing

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/admin/pricing
// Query params: serviceId, vehicleTypeId, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.ParsePage(r)
	if err != nil {
		h.logger.Warn("GET /admin/pricing - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &models.ListPricingRequest{Limit: limit, Offset: offset}
	if serviceID := strings.TrimSpace(r.URL.Query().Get("serviceId")); serviceID != "" {
		req.ServiceID = &serviceID
	}
	if vehicleTypeID := strings.TrimSpace(r.URL.Query().Get("vehicleTypeId")); vehicleTypeID != "" {
		req.VehicleTypeID = &vehicleTypeID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/pricing - Failed to list pricing: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/pricing - Pricing listed: count=%d", len(result.Pricing))
	handlers.RespondJSON(w, http.StatusOK, result)
}
