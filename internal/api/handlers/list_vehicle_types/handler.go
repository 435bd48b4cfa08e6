package list_vehicle_types

import (
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/vehicle-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListVehicleTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicle-types - Failed to list vehicle types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicle-types - Vehicle types listed: count=%d", len(result.VehicleTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
