package create_vehicle_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicleType = "некорректные данные типа автомобиля"
	msgVehicleTypeExists  = "тип автомобиля с таким id уже есть"
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

// Handle POST /api/admin/vehicle-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/vehicle-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateVehicleType(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/vehicle-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)

		case errors.Is(err, catalog.ErrAlreadyExists):
			h.logger.Warn("POST /admin/vehicle-types - Vehicle type exists: vehicle_type_id=%s", req.ID)
			handlers.RespondConflict(w, msgVehicleTypeExists)

		default:
			h.logger.Error("POST /admin/vehicle-types - Failed to create vehicle type: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/vehicle-types - Vehicle type created: vehicle_type_id=%s, capacity=%d-%d",
		result.ID, result.MinPassengers, result.MaxPassengers)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
