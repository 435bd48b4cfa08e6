package create_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "некорректные данные локации"
	msgLocationExists     = "локация с таким id уже есть"
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

// Handle POST /api/admin/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/locations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, catalog.ErrAlreadyExists):
			h.logger.Warn("POST /admin/locations - Location exists: location_id=%s", req.ID)
			handlers.RespondConflict(w, msgLocationExists)

		default:
			h.logger.Error("POST /admin/locations - Failed to create location: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/locations - Location created: location_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
