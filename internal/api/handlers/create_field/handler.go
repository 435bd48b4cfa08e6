package create_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidField       = "некорректное описание поля"
	msgServiceNotFound    = "услуга не найдена"
	msgFieldExists        = "поле с таким ключом уже есть"
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

// Handle POST /api/admin/services/{serviceId}/fields
// Новое поле проверяется вместе со всей схемой услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req models.FieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services/{id}/fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateField(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services/{id}/fields - Invalid field: service_id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidField)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /admin/services/{id}/fields - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrAlreadyExists):
			h.logger.Warn("POST /admin/services/{id}/fields - Field key taken: service_id=%s, field_key=%s",
				serviceID, req.FieldKey)
			handlers.RespondConflict(w, msgFieldExists)

		default:
			h.logger.Error("POST /admin/services/{id}/fields - Failed to create field: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services/{id}/fields - Field created: service_id=%s, field_id=%s", serviceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
