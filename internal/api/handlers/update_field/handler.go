package update_field

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
	msgFieldNotFound      = "поле не найдено"
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

// Handle PUT /api/admin/services/{serviceId}/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]
	fieldID := vars["fieldId"]

	var req models.FieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id}/fields/{fieldId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateField(r.Context(), serviceID, fieldID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/services/{id}/fields/{fieldId} - Invalid field: field_id=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidField)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id}/fields/{fieldId} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrFieldNotFound):
			h.logger.Warn("PUT /admin/services/{id}/fields/{fieldId} - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, catalog.ErrAlreadyExists):
			h.logger.Warn("PUT /admin/services/{id}/fields/{fieldId} - Field key taken: field_key=%s", req.FieldKey)
			handlers.RespondConflict(w, msgFieldExists)

		default:
			h.logger.Error("PUT /admin/services/{id}/fields/{fieldId} - Failed to update field: field_id=%s, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/{id}/fields/{fieldId} - Field updated: service_id=%s, field_id=%s", serviceID, fieldID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
