package delete_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog"
)

const (
	msgFieldNotFound = "поле не найдено"
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

// Handle DELETE /api/admin/services/{serviceId}/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]
	fieldID := vars["fieldId"]

	if err := h.service.DeleteField(r.Context(), serviceID, fieldID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrFieldNotFound):
			h.logger.Warn("DELETE /admin/services/{id}/fields/{fieldId} - Field not found: service_id=%s, field_id=%s",
				serviceID, fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("DELETE /admin/services/{id}/fields/{fieldId} - Failed to delete field: field_id=%s, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id}/fields/{fieldId} - Field deleted: service_id=%s, field_id=%s", serviceID, fieldID)
	handlers.RespondNoContent(w)
}
