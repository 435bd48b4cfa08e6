package list_contact_messages

import (
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/contact-messages
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.ParsePage(r)
	if err != nil {
		h.logger.Warn("GET /admin/contact-messages - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("GET /admin/contact-messages - Failed to list messages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/contact-messages - Messages listed: count=%d", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
