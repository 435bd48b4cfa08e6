package push_unsubscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingEndpoint      = "не указан endpoint подписки"
	msgSubscriptionNotFound = "подписка не найдена"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/push/unsubscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UnsubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /push/unsubscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /push/unsubscribe - Missing endpoint")
			handlers.RespondBadRequest(w, msgMissingEndpoint)

		case errors.Is(err, notifications.ErrSubscriptionNotFound):
			h.logger.Warn("POST /push/unsubscribe - Subscription not found")
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		default:
			h.logger.Error("POST /push/unsubscribe - Failed to delete subscription: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /push/unsubscribe - Subscription deleted")
	handlers.RespondNoContent(w)
}
