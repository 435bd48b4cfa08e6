package push_subscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSubscription = "некорректная push подписка"
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

// Handle POST /api/push/subscribe
// Тело: PushSubscription.toJSON() из браузера
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /push/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /push/subscribe - Invalid subscription: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSubscription)

		default:
			h.logger.Error("POST /push/subscribe - Failed to save subscription: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /push/subscribe - Subscription saved: subscription_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
