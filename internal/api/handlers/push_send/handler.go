package push_send

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications"
	"github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTitle       = "не указан заголовок уведомления"
	msgPushDisabled       = "push уведомления не настроены"
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

// Handle POST /api/admin/push/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SendRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/push/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	report, err := h.service.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /admin/push/send - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgMissingTitle)

		case errors.Is(err, notifications.ErrPushDisabled):
			h.logger.Warn("POST /admin/push/send - Web push is not configured")
			handlers.RespondServiceUnavailable(w, msgPushDisabled)

		default:
			h.logger.Error("POST /admin/push/send - Failed to broadcast: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/push/send - Broadcast finished: sent=%d, failed=%d, pruned=%d",
		report.Sent, report.Failed, report.Pruned)
	handlers.RespondJSON(w, http.StatusOK, report)
}
