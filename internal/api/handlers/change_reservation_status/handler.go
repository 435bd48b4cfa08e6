package change_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "неизвестный статус бронирования"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgNoStatusChange     = "бронирование уже в этом статусе"
	msgStaleVersion       = "бронирование было изменено, обновите данные"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/reservations/{reservationId}/status
// Тело: {"status": "...", "version": N}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid status: reservation_id=%s, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Transition rejected: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrNoStatusChange):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Status unchanged: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgNoStatusChange)

		case errors.Is(err, reservations.ErrStaleVersion):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Stale version: reservation_id=%s, version=%d",
				reservationID, req.Version)
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/status - Failed to change status: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/status - Status changed: reservation_id=%s, status=%s, version=%d",
		reservationID, result.Status, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
