package reopen_reservation

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
	msgInvalidTransition  = "бронирование нельзя вернуть в этот статус"
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

// Handle POST /api/admin/reservations/{reservationId}/reopen
// Тело: {"status": "...", "version": N}, status - стадия, на которую возвращаем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/{id}/reopen - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reopen(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations/{id}/reopen - Invalid status: reservation_id=%s, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /admin/reservations/{id}/reopen - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("POST /admin/reservations/{id}/reopen - Transition rejected: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrNoStatusChange):
			h.logger.Warn("POST /admin/reservations/{id}/reopen - Status unchanged: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgNoStatusChange)

		case errors.Is(err, reservations.ErrStaleVersion):
			h.logger.Warn("POST /admin/reservations/{id}/reopen - Stale version: reservation_id=%s, version=%d",
				reservationID, req.Version)
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("POST /admin/reservations/{id}/reopen - Failed to reopen: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations/{id}/reopen - Reservation reopened: reservation_id=%s, status=%s, version=%d",
		reservationID, result.Status, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
