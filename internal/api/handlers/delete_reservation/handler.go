package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations"
)

const (
	msgNotFound     = "бронирование не найдено"
	msgCannotCancel = "бронирование нельзя отменить"
	msgStaleVersion = "бронирование было изменено, повторите запрос"
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

// Handle DELETE /api/admin/reservations/{reservationId}
// В зависимости от reservations.delete_policy отменяет или удаляет бронирование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("DELETE /admin/reservations/{id} - Cannot cancel: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrStaleVersion):
			h.logger.Warn("DELETE /admin/reservations/{id} - Concurrent modification: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation deleted: reservation_id=%s", reservationID)
	handlers.RespondNoContent(w)
}
