package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-TransferService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgServiceNotFound     = "услуга не найдена"
	msgVehicleTypeNotFound = "тип автомобиля не найден"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var sub validation.Submission
	if err := handlers.DecodeJSON(r, &sub); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sub)
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /reservations - Validation failed: service_id=%s, fields=%d", sub.ServiceID, len(fieldErrs))
			handlers.RespondFieldErrors(w, fieldErrs)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%s", sub.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrVehicleTypeNotFound):
			h.logger.Warn("POST /reservations - Vehicle type not found: vehicle_type_id=%s", sub.VehicleTypeID)
			handlers.RespondNotFound(w, msgVehicleTypeNotFound)

		default:
			// сюда же попадает ErrMisconfiguredService: это ошибка настройки, а не ввода
			h.logger.Error("POST /reservations - Failed to create reservation: service_id=%s, error=%v", sub.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.PriceDuplicate {
		h.logger.Warn("POST /reservations - Duplicate pricing rows for reservation_id=%s", result.Reservation.ID)
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, status=%s",
		result.Reservation.ID, result.Reservation.Status)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result.Reservation, result.Client))
}
