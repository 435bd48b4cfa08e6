package export_reservation_pdf

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	exportPDF "github.com/m04kA/SMC-TransferService/internal/usecase/export_reservation_pdf"
)

const (
	contentTypePDF = "application/pdf"

	msgReservationNotFound = "бронирование не найдено"
)

type Handler struct {
	useCase ExportUseCase
	logger  Logger
}

func NewHandler(useCase ExportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/reservations/{reservationId}/pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.useCase.Execute(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, exportPDF.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/pdf - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id}/pdf - Failed to render pdf: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id}/pdf - PDF rendered: reservation_id=%s, size=%d", reservationID, len(result.Content))
	handlers.RespondFile(w, contentTypePDF, result.FileName, result.Content)
}
