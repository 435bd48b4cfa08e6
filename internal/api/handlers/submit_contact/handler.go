package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	submitContact "github.com/m04kA/SMC-TransferService/internal/usecase/submit_contact"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req submitContact.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.logger.Warn("POST /contact - Validation failed: fields=%d", len(fieldErrs))
			handlers.RespondFieldErrors(w, fieldErrs)
			return
		}
		h.logger.Error("POST /contact - Failed to save message: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message saved: message_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
