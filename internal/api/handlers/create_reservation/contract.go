package create_reservation

import (
	"context"

	createReservation "github.com/m04kA/SMC-TransferService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, sub *validation.Submission) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
