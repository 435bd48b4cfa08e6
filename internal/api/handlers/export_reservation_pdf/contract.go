package export_reservation_pdf

import (
	"context"

	exportPDF "github.com/m04kA/SMC-TransferService/internal/usecase/export_reservation_pdf"
)

type ExportUseCase interface {
	Execute(ctx context.Context, id string) (*exportPDF.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
