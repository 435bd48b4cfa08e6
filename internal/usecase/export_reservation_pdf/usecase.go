package export_reservation_pdf

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TransferService/internal/integrations/pdfrenderer"
	"github.com/m04kA/SMC-TransferService/pkg/ptr"
)

// UseCase use case выгрузки бронирования в PDF
type UseCase struct {
	reservationRepo ReservationRepository
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	renderer        Renderer
	currency        string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	renderer Renderer,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		renderer:        renderer,
		currency:        currency,
		logger:          logger,
	}
}

// Execute собирает плоскую запись бронирования и рендерит ее.
// Отсутствующие справочные данные (удаленная услуга, тип авто) не мешают выгрузке
func (uc *UseCase) Execute(ctx context.Context, id string) (*Response, error) {
	uc.logger.Info("ExportReservationPDF: reservation id=%s", id)

	// 1. Получаем бронирование
	r, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ExportReservationPDF: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ExportReservationPDF: failed to get reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	doc := &pdfrenderer.ReservationDocument{
		ReservationID:   r.ID,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		ServiceName:     r.ServiceID,
		VehicleTypeName: r.VehicleTypeID,
		Date:            r.Date,
		Time:            r.Time,
		Passengers:      r.Passengers,
		BabySeats:       r.BabySeats,
		BoosterSeats:    r.BoosterSeats,
		MeetAndGreet:    r.MeetAndGreet,
		Notes:           ptr.Value(r.Notes),
		TotalPrice:      r.TotalPrice,
		Currency:        uc.currency,
	}

	// 2. Клиент
	client, err := uc.clientRepo.GetByID(ctx, r.ClientID)
	switch {
	case err == nil:
		doc.ClientName = client.FullName()
		doc.ClientEmail = client.Email
		doc.ClientPhone = client.Phone
	case errors.Is(err, clientRepo.ErrClientNotFound):
		uc.logger.Warn("ExportReservationPDF: client id=%s not found", r.ClientID)
	default:
		return nil, uc.internal("get client", err)
	}

	// 3. Услуга и подписи полей
	var fields []domain.ServiceField
	service, err := uc.catalogRepo.GetService(ctx, r.ServiceID)
	switch {
	case err == nil:
		doc.ServiceName = service.Name
		fields, err = uc.catalogRepo.ListFields(ctx, r.ServiceID)
		if err != nil {
			return nil, uc.internal("list fields", err)
		}
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		uc.logger.Warn("ExportReservationPDF: service id=%s not found", r.ServiceID)
	default:
		return nil, uc.internal("get service", err)
	}

	// 4. Тип автомобиля
	if r.VehicleTypeID != "" {
		vehicle, err := uc.catalogRepo.GetVehicleType(ctx, r.VehicleTypeID)
		switch {
		case err == nil:
			doc.VehicleTypeName = vehicle.Name
		case errors.Is(err, catalogRepo.ErrVehicleTypeNotFound):
			uc.logger.Warn("ExportReservationPDF: vehicle type id=%s not found", r.VehicleTypeID)
		default:
			return nil, uc.internal("get vehicle type", err)
		}
	}

	// 5. Названия локаций
	locations, err := uc.catalogRepo.ListLocations(ctx)
	if err != nil {
		return nil, uc.internal("list locations", err)
	}
	doc.Pickup = domain.ResolveLocationName(r.PickupLocation, locations)
	if r.DestinationLocation != nil {
		doc.Destination = domain.ResolveLocationName(*r.DestinationLocation, locations)
	}

	doc.Details = detailLines(r.ServiceSubData, fields)

	// 6. Рендер
	content, err := uc.renderer.Render(doc)
	if err != nil {
		return nil, uc.internal("render", err)
	}

	return &Response{
		FileName: "reservation-" + r.ID + ".pdf",
		Content:  content,
	}, nil
}

func (uc *UseCase) internal(step string, err error) error {
	uc.logger.Error("ExportReservationPDF: failed to %s: %v", step, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, step, err)
}

// detailLines порядок и подписи берутся из схемы полей, неизвестные ключи идут в конце по алфавиту
func detailLines(subData map[string]interface{}, fields []domain.ServiceField) []pdfrenderer.Line {
	if len(subData) == 0 {
		return nil
	}

	ordered := make([]domain.ServiceField, len(fields))
	copy(ordered, fields)
	domain.SortFields(ordered)

	lines := make([]pdfrenderer.Line, 0, len(subData))
	used := make(map[string]struct{}, len(subData))
	for _, f := range ordered {
		v, ok := subData[f.FieldKey]
		if !ok {
			continue
		}
		label := f.Label
		if label == "" {
			label = f.FieldKey
		}
		lines = append(lines, pdfrenderer.Line{Label: label, Value: formatValue(v)})
		used[f.FieldKey] = struct{}{}
	}

	rest := make([]string, 0, len(subData)-len(used))
	for k := range subData {
		if _, ok := used[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		lines = append(lines, pdfrenderer.Line{Label: k, Value: formatValue(subData[k])})
	}
	return lines
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
