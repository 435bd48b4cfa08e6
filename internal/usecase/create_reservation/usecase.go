package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	notifyModels "github.com/m04kA/SMC-TransferService/internal/service/notifications/models"
	"github.com/m04kA/SMC-TransferService/internal/validation"
)

// DefaultNotifyTimeout ограничение на отправку уведомлений после создания бронирования
const DefaultNotifyTimeout = 30 * time.Second

// UseCase use case для создания бронирования с сайта
type UseCase struct {
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	reservationRepo ReservationRepository
	resolver        PriceResolver
	notifier        Notifier
	metrics         Metrics
	txManager       TransactionManager
	timeProvider    TimeProvider
	notifyTimeout   time.Duration
	logger          Logger

	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case. notifier может быть nil
func NewUseCase(
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	reservationRepo ReservationRepository,
	resolver PriceResolver,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &UseCase{
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		resolver:        resolver,
		notifier:        notifier,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		notifyTimeout:   notifyTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Ошибки формы возвращаются как validation.FieldErrors
func (uc *UseCase) Execute(ctx context.Context, sub *validation.Submission) (*Response, error) {
	uc.logger.Info("CreateReservation: service=%s, vehicle=%s, date=%s %s",
		sub.ServiceID, sub.VehicleTypeID, sub.Date, sub.Time)

	serviceID := strings.TrimSpace(sub.ServiceID)

	// 1. Без услуги схему полей не получить, проверяем только статические поля
	if serviceID == "" {
		_, fieldErrs, err := validation.Validate(sub, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to validate submission: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateReservation: validation failed: %v", fieldErrs)
		return nil, fieldErrs
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsAvailable {
		uc.logger.Warn("CreateReservation: service id=%s is not available", serviceID)
		return nil, ErrServiceNotFound
	}

	// 3. Получаем схему полей и проверяем форму целиком
	fields, err := uc.catalogRepo.ListFields(ctx, serviceID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list fields of service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to list fields: %v", ErrInternal, err)
	}

	candidate, fieldErrs, err := validation.Validate(sub, fields)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidSchema) {
			uc.logger.Error("CreateReservation: field schema of service id=%s is broken: %v", serviceID, err)
			return nil, fmt.Errorf("%w: %v", ErrMisconfiguredService, err)
		}
		return nil, fmt.Errorf("%w: failed to validate submission: %v", ErrInternal, err)
	}
	if len(fieldErrs) > 0 {
		uc.logger.Warn("CreateReservation: validation failed for service id=%s: %v", serviceID, fieldErrs)
		return nil, fieldErrs
	}

	// 4. Проверяем тип автомобиля
	var vehicle *domain.VehicleType
	if candidate.VehicleTypeID != "" {
		vehicle, err = uc.catalogRepo.GetVehicleType(ctx, candidate.VehicleTypeID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrVehicleTypeNotFound) {
				uc.logger.Warn("CreateReservation: vehicle type id=%s not found", candidate.VehicleTypeID)
				return nil, ErrVehicleTypeNotFound
			}
			uc.logger.Error("CreateReservation: failed to get vehicle type id=%s: %v", candidate.VehicleTypeID, err)
			return nil, fmt.Errorf("%w: failed to get vehicle type: %v", ErrInternal, err)
		}
	}

	// 5. Ищем цену
	resolution, err := uc.resolver.ResolvePrice(ctx, pricingKey(candidate))
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve price: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve price: %v", ErrInternal, err)
	}

	// 6. Собираем бронирование
	now := uc.timeProvider.Now()
	reservation := Assemble(candidate, resolution, "", now)
	reservation.ID = uuid.NewString()

	if vehicle != nil && !vehicle.Fits(reservation.Passengers) {
		uc.logger.Warn("CreateReservation: %d passengers do not fit vehicle type id=%s", reservation.Passengers, vehicle.ID)
		return nil, validation.FieldErrors{{
			Field:   domain.FieldKeyPassengers,
			Message: capacityMessage(vehicle),
		}}
	}

	// 7. Клиент и бронирование сохраняются в одной транзакции
	var client *domain.Client
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Находим клиента по email или создаем нового
		client, err = uc.upsertClient(txCtx, candidate)
		if err != nil {
			return err
		}

		// 7.2. Сохраняем бронирование
		reservation.ClientID = client.ID
		if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncReservationCreated(string(reservation.Status))
	uc.logger.Info("CreateReservation: created reservation id=%s, status=%s, client=%s",
		reservation.ID, reservation.Status, client.ID)

	// 8. Уведомления после коммита, в фоне
	uc.notify(service, vehicle, reservation, client)

	return &Response{
		Reservation:    reservation,
		Client:         client,
		PriceDuplicate: resolution != nil && resolution.Duplicate,
	}, nil
}

// Wait дожидается фоновых уведомлений (graceful shutdown, тесты)
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

func (uc *UseCase) upsertClient(ctx context.Context, c *validation.Candidate) (*domain.Client, error) {
	existing, err := uc.clientRepo.GetByEmail(ctx, c.Email)
	if err != nil && !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateReservation: failed to find client by email: %v", err)
		return nil, fmt.Errorf("%w: failed to find client: %v", ErrInternal, err)
	}

	if existing == nil {
		client := &domain.Client{
			ID:        uuid.NewString(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		}
		if _, err := uc.clientRepo.Create(ctx, client); err != nil {
			uc.logger.Error("CreateReservation: failed to create client: %v", err)
			return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
		}
		return client, nil
	}

	if existing.FirstName != c.FirstName || existing.LastName != c.LastName || existing.Phone != c.Phone {
		existing.FirstName = c.FirstName
		existing.LastName = c.LastName
		existing.Phone = c.Phone
		if err := uc.clientRepo.UpdateContacts(ctx, existing); err != nil {
			uc.logger.Error("CreateReservation: failed to update client id=%s: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: failed to update client: %v", ErrInternal, err)
		}
	}
	return existing, nil
}

func (uc *UseCase) notify(service *domain.Service, vehicle *domain.VehicleType, r *domain.Reservation, c *domain.Client) {
	if uc.notifier == nil {
		return
	}

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		locations, err := uc.catalogRepo.ListLocations(ctx)
		if err != nil {
			uc.logger.Warn("CreateReservation: failed to load locations for notification: %v", err)
		}

		notice := &notifyModels.ReservationNotice{
			ReservationID: r.ID,
			Status:        string(r.Status),
			ServiceName:   service.Name,
			ClientName:    c.FullName(),
			ClientEmail:   c.Email,
			ClientPhone:   c.Phone,
			Date:          r.Date,
			Time:          r.Time,
			Pickup:        domain.ResolveLocationName(r.PickupLocation, locations),
			Passengers:    r.Passengers,
			TotalPrice:    r.TotalPrice,
		}
		if r.DestinationLocation != nil {
			notice.Destination = domain.ResolveLocationName(*r.DestinationLocation, locations)
		}
		if vehicle != nil {
			notice.ServiceName += " / " + vehicle.Name
		}

		uc.notifier.NotifyReservationCreated(ctx, notice)
	}()
}

// pricingKey ключ поиска цены. Поиск точный, поэтому адрес в свободной форме просто не найдет строку
func pricingKey(c *validation.Candidate) domain.PricingKey {
	return domain.PricingKey{
		ServiceID:             c.ServiceID,
		VehicleTypeID:         c.VehicleTypeID,
		PickupLocationID:      c.PickupLocation,
		DestinationLocationID: c.DestinationLocation,
	}
}

func capacityMessage(v *domain.VehicleType) string {
	if v.MaxPassengers == 0 {
		return fmt.Sprintf("%s requires at least %d passengers", v.Name, v.MinPassengers)
	}
	return fmt.Sprintf("%s carries %d to %d passengers", v.Name, v.MinPassengers, v.MaxPassengers)
}
