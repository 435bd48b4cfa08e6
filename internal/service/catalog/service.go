package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TransferService/internal/service/catalog/models"
)

// Service сервис справочников: услуги и схемы их полей, локации, типы автомобилей
type Service struct {
	repo      CatalogRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListServices возвращает доступные услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.repo.ListServices(ctx, true)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	result := &models.ServiceListResponse{Services: make([]models.ServiceResponse, 0, len(services))}
	for _, svc := range services {
		result.Services = append(result.Services, models.FromDomainService(svc, nil))
	}
	return result, nil
}

// GetService возвращает доступную услугу вместе с упорядоченными полями
func (s *Service) GetService(ctx context.Context, id string) (*models.ServiceResponse, error) {
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	if !svc.IsAvailable {
		s.logger.Warn("GetService: service id=%s is not available", id)
		return nil, ErrServiceNotFound
	}

	fields, err := s.repo.ListFields(ctx, id)
	if err != nil {
		s.logger.Error("GetService: failed to list fields for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - list fields: %v", ErrInternal, err)
	}
	domain.SortFields(fields)

	resp := models.FromDomainService(svc, fields)
	return &resp, nil
}

// ListLocations возвращает все локации
func (s *Service) ListLocations(ctx context.Context) (*models.LocationListResponse, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}

	result := &models.LocationListResponse{Locations: make([]models.LocationResponse, 0, len(locations))}
	for _, l := range locations {
		result.Locations = append(result.Locations, models.FromDomainLocation(l))
	}
	return result, nil
}

// ListVehicleTypes возвращает все типы автомобилей
func (s *Service) ListVehicleTypes(ctx context.Context) (*models.VehicleTypeListResponse, error) {
	vehicleTypes, err := s.repo.ListVehicleTypes(ctx)
	if err != nil {
		s.logger.Error("ListVehicleTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVehicleTypes - repository error: %v", ErrInternal, err)
	}

	result := &models.VehicleTypeListResponse{VehicleTypes: make([]models.VehicleTypeResponse, 0, len(vehicleTypes))}
	for _, v := range vehicleTypes {
		result.VehicleTypes = append(result.VehicleTypes, models.FromDomainVehicleType(v))
	}
	return result, nil
}

// CreateField добавляет поле в схему услуги.
// Схема с новым полем должна оставаться корректной (уникальные ключи, один pickup, один destination)
func (s *Service) CreateField(ctx context.Context, serviceID string, req *models.FieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("CreateField: service=%s key=%s type=%s", serviceID, req.FieldKey, req.FieldType)

	field := req.ToDomainField(uuid.NewString(), serviceID)
	field.FieldKey = strings.TrimSpace(field.FieldKey)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		fields, err := s.loadSchema(txCtx, serviceID)
		if err != nil {
			return err
		}

		if err := checkSchema(append(fields, field)); err != nil {
			return err
		}

		if err := s.repo.CreateField(txCtx, &field); err != nil {
			return mapFieldWriteError("CreateField", err)
		}
		return nil
	})
	if err != nil {
		s.logWriteError("CreateField", err)
		return nil, err
	}

	resp := models.FromDomainField(field)
	return &resp, nil
}

// UpdateField заменяет поле услуги
func (s *Service) UpdateField(ctx context.Context, serviceID, fieldID string, req *models.FieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("UpdateField: service=%s field=%s", serviceID, fieldID)

	field := req.ToDomainField(fieldID, serviceID)
	field.FieldKey = strings.TrimSpace(field.FieldKey)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		fields, err := s.loadSchema(txCtx, serviceID)
		if err != nil {
			return err
		}

		replaced := false
		for i := range fields {
			if fields[i].ID == fieldID {
				fields[i] = field
				replaced = true
			}
		}
		if !replaced {
			return ErrFieldNotFound
		}

		if err := checkSchema(fields); err != nil {
			return err
		}

		if err := s.repo.UpdateField(txCtx, &field); err != nil {
			return mapFieldWriteError("UpdateField", err)
		}
		return nil
	})
	if err != nil {
		s.logWriteError("UpdateField", err)
		return nil, err
	}

	resp := models.FromDomainField(field)
	return &resp, nil
}

// DeleteField удаляет поле услуги
func (s *Service) DeleteField(ctx context.Context, serviceID, fieldID string) error {
	s.logger.Info("DeleteField: service=%s field=%s", serviceID, fieldID)

	if err := s.repo.DeleteField(ctx, serviceID, fieldID); err != nil {
		if errors.Is(err, catalogRepo.ErrFieldNotFound) {
			s.logger.Warn("DeleteField: field id=%s not found in service=%s", fieldID, serviceID)
			return ErrFieldNotFound
		}
		s.logger.Error("DeleteField: repository error: %v", err)
		return fmt.Errorf("%w: DeleteField - repository error: %v", ErrInternal, err)
	}
	return nil
}

// CreateLocation создает локацию. id должен быть коротким идентификатором (см. domain.IsLocationIdentifier),
// без id генерируется "loc-" + 8 символов UUID
func (s *Service) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error) {
	l := domain.Location{
		ID:   strings.TrimSpace(req.ID),
		Name: strings.TrimSpace(req.Name),
		Type: domain.LocationType(req.Type),
	}
	if l.ID == "" {
		l.ID = newLocationID()
	}
	if !domain.IsLocationIdentifier(l.ID) {
		return nil, fmt.Errorf("%w: location id %q must match [a-z0-9_-] and be shorter than %d characters",
			ErrInvalidInput, l.ID, domain.MaxLocationIdentifierLength)
	}
	if l.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !l.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown location type %q", ErrInvalidInput, req.Type)
	}

	if err := s.repo.CreateLocation(ctx, &l); err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("CreateLocation: location id=%s already exists", l.ID)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreateLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLocation: created location id=%s", l.ID)
	resp := models.FromDomainLocation(l)
	return &resp, nil
}

// CreateVehicleType создает тип автомобиля
func (s *Service) CreateVehicleType(ctx context.Context, req *models.VehicleTypeRequest) (*models.VehicleTypeResponse, error) {
	v := domain.VehicleType{
		ID:            strings.TrimSpace(req.ID),
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		MinPassengers: req.MinPassengers,
		MaxPassengers: req.MaxPassengers,
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.MinPassengers < domain.MinPassengers {
		v.MinPassengers = domain.MinPassengers
	}
	if v.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if v.MaxPassengers < 0 || (v.MaxPassengers > 0 && v.MaxPassengers < v.MinPassengers) {
		return nil, fmt.Errorf("%w: maxPassengers must be 0 (unbounded) or >= minPassengers", ErrInvalidInput)
	}

	if err := s.repo.CreateVehicleType(ctx, &v); err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("CreateVehicleType: vehicle type id=%s already exists", v.ID)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreateVehicleType: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateVehicleType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVehicleType: created vehicle type id=%s", v.ID)
	resp := models.FromDomainVehicleType(v)
	return &resp, nil
}

func newLocationID() string {
	return "loc-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// loadSchema проверяет существование услуги и возвращает текущие поля
func (s *Service) loadSchema(ctx context.Context, serviceID string) ([]domain.ServiceField, error) {
	if _, err := s.repo.GetService(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: loadSchema - get service: %v", ErrInternal, err)
	}

	fields, err := s.repo.ListFields(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: loadSchema - list fields: %v", ErrInternal, err)
	}
	return fields, nil
}

func (s *Service) logWriteError(op string, err error) {
	if errors.Is(err, ErrInternal) {
		s.logger.Error("%s: %v", op, err)
		return
	}
	s.logger.Warn("%s: %v", op, err)
}

// checkSchema для админки некорректная схема это ошибка ввода
func checkSchema(fields []domain.ServiceField) error {
	if err := domain.ValidateFieldSchema(fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func mapFieldWriteError(op string, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrAlreadyExists):
		return ErrAlreadyExists
	case errors.Is(err, catalogRepo.ErrFieldNotFound):
		return ErrFieldNotFound
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
