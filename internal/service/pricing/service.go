package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-TransferService/internal/service/pricing/models"
)

// Service админский сервис управления ценами и публичный расчет цены
type Service struct {
	repo        PricingRepository
	resolver    PriceResolver
	invalidator CacheInvalidator
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса цен.
// invalidator может быть nil, если резолвер не кэширует
func NewService(
	repo PricingRepository,
	resolver PriceResolver,
	invalidator CacheInvalidator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		resolver:    resolver,
		invalidator: invalidator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Quote возвращает цену для публичной формы. Отсутствие цены не ошибка: quoteRequired = true
func (s *Service) Quote(ctx context.Context, key domain.PricingKey) (*models.QuoteResponse, error) {
	res, err := s.resolver.ResolvePrice(ctx, key)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return &models.QuoteResponse{QuoteRequired: true}, nil
	}

	price := res.Price
	return &models.QuoteResponse{Price: &price}, nil
}

// List возвращает строки цен
func (s *Service) List(ctx context.Context, req *models.ListPricingRequest) (*models.PricingListResponse, error) {
	filter := domain.PricingFilter{
		ServiceID:     req.ServiceID,
		VehicleTypeID: req.VehicleTypeID,
		Limit:         clampLimit(req.Limit),
		Offset:        req.Offset,
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := &models.PricingListResponse{
		Pricing: make([]models.PricingResponse, 0, len(rows)),
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	for _, p := range rows {
		result.Pricing = append(result.Pricing, *models.FromDomainPricing(p))
	}

	return result, nil
}

// Create создает строку цены. Вторая строка для того же ключа запрещена
func (s *Service) Create(ctx context.Context, req *models.PricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("Create: creating price for key=%s", req.Key())

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	p := &domain.ServiceVehiclePricing{ID: uuid.NewString()}
	req.ApplyTo(p)

	// 2. Проверка уникальности ключа и вставка в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.ensureKeyFree(txCtx, p.Key(), ""); err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, p); err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logWriteError("Create", err)
		return nil, err
	}

	// 3. Сброс кэша цен
	s.invalidate(ctx)

	s.logger.Info("Create: created price id=%s", p.ID)
	return models.FromDomainPricing(p), nil
}

// Update заменяет ключ и цену строки
func (s *Service) Update(ctx context.Context, id string, req *models.PricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("Update: updating price id=%s", id)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	var result *domain.ServiceVehiclePricing

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pricingRepo.ErrPricingNotFound) {
				return ErrPricingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		req.ApplyTo(p)

		if err := s.ensureKeyFree(txCtx, p.Key(), p.ID); err != nil {
			return err
		}

		if err := s.repo.Update(txCtx, p); err != nil {
			if errors.Is(err, pricingRepo.ErrPricingNotFound) {
				return ErrPricingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = p
		return nil
	})
	if err != nil {
		s.logWriteError("Update", err)
		return nil, err
	}

	s.invalidate(ctx)

	s.logger.Info("Update: updated price id=%s", id)
	return models.FromDomainPricing(result), nil
}

// Delete удаляет строку цены
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting price id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pricingRepo.ErrPricingNotFound) {
			s.logger.Warn("Delete: price id=%s not found", id)
			return ErrPricingNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	return nil
}

// ListConflicts возвращает ключи с несколькими строками цен
func (s *Service) ListConflicts(ctx context.Context) (*models.ConflictListResponse, error) {
	conflicts, err := s.repo.ListConflicts(ctx)
	if err != nil {
		s.logger.Error("ListConflicts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConflicts - repository error: %v", ErrInternal, err)
	}

	if len(conflicts) > 0 {
		s.logger.Warn("ListConflicts: %d pricing keys have duplicate rows", len(conflicts))
	}

	return models.FromDomainConflicts(conflicts), nil
}

// ensureKeyFree проверяет, что для ключа нет строк, кроме selfID
func (s *Service) ensureKeyFree(ctx context.Context, key domain.PricingKey, selfID string) error {
	rows, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: ensureKeyFree - repository error: %v", ErrInternal, err)
	}
	for _, row := range rows {
		if row.ID != selfID {
			return fmt.Errorf("%w: existing id=%s", ErrPricingConflict, row.ID)
		}
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Error("invalidate: failed to flush pricing cache: %v", err)
	}
}

func (s *Service) logWriteError(op string, err error) {
	switch {
	case errors.Is(err, ErrPricingConflict), errors.Is(err, ErrPricingNotFound):
		s.logger.Warn("%s: %v", op, err)
	default:
		s.logger.Error("%s: %v", op, err)
	}
}

func validateRequest(req *models.PricingRequest) error {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.VehicleTypeID = strings.TrimSpace(req.VehicleTypeID)
	req.PickupLocationID = strings.TrimSpace(req.PickupLocationID)
	req.DestinationLocationID = strings.TrimSpace(req.DestinationLocationID)

	if !req.Key().IsComplete() {
		return fmt.Errorf("%w: serviceId, vehicleTypeId, pickupLocationId and destinationLocationId are required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidInput)
	}
	return nil
}

func clampLimit(limit uint64) uint64 {
	if limit == 0 {
		return domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		return domain.MaxPageLimit
	}
	return limit
}
