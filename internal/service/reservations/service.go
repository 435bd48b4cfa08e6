package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
)

// DeletePolicy что делает DELETE в админке
type DeletePolicy string

const (
	// DeletePolicyCancel переводит бронирование в cancelled (по умолчанию)
	DeletePolicyCancel DeletePolicy = "cancel"
	// DeletePolicyDelete удаляет строку
	DeletePolicyDelete DeletePolicy = "delete"
)

// IsValid проверяет значение политики
func (p DeletePolicy) IsValid() bool {
	return p == DeletePolicyCancel || p == DeletePolicyDelete
}

// Service сервис администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	clientRepo      ClientRepository
	deletePolicy    DeletePolicy
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// Неизвестная политика удаления заменяется на cancel
func NewService(
	reservationRepo ReservationRepository,
	clientRepo ClientRepository,
	deletePolicy DeletePolicy,
	logger Logger,
) *Service {
	if !deletePolicy.IsValid() {
		deletePolicy = DeletePolicyCancel
	}
	return &Service{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		deletePolicy:    deletePolicy,
		logger:          logger,
	}
}

// List получает страницу бронирований.
// status, limit и offset уходят в SQL, q фильтрует только полученную страницу
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{
		Limit:  clampLimit(req.Limit),
		Offset: req.Offset,
	}

	if req.Status != nil && *req.Status != "" {
		status, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	clients, err := s.clientRepo.GetByIDs(ctx, clientIDs(reservations))
	if err != nil {
		s.logger.Error("List: failed to load clients: %v", err)
		return nil, fmt.Errorf("%w: List - load clients: %v", ErrInternal, err)
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	result := &models.ReservationListResponse{
		Reservations: make([]models.ReservationResponse, 0, len(reservations)),
		Limit:        filter.Limit,
		Offset:       filter.Offset,
		PageSize:     len(reservations),
		SearchScope:  models.SearchScopePage,
	}
	for _, r := range reservations {
		c := clients[r.ClientID]
		if query != "" && !matches(r, c, query) {
			continue
		}
		result.Reservations = append(result.Reservations, *models.FromDomainReservation(r, c))
	}
	result.Matched = len(result.Reservations)

	s.logger.Info("List: fetched %d reservations, matched %d", result.PageSize, result.Matched)
	return result, nil
}

// GetByID получает бронирование вместе с клиентом
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	r, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	c, err := s.clientRepo.GetByID(ctx, r.ClientID)
	if err != nil {
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Error("GetByID: failed to load client id=%s: %v", r.ClientID, err)
			return nil, fmt.Errorf("%w: GetByID - load client: %v", ErrInternal, err)
		}
		s.logger.Warn("GetByID: client id=%s of reservation id=%s not found", r.ClientID, id)
		c = nil
	}

	return models.FromDomainReservation(r, c), nil
}

// ChangeStatus переводит бронирование вперед по жизненному циклу или отменяет его
func (s *Service) ChangeStatus(ctx context.Context, id string, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("ChangeStatus: reservation id=%s to status=%s (version=%d)", id, req.Status, req.Version)

	target, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("ChangeStatus: invalid status=%s for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	r, err := s.getReservation(ctx, "ChangeStatus", id)
	if err != nil {
		return nil, err
	}

	if r.Status == target {
		s.logger.Warn("ChangeStatus: reservation id=%s already has status=%s", id, target)
		return nil, ErrNoStatusChange
	}
	if !r.Status.CanTransitionTo(target) {
		s.logger.Warn("ChangeStatus: transition %s -> %s is not allowed for reservation id=%s", r.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, target)
	}

	return s.writeStatus(ctx, "ChangeStatus", r, target, req.Version)
}

// Reopen возвращает бронирование на более раннюю стадию, в том числе из cancelled
func (s *Service) Reopen(ctx context.Context, id string, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Reopen: reservation id=%s to status=%s (version=%d)", id, req.Status, req.Version)

	target, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("Reopen: invalid status=%s for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	r, err := s.getReservation(ctx, "Reopen", id)
	if err != nil {
		return nil, err
	}

	if r.Status == target {
		return nil, ErrNoStatusChange
	}
	if !r.Status.CanReopenTo(target) {
		s.logger.Warn("Reopen: reopen %s -> %s is not allowed for reservation id=%s", r.Status, target, id)
		return nil, fmt.Errorf("%w: cannot reopen %s -> %s", ErrInvalidTransition, r.Status, target)
	}

	return s.writeStatus(ctx, "Reopen", r, target, req.Version)
}

// Update правит поля бронирования. Статус меняется только через ChangeStatus/Reopen
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: reservation id=%s (version=%d)", id, req.Version)

	upd := req.ToDomainUpdate()
	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := validateUpdate(&upd); err != nil {
		s.logger.Warn("Update: invalid input for reservation id=%s: %v", id, err)
		return nil, err
	}

	r, err := s.getReservation(ctx, "Update", id)
	if err != nil {
		return nil, err
	}
	if r.Version != req.Version {
		s.logger.Warn("Update: stale version for reservation id=%s: have %d, got %d", id, r.Version, req.Version)
		return nil, ErrStaleVersion
	}

	upd.Apply(r)

	if r.DestinationLocation != nil && domain.SameLocation(r.PickupLocation, *r.DestinationLocation) {
		s.logger.Warn("Update: reservation id=%s pickup and destination are the same location", id)
		return nil, fmt.Errorf("%w: destinationLocation must differ from pickupLocation", ErrInvalidInput)
	}

	if err := s.reservationRepo.Update(ctx, r); err != nil {
		return nil, s.mapWriteError("Update", id, err)
	}

	s.logger.Info("Update: reservation id=%s updated, version=%d", id, r.Version)
	return models.FromDomainReservation(r, nil), nil
}

// Delete применяет политику удаления: cancel переводит в cancelled, delete удаляет строку.
// Повторная отмена уже отмененного бронирования не ошибка
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: reservation id=%s, policy=%s", id, s.deletePolicy)

	if s.deletePolicy == DeletePolicyDelete {
		if err := s.reservationRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Delete: reservation id=%s not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	}

	r, err := s.getReservation(ctx, "Delete", id)
	if err != nil {
		return err
	}
	if r.Status == domain.StatusCancelled {
		return nil
	}
	if !r.Status.CanTransitionTo(domain.StatusCancelled) {
		s.logger.Warn("Delete: reservation id=%s in status=%s cannot be cancelled", id, r.Status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, domain.StatusCancelled)
	}

	_, err = s.writeStatus(ctx, "Delete", r, domain.StatusCancelled, r.Version)
	return err
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op, id string) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return r, nil
}

func (s *Service) writeStatus(ctx context.Context, op string, r *domain.Reservation, target domain.ReservationStatus, version int) (*models.ReservationResponse, error) {
	newVersion, err := s.reservationRepo.UpdateStatus(ctx, r.ID, target, version)
	if err != nil {
		return nil, s.mapWriteError(op, r.ID, err)
	}

	s.logger.Info("%s: reservation id=%s moved %s -> %s, version=%d", op, r.ID, r.Status, target, newVersion)
	r.Status = target
	r.Version = newVersion
	return models.FromDomainReservation(r, nil), nil
}

func (s *Service) mapWriteError(op, id string, err error) error {
	if errors.Is(err, reservationRepo.ErrStaleVersion) {
		s.logger.Warn("%s: stale version for reservation id=%s", op, id)
		return ErrStaleVersion
	}
	s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateUpdate(u *domain.ReservationUpdate) error {
	switch {
	case u.Passengers != nil && *u.Passengers < domain.MinPassengers:
		return fmt.Errorf("%w: passengers must be at least %d", ErrInvalidInput, domain.MinPassengers)
	case u.BabySeats != nil && *u.BabySeats < 0:
		return fmt.Errorf("%w: babySeats must not be negative", ErrInvalidInput)
	case u.BoosterSeats != nil && *u.BoosterSeats < 0:
		return fmt.Errorf("%w: boosterSeats must not be negative", ErrInvalidInput)
	case u.TotalPrice != nil && *u.TotalPrice <= 0:
		return fmt.Errorf("%w: totalPrice must be positive", ErrInvalidInput)
	case u.Notes != nil && len(*u.Notes) > domain.MaxNotesLength:
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	case u.PickupLocation != nil && strings.TrimSpace(*u.PickupLocation) == "":
		return fmt.Errorf("%w: pickupLocation must not be empty", ErrInvalidInput)
	case u.VehicleTypeID != nil && strings.TrimSpace(*u.VehicleTypeID) == "":
		return fmt.Errorf("%w: vehicleTypeId must not be empty", ErrInvalidInput)
	case u.Date != nil && strings.TrimSpace(*u.Date) == "":
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	case u.Time != nil && strings.TrimSpace(*u.Time) == "":
		return fmt.Errorf("%w: time must not be empty", ErrInvalidInput)
	}
	return nil
}

// matches ищет подстроку q (уже в нижнем регистре) в id, адресах и данных клиента
func matches(r *domain.Reservation, c *domain.Client, q string) bool {
	candidates := []string{r.ID, r.PickupLocation}
	if r.DestinationLocation != nil {
		candidates = append(candidates, *r.DestinationLocation)
	}
	if c != nil {
		candidates = append(candidates, c.FullName(), c.Email)
	}
	for _, v := range candidates {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func clientIDs(reservations []*domain.Reservation) []string {
	seen := make(map[string]struct{}, len(reservations))
	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.ClientID]; ok {
			continue
		}
		seen[r.ClientID] = struct{}{}
		ids = append(ids, r.ClientID)
	}
	return ids
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
