package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TransferService/pkg/psqlbuilder"
)

const table = "service_vehicle_pricing"

var columns = []string{
	"id",
	"service_id",
	"vehicle_type_id",
	"pickup_location_id",
	"destination_location_id",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий фиксированных цен
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByKey возвращает все строки с данным ключом, новые первыми (created_at DESC, id DESC).
// Больше одной строки означает нарушение целостности, решение принимает вызывающая сторона
func (r *Repository) FindByKey(ctx context.Context, key domain.PricingKey) ([]*domain.ServiceVehiclePricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(keyCondition(key)).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "FindByKey", query, args)
}

// GetByID получает строку цены по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceVehiclePricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPricing(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPricingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pricing: %v", ErrScanRow, err)
	}

	return p, nil
}

// List возвращает строки цен с фильтрацией по услуге и типу автомобиля
func (r *Repository) List(ctx context.Context, filter domain.PricingFilter) ([]*domain.ServiceVehiclePricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("service_id ASC", "vehicle_type_id ASC", "created_at DESC", "id DESC")

	if filter.ServiceID != nil {
		builder = builder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.VehicleTypeID != nil {
		builder = builder.Where(squirrel.Eq{"vehicle_type_id": *filter.VehicleTypeID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "List", query, args)
}

// Create сохраняет строку цены, ID генерируется вызывающей стороной
func (r *Repository) Create(ctx context.Context, p *domain.ServiceVehiclePricing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "service_id", "vehicle_type_id", "pickup_location_id", "destination_location_id", "price").
		Values(p.ID, p.ServiceID, p.VehicleTypeID, p.PickupLocationID, p.DestinationLocationID, p.Price).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return nil
}

// Update перезаписывает ключ и цену строки
func (r *Repository) Update(ctx context.Context, p *domain.ServiceVehiclePricing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("service_id", p.ServiceID).
		Set("vehicle_type_id", p.VehicleTypeID).
		Set("pickup_location_id", p.PickupLocationID).
		Set("destination_location_id", p.DestinationLocationID).
		Set("price", p.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPricingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	p.UpdatedAt = updatedAt.Time

	return nil
}

// Delete удаляет строку цены
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPricingNotFound
	}

	return nil
}

// ListConflicts возвращает ключи, которым соответствует больше одной строки
func (r *Repository) ListConflicts(ctx context.Context) ([]domain.PricingConflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"service_id",
		"vehicle_type_id",
		"pickup_location_id",
		"destination_location_id",
		"COUNT(*)",
		"ARRAY_AGG(id ORDER BY created_at DESC, id DESC)",
	).
		From(table).
		GroupBy("service_id", "vehicle_type_id", "pickup_location_id", "destination_location_id").
		Having("COUNT(*) > 1").
		OrderBy("service_id ASC", "vehicle_type_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	conflicts := make([]domain.PricingConflict, 0)
	for rows.Next() {
		var c domain.PricingConflict
		err := rows.Scan(
			&c.Key.ServiceID,
			&c.Key.VehicleTypeID,
			&c.Key.PickupLocationID,
			&c.Key.DestinationLocationID,
			&c.Count,
			pq.Array(&c.IDs),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListConflicts - scan row: %v", ErrScanRow, err)
		}
		conflicts = append(conflicts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConflicts - rows error: %v", ErrScanRow, err)
	}

	return conflicts, nil
}

func (r *Repository) query(ctx context.Context, executor dbmetrics.DBExecutor, op, query string, args []interface{}) ([]*domain.ServiceVehiclePricing, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.ServiceVehiclePricing, 0)
	for rows.Next() {
		p, err := scanPricing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

func keyCondition(key domain.PricingKey) squirrel.Eq {
	return squirrel.Eq{
		"service_id":              key.ServiceID,
		"vehicle_type_id":         key.VehicleTypeID,
		"pickup_location_id":      key.PickupLocationID,
		"destination_location_id": key.DestinationLocationID,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPricing(row rowScanner) (*domain.ServiceVehiclePricing, error) {
	var p domain.ServiceVehiclePricing
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.ServiceID,
		&p.VehicleTypeID,
		&p.PickupLocationID,
		&p.DestinationLocationID,
		&p.Price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
