package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TransferService/pkg/psqlbuilder"
)

var vehicleTypeColumns = []string{"id", "name", "description", "min_passengers", "max_passengers", "created_at"}

// ListLocations возвращает все локации
func (r *Repository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "created_at").
		From("locations").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		var createdAt sql.NullTime
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		l.CreatedAt = createdAt.Time
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// CreateLocation сохраняет локацию
func (r *Repository) CreateLocation(ctx context.Context, l *domain.Location) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locations").
		Columns("id", "name", "type").
		Values(l.ID, l.Name, l.Type).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateLocation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: CreateLocation - execute insert: %v", ErrExecQuery, err)
	}
	l.CreatedAt = createdAt.Time

	return nil
}

// ListVehicleTypes возвращает все типы автомобилей
func (r *Repository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleTypeColumns...).
		From("vehicle_types").
		OrderBy("max_passengers ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicleTypes := make([]domain.VehicleType, 0)
	for rows.Next() {
		v, err := scanVehicleType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVehicleTypes - scan row: %v", ErrScanRow, err)
		}
		vehicleTypes = append(vehicleTypes, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicleTypes - rows error: %v", ErrScanRow, err)
	}

	return vehicleTypes, nil
}

// GetVehicleType получает тип автомобиля по ID
func (r *Repository) GetVehicleType(ctx context.Context, id string) (*domain.VehicleType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleTypeColumns...).
		From("vehicle_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicleType - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicleType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicleType - scan vehicle type: %v", ErrScanRow, err)
	}

	return v, nil
}

// CreateVehicleType сохраняет тип автомобиля
func (r *Repository) CreateVehicleType(ctx context.Context, v *domain.VehicleType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_types").
		Columns("id", "name", "description", "min_passengers", "max_passengers").
		Values(v.ID, v.Name, v.Description, v.MinPassengers, v.MaxPassengers).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateVehicleType - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: CreateVehicleType - execute insert: %v", ErrExecQuery, err)
	}
	v.CreatedAt = createdAt.Time

	return nil
}

func scanVehicleType(row rowScanner) (*domain.VehicleType, error) {
	var v domain.VehicleType
	var createdAt sql.NullTime

	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.MinPassengers, &v.MaxPassengers, &createdAt); err != nil {
		return nil, err
	}
	v.CreatedAt = createdAt.Time

	return &v, nil
}
