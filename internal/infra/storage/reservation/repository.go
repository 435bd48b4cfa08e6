package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TransferService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"client_id",
	"service_id",
	"vehicle_type_id",
	"date",
	"time",
	"pickup_location",
	"destination_location",
	"passengers",
	"baby_seats",
	"booster_seats",
	"meet_and_greet",
	"service_sub_data",
	"notes",
	"total_price",
	"status",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID генерируется вызывающей стороной.
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subData, err := encodeSubData(res.ServiceSubData)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncodeSubData, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_id",
			"service_id",
			"vehicle_type_id",
			"date",
			"time",
			"pickup_location",
			"destination_location",
			"passengers",
			"baby_seats",
			"booster_seats",
			"meet_and_greet",
			"service_sub_data",
			"notes",
			"total_price",
			"status",
		).
		Values(
			res.ID,
			res.ClientID,
			res.ServiceID,
			res.VehicleTypeID,
			res.Date,
			res.Time,
			res.PickupLocation,
			res.DestinationLocation,
			res.Passengers,
			res.BabySeats,
			res.BoosterSeats,
			res.MeetAndGreet,
			subData,
			res.Notes,
			res.TotalPrice,
			res.Status,
		).
		Suffix("RETURNING version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.Version, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List возвращает страницу бронирований, новые первыми.
// В SQL уходят только status, limit и offset
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
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

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus меняет статус, если версия в БД совпадает с expectedVersion.
// Возвращает новую версию
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, expectedVersion int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var version int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrStaleVersion
	}
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return version, nil
}

// Update перезаписывает изменяемые поля бронирования с проверкой версии.
// При успехе res.Version и res.UpdatedAt обновляются
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subData, err := encodeSubData(res.ServiceSubData)
	if err != nil {
		return fmt.Errorf("%w: Update - %v", ErrEncodeSubData, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("vehicle_type_id", res.VehicleTypeID).
		Set("date", res.Date).
		Set("time", res.Time).
		Set("pickup_location", res.PickupLocation).
		Set("destination_location", res.DestinationLocation).
		Set("passengers", res.Passengers).
		Set("baby_seats", res.BabySeats).
		Set("booster_seats", res.BoosterSeats).
		Set("meet_and_greet", res.MeetAndGreet).
		Set("service_sub_data", subData).
		Set("notes", res.Notes).
		Set("total_price", res.TotalPrice).
		Set("status", res.Status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID, "version": res.Version}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.Version, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStaleVersion
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	res.UpdatedAt = updatedAt.Time
	return nil
}

// Delete физически удаляет бронирование.
// Используется только при политике удаления "delete", по умолчанию бронирование отменяется
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
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку с колонками columns
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		destination, notes   sql.NullString
		totalPrice           sql.NullFloat64
		subData              []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.ServiceID,
		&res.VehicleTypeID,
		&res.Date,
		&res.Time,
		&res.PickupLocation,
		&destination,
		&res.Passengers,
		&res.BabySeats,
		&res.BoosterSeats,
		&res.MeetAndGreet,
		&subData,
		&notes,
		&totalPrice,
		&res.Status,
		&res.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if destination.Valid {
		res.DestinationLocation = &destination.String
	}
	if notes.Valid {
		res.Notes = &notes.String
	}
	if totalPrice.Valid {
		res.TotalPrice = &totalPrice.Float64
	}

	res.ServiceSubData = make(map[string]interface{})
	if len(subData) > 0 {
		if err := json.Unmarshal(subData, &res.ServiceSubData); err != nil {
			return nil, fmt.Errorf("decode service_sub_data: %v", err)
		}
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func encodeSubData(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(data)
}
