package catalog

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

var fieldColumns = []string{
	"id",
	"service_id",
	"field_key",
	"field_type",
	"label",
	"required",
	"options",
	"min_value",
	"max_value",
	"is_pickup",
	"is_destination",
	"default_value",
	"field_order",
}

// ListFields возвращает поля услуги в порядке field_order
func (r *Repository) ListFields(ctx context.Context, serviceID string) ([]domain.ServiceField, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("service_fields").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("field_order ASC", "field_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFields - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFields - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]domain.ServiceField, 0)
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFields - scan row: %v", ErrScanRow, err)
		}
		fields = append(fields, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFields - rows error: %v", ErrScanRow, err)
	}

	return fields, nil
}

// GetField получает поле услуги
func (r *Repository) GetField(ctx context.Context, serviceID, fieldID string) (*domain.ServiceField, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("service_fields").
		Where(squirrel.Eq{"id": fieldID, "service_id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetField - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanField(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetField - scan field: %v", ErrScanRow, err)
	}

	return f, nil
}

// CreateField сохраняет новое поле услуги
func (r *Repository) CreateField(ctx context.Context, f *domain.ServiceField) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	options, err := encodeOptions(f.Options)
	if err != nil {
		return fmt.Errorf("%w: CreateField - encode options: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("service_fields").
		Columns(fieldColumns...).
		Values(
			f.ID,
			f.ServiceID,
			f.FieldKey,
			f.FieldType,
			f.Label,
			f.Required,
			options,
			f.Min,
			f.Max,
			f.IsPickup,
			f.IsDestination,
			f.DefaultValue,
			f.FieldOrder,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateField - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: CreateField - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateField перезаписывает поле услуги
func (r *Repository) UpdateField(ctx context.Context, f *domain.ServiceField) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	options, err := encodeOptions(f.Options)
	if err != nil {
		return fmt.Errorf("%w: UpdateField - encode options: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("service_fields").
		Set("field_key", f.FieldKey).
		Set("field_type", f.FieldType).
		Set("label", f.Label).
		Set("required", f.Required).
		Set("options", options).
		Set("min_value", f.Min).
		Set("max_value", f.Max).
		Set("is_pickup", f.IsPickup).
		Set("is_destination", f.IsDestination).
		Set("default_value", f.DefaultValue).
		Set("field_order", f.FieldOrder).
		Where(squirrel.Eq{"id": f.ID, "service_id": f.ServiceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateField - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: UpdateField - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateField - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// DeleteField удаляет поле услуги
func (r *Repository) DeleteField(ctx context.Context, serviceID, fieldID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_fields").
		Where(squirrel.Eq{"id": fieldID, "service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteField - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteField - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteField - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func scanField(row rowScanner) (*domain.ServiceField, error) {
	var (
		f            domain.ServiceField
		options      []byte
		minValue     sql.NullFloat64
		maxValue     sql.NullFloat64
		defaultValue sql.NullString
	)

	err := row.Scan(
		&f.ID,
		&f.ServiceID,
		&f.FieldKey,
		&f.FieldType,
		&f.Label,
		&f.Required,
		&options,
		&minValue,
		&maxValue,
		&f.IsPickup,
		&f.IsDestination,
		&defaultValue,
		&f.FieldOrder,
	)
	if err != nil {
		return nil, err
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &f.Options); err != nil {
			return nil, fmt.Errorf("decode options: %v", err)
		}
	}
	if minValue.Valid {
		f.Min = &minValue.Float64
	}
	if maxValue.Valid {
		f.Max = &maxValue.Float64
	}
	if defaultValue.Valid {
		f.DefaultValue = &defaultValue.String
	}

	return &f, nil
}

func encodeOptions(options []string) ([]byte, error) {
	if options == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(options)
}
