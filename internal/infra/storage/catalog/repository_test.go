package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetService(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs("airport-transfers").
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow("airport-transfers", "Airport transfers", "CDG, ORY, BVA", nil, true, true, now, now))

	s, err := repo.GetService(context.Background(), "airport-transfers")
	require.NoError(t, err)
	assert.Equal(t, "Airport transfers", s.Name)
	assert.Nil(t, s.CategoryID)
	assert.True(t, s.IsAvailable)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err = repo.GetService(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListServices_OnlyAvailable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE is_available = $1 ORDER BY is_popular DESC, name ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	services, err := repo.ListServices(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, services)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListFields(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_fields WHERE service_id = $1 ORDER BY field_order ASC, field_key ASC")).
		WithArgs("private-tours").
		WillReturnRows(sqlmock.NewRows(fieldColumns).
			AddRow("f-1", "private-tours", "tour", "select", "Tour", true, []byte(`["louvre","versailles"]`),
				nil, nil, false, false, "louvre", 1).
			AddRow("f-2", "private-tours", "hours", "number", "Hours", false, []byte(`[]`),
				2.0, 8.0, false, false, nil, 2))

	fields, err := repo.ListFields(context.Background(), "private-tours")
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, domain.FieldSelect, fields[0].FieldType)
	assert.Equal(t, []string{"louvre", "versailles"}, fields[0].Options)
	require.NotNil(t, fields[0].DefaultValue)
	assert.Equal(t, "louvre", *fields[0].DefaultValue)

	require.NotNil(t, fields[1].Min)
	assert.Equal(t, 2.0, *fields[1].Min)
	assert.Nil(t, fields[1].DefaultValue)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateField_Duplicate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO service_fields")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateField(context.Background(), &domain.ServiceField{
		ID: "f-3", ServiceID: "private-tours", FieldKey: "tour", FieldType: domain.FieldText, Max: ptr.Ptr(3.0),
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRepository_DeleteField_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM service_fields WHERE id = $1 AND service_id = $2")).
		WithArgs("f-9", "private-tours").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteField(context.Background(), "private-tours", "f-9")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestRepository_GetVehicleType(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_types WHERE id = $1")).
		WithArgs("van").
		WillReturnRows(sqlmock.NewRows(vehicleTypeColumns).AddRow("van", "Van", "Mercedes V-Class", 1, 7, now))

	v, err := repo.GetVehicleType(context.Background(), "van")
	require.NoError(t, err)
	assert.Equal(t, 7, v.MaxPassengers)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_types WHERE id = $1")).
		WithArgs("bus").
		WillReturnRows(sqlmock.NewRows(vehicleTypeColumns))

	_, err = repo.GetVehicleType(context.Background(), "bus")
	assert.ErrorIs(t, err, ErrVehicleTypeNotFound)
}

func TestRepository_ListLocations(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, type, created_at FROM locations ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "created_at"}).
			AddRow("cdg", "Charles de Gaulle", "airport", now).
			AddRow("paris", "Paris", "city", now))

	locations, err := repo.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, domain.LocationAirport, locations[0].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}
