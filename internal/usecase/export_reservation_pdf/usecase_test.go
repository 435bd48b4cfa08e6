package export_reservation_pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TransferService/internal/integrations/pdfrenderer"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
	"github.com/m04kA/SMC-TransferService/pkg/ptr"
)

type fakeReservations map[string]*domain.Reservation

func (f fakeReservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := f[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

type fakeClients map[string]*domain.Client

func (f fakeClients) GetByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := f[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type fakeCatalog struct {
	locationsErr error
}

func (f *fakeCatalog) GetService(_ context.Context, id string) (*domain.Service, error) {
	if id != "airport-transfers" {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: id, Name: "Airport transfers"}, nil
}

func (f *fakeCatalog) ListFields(context.Context, string) ([]domain.ServiceField, error) {
	return []domain.ServiceField{
		{FieldKey: "luggage", Label: "Luggage", FieldType: domain.FieldNumber, FieldOrder: 2},
		{FieldKey: "flightNumber", Label: "Flight number", FieldType: domain.FieldText, FieldOrder: 1},
	}, nil
}

func (f *fakeCatalog) GetVehicleType(_ context.Context, id string) (*domain.VehicleType, error) {
	if id != "car" {
		return nil, catalogRepo.ErrVehicleTypeNotFound
	}
	return &domain.VehicleType{ID: id, Name: "Sedan"}, nil
}

func (f *fakeCatalog) ListLocations(context.Context) ([]domain.Location, error) {
	return []domain.Location{{ID: "cdg", Name: "Charles de Gaulle"}}, f.locationsErr
}

type captureRenderer struct {
	doc *pdfrenderer.ReservationDocument
}

func (c *captureRenderer) Render(doc *pdfrenderer.ReservationDocument) ([]byte, error) {
	c.doc = doc
	return []byte("%PDF-1.3"), nil
}

func newReservations() fakeReservations {
	return fakeReservations{
		"r-1": {
			ID: "r-1", ClientID: "c-1", ServiceID: "airport-transfers", VehicleTypeID: "car",
			PickupLocation: "cdg", DestinationLocation: ptr.Ptr("12 Rue de Rivoli, Paris"),
			Passengers: 2, Status: domain.StatusQuoteRequested,
			ServiceSubData: map[string]interface{}{"luggage": 3.0, "flightNumber": "AF123", "extra": "x"},
		},
		"r-2": {
			ID: "r-2", ClientID: "c-404", ServiceID: "deleted-service", VehicleTypeID: "boat",
			PickupLocation: "Hotel Lutetia", TotalPrice: ptr.Ptr(120.0), Status: domain.StatusConfirmed,
		},
	}
}

func TestExecute(t *testing.T) {
	renderer := &captureRenderer{}
	uc := NewUseCase(newReservations(), fakeClients{"c-1": {ID: "c-1", FirstName: "Marie", LastName: "Curie", Email: "marie@example.com"}},
		&fakeCatalog{}, renderer, "EUR", logger.Nop())

	resp, err := uc.Execute(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "reservation-r-1.pdf", resp.FileName)
	assert.True(t, bytes.HasPrefix(resp.Content, []byte("%PDF")))

	doc := renderer.doc
	assert.Equal(t, "Marie Curie", doc.ClientName)
	assert.Equal(t, "Airport transfers", doc.ServiceName)
	assert.Equal(t, "Sedan", doc.VehicleTypeName)
	assert.Equal(t, "Charles de Gaulle", doc.Pickup)
	assert.Equal(t, "12 Rue de Rivoli, Paris", doc.Destination)
	assert.Nil(t, doc.TotalPrice)
	assert.Equal(t, []pdfrenderer.Line{
		{Label: "Flight number", Value: "AF123"},
		{Label: "Luggage", Value: "3"},
		{Label: "extra", Value: "x"},
	}, doc.Details)
}

func TestExecute_MissingReferenceData(t *testing.T) {
	renderer := &captureRenderer{}
	uc := NewUseCase(newReservations(), fakeClients{}, &fakeCatalog{}, renderer, "EUR", logger.Nop())

	_, err := uc.Execute(context.Background(), "r-2")
	require.NoError(t, err)
	assert.Equal(t, "deleted-service", renderer.doc.ServiceName)
	assert.Equal(t, "boat", renderer.doc.VehicleTypeName)
	assert.Empty(t, renderer.doc.ClientName)
	assert.Equal(t, 120.0, *renderer.doc.TotalPrice)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(newReservations(), fakeClients{}, &fakeCatalog{}, &captureRenderer{}, "EUR", logger.Nop())
	_, err := uc.Execute(context.Background(), "r-404")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	uc = NewUseCase(newReservations(), fakeClients{}, &fakeCatalog{locationsErr: errors.New("timeout")}, &captureRenderer{}, "EUR", logger.Nop())
	_, err = uc.Execute(context.Background(), "r-2")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RealRenderer(t *testing.T) {
	uc := NewUseCase(newReservations(), fakeClients{}, &fakeCatalog{}, pdfrenderer.New("Paris Chauffeur"), "EUR", logger.Nop())

	resp, err := uc.Execute(context.Background(), "r-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(resp.Content, []byte("%PDF-")))
}
