package list_reservations

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
	"github.com/m04kA/SMC-TransferService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров status, limit, offset, q
func ToServiceRequest(r *http.Request) (*models.ListReservationsRequest, error) {
	limit, offset, err := handlers.ParsePage(r)
	if err != nil {
		return nil, err
	}

	q := r.URL.Query()
	req := &models.ListReservationsRequest{
		Limit:  limit,
		Offset: offset,
		Query:  strings.TrimSpace(q.Get("q")),
	}
	if status := strings.TrimSpace(q.Get("status")); status != "" {
		req.Status = &status
	}
	return req, nil
}
