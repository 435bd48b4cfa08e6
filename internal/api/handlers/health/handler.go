package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"

	pingTimeout = 2 * time.Second
)

// Response состояние сервиса и его зависимостей
type Response struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	pingers map[string]Pinger
	logger  Logger
}

// NewHandler pingers - зависимости по имени, например {"database": db}
func NewHandler(pingers map[string]Pinger, logger Logger) *Handler {
	return &Handler{
		pingers: pingers,
		logger:  logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := Response{Status: statusOK, Dependencies: make(map[string]string, len(h.pingers))}
	for name, p := range h.pingers {
		if err := p.PingContext(ctx); err != nil {
			h.logger.Error("GET /health - Dependency %s is unavailable: %v", name, err)
			resp.Dependencies[name] = statusUnavailable
			resp.Status = statusUnavailable
			continue
		}
		resp.Dependencies[name] = statusOK
	}

	if resp.Status != statusOK {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
