package list_pricing_conflicts

import (
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/pricing/conflicts
// Ключи, для которых в таблице цен больше одной строки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListConflicts(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/pricing/conflicts - Failed to list conflicts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/pricing/conflicts - Conflicts listed: count=%d", len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
