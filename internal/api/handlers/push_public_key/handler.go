package push_public_key

import (
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

const (
	msgPushDisabled = "push уведомления не настроены"
)

// KeyResponse VAPID ключ для pushManager.subscribe в браузере
type KeyResponse struct {
	PublicKey string `json:"publicKey"`
}

type Handler struct {
	keys   KeyProvider
	logger Logger
}

func NewHandler(keys KeyProvider, logger Logger) *Handler {
	return &Handler{
		keys:   keys,
		logger: logger,
	}
}

// Handle GET /api/push/public-key
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.keys.Enabled() {
		h.logger.Warn("GET /push/public-key - Web push is not configured")
		handlers.RespondServiceUnavailable(w, msgPushDisabled)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, KeyResponse{PublicKey: h.keys.PublicKey()})
}
