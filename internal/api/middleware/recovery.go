package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

// Recovery превращает панику обработчика в 500 и пишет стек в лог
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("%s %s - Panic recovered: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
					w.Header().Set("Connection", "close")
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
