package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

// HeaderAdminToken заголовок со статическим токеном админки
const HeaderAdminToken = "X-Admin-Token"

const msgUnauthorized = "требуется токен администратора"

// AdminToken пропускает запрос только с верным X-Admin-Token.
// Пустой token в конфиге закрывает админку целиком
func AdminToken(token string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(HeaderAdminToken))
			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				logger.Warn("%s %s - Admin token rejected: remote=%s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
