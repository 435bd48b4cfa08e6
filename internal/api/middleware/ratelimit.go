package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-TransferService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimiterConfig лимит на один IP
type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
	// Idle через сколько забывать IP без запросов
	Idle time.Duration
	// TrustForwarded брать IP из X-Forwarded-For (сервис за reverse proxy)
	TrustForwarded bool
}

// RateLimiter token bucket на каждый IP
type RateLimiter struct {
	cfg      RateLimiterConfig
	limiters *gocache.Cache
	logger   Logger
}

func NewRateLimiter(cfg RateLimiterConfig, logger Logger) *RateLimiter {
	if cfg.Idle <= 0 {
		cfg.Idle = 10 * time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &RateLimiter{
		cfg:      cfg,
		limiters: gocache.New(cfg.Idle, cfg.Idle),
		logger:   logger,
	}
}

// Limit оборачивает обработчик
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
			w.Header().Set("Retry-After", "1")
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	if l, ok := rl.limiters.Get(ip); ok {
		// продлеваем жизнь записи, пока IP активен
		rl.limiters.SetDefault(ip, l)
		return l.(*rate.Limiter)
	}

	l := rate.NewLimiter(rl.cfg.Rate, rl.cfg.Burst)
	// при гонке двух первых запросов побеждает первый Add
	if err := rl.limiters.Add(ip, l, gocache.DefaultExpiration); err != nil {
		if existing, ok := rl.limiters.Get(ip); ok {
			return existing.(*rate.Limiter)
		}
	}
	return l
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.cfg.TrustForwarded {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
