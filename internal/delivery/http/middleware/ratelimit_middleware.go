package middleware

import (
	"net/http"

	"healthhub-directory/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles a route with a single token bucket shared by all
// clients. A zero rate disables it.
type RateLimitMiddleware struct {
	limiter *rate.Limiter
}

func NewRateLimitMiddleware(perSecond float64, burst int) *RateLimitMiddleware {
	if perSecond <= 0 {
		return &RateLimitMiddleware{}
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitMiddleware{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter != nil && !m.limiter.Allow() {
			response.TooManyRequests(w, "Too many suggestion requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
