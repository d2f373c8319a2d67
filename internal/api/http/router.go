package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewRouter assembles the full HTTP stack: mux routes wrapped with
// request logging, a global rate limiter and permissive CORS for
// the terminal frontends.
func NewRouter(h *Handler, rps float64, burst int) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	var handler http.Handler = r
	handler = rateLimitMiddleware(rate.Limit(rps), burst)(handler)
	handler = loggingMiddleware(handler)
	return cors.Default().Handler(handler)
}

func rateLimitMiddleware(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("request handled")
	})
}
