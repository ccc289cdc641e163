package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nsqtop/internal/shared/loggers"
	"nsqtop/internal/shared/metrics"
)

// NewRouter creates the debug router: liveness plus the Prometheus scrape
// endpoint. It only exists when the operator opts in with --debug-addr.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
