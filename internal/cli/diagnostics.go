package cli

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reframe-systems/tesseract-planning/internal/observability"
)

// ServeDiagnostics starts the optional diagnostics listener exposing health
// and metrics. It returns the server so the caller controls shutdown.
func ServeDiagnostics(addr string, metrics *observability.Metrics, log *slog.Logger) *http.Server {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("diagnostics listener failed", "err", err)
		}
	}()
	return srv
}
