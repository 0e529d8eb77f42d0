package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/ihealth/internal/telemetry/metrics"
	"github.com/2beens/ihealth/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery answers 500 for a panicking handler and counts it.
// http.ErrAbortHandler is re-raised for net/http to handle.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Errorf("recovered panic: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteResponse(w, pkg.ContentType.Text, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
