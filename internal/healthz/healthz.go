// Package healthz exposes the liveness probe used by the load balancer
// and orchestrator, a thin wrapper around a single round-trip to the
// database.
package healthz

import (
	"context"
	"net/http"
)

// Pinger is satisfied by pgstore.Store. Handler only needs connectivity,
// not the rest of the store's surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler returns the /healthz handler. GET returns 200 "ALIVE" on a
// successful ping; HEAD returns 204. A failed ping surfaces as 503
// without leaking the driver error to the client.
func Handler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}
