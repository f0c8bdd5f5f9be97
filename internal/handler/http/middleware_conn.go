package http

import (
	"net/http"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/store"
)

// withRequestDB attaches a lazily-acquired database connection slot to the
// request context. The connection is only taken from the pool when a
// repository first touches the database, and it is always returned to the
// pool when the request finishes, whether the handler succeeded or not.
func (h *Handler) withRequestDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := store.NewRequestConn(h.db)
		defer func() {
			if err := rc.Release(); err != nil {
				logger.FromRequest(r).Err(err).Msg("error releasing request connection")
			}
		}()

		ctx := store.WithRequestConn(r.Context(), rc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
