package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/service"
	"github.com/MKhiriev/go-blogr/internal/store"
)

// handleServiceError writes the HTTP response for service-layer failures that
// do not re-render a form: missing posts, ownership violations, and anything
// unexpected.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrPostNotFound):
		log.Debug().Err(err).Msg("post not found")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, service.ErrNotOwner):
		log.Debug().Err(err).Msg("post belongs to another user")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	default:
		log.Err(err).Msg("unexpected error occurred while handling request")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
