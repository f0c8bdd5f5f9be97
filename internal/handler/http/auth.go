package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/service"
	"github.com/MKhiriev/go-blogr/internal/store"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", viewData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.RegisterUser(ctx, username, password)
	if err != nil {
		switch {
		// validation and duplicate failures re-render the form with a
		// message; the response itself succeeds
		case errors.Is(err, service.ErrInvalidData):
			log.Debug().Err(err).Msg("registration rejected: invalid data")
			h.render(w, r, http.StatusOK, "register", viewData{
				Username: username,
				Error:    "Username and password are required.",
			})
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Debug().Err(err).Str("username", username).Msg("registration rejected: username taken")
			h.render(w, r, http.StatusOK, "register", viewData{
				Username: username,
				Error:    fmt.Sprintf("User %q is already registered.", username),
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", viewData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		// a missing user and a wrong password must be indistinguishable
		case errors.Is(err, service.ErrInvalidData), errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Err(err).Msg("login rejected")
			clearSessionCookie(w)
			h.render(w, r, http.StatusOK, "login", viewData{
				Username: username,
				Error:    "Incorrect username or password.",
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateSession(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// a fresh session replaces any prior one
	setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logout expires the session cookie unconditionally; logging out while
// already anonymous is a no-op.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
