package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/service"
	"github.com/MKhiriev/go-blogr/internal/utils"
	"github.com/MKhiriev/go-blogr/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "index", viewData{Posts: posts})
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "create", viewData{})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	user, _ := utils.GetIdentityFromContext(ctx)

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	_, err := h.services.PostService.CreatePost(ctx, title, body, user)
	if err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			log.Debug().Err(err).Msg("post creation rejected: invalid data")
			h.render(w, r, http.StatusOK, "create", viewData{
				Title: title,
				Body:  body,
				Error: "Title is required.",
			})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetIdentityFromContext(ctx)

	id, err := postIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// the edit form itself is owner-only, same as the mutation behind it
	if post.AuthorID != user.UserID {
		handleServiceError(w, r, service.ErrNotOwner)
		return
	}

	h.render(w, r, http.StatusOK, "update", viewData{
		Post:  post,
		Title: post.Title,
		Body:  post.Body,
	})
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	user, _ := utils.GetIdentityFromContext(ctx)

	id, err := postIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if err := h.services.PostService.UpdatePost(ctx, id, title, body, user); err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			log.Debug().Err(err).Msg("post update rejected: invalid data")
			h.render(w, r, http.StatusOK, "update", viewData{
				Post:  models.Post{PostID: id, Title: title},
				Title: title,
				Body:  body,
				Error: "Title is required.",
			})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetIdentityFromContext(ctx)

	id, err := postIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, id, user); err != nil {
		handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postIDFromURL parses the {id} route parameter. Non-numeric ids are treated
// the same as ids that do not exist.
func postIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
