package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/utils"
	"github.com/MKhiriev/go-blogr/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates maps a page name to its parsed template set (base layout plus
// the page body). Parsed once at startup; a broken template is a programming
// error and fails fast.
var templates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	pages := []string{"index", "register", "login", "create", "update"}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed[page] = template.Must(template.ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+page+".html",
		))
	}
	return parsed
}

// viewData is the data passed to every page template.
type viewData struct {
	// User is the current identity; the zero value renders as anonymous.
	User models.User

	// Error is a validation message re-rendered above the form, if any.
	Error string

	Posts []models.Post
	Post  models.Post

	// Username, Title and Body echo submitted form values back into a
	// failed form.
	Username string
	Title    string
	Body     string
}

// render executes the named page template into a buffer first so that a
// template error never produces a half-written response body.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data viewData) {
	if user, ok := utils.GetIdentityFromContext(r.Context()); ok {
		data.User = user
	}

	tmpl, ok := templates[page]
	if !ok {
		logger.FromRequest(r).Error().Str("page", page).Msg("unknown template page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
