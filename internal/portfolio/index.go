package portfolio

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/bornholm/vitrine/internal/ui"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	toggle, err := h.prepareToggle(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not prepare toggle", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := h.newPageTemplateData("", "/", toggle)

	h.renderPage(w, r, "home", data)
}

func (h *Handler) serveProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	toggle, err := h.prepareToggle(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not prepare toggle", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := ProjectsPageTemplateData{
		PageTemplateData: h.newPageTemplateData("Projects", "/projects", toggle),
		Cards:            ui.NewProjectCardsTemplateData(h.catalog.Projects()),
		ProjectCount:     h.catalog.Len(),
	}

	h.renderPage(w, r, "projects", data)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buff bytes.Buffer

	if err := render(&buff, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not render page", log.Error(errors.WithStack(err)), slog.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "could not write page", log.Error(errors.WithStack(err)), slog.String("page", name))
	}
}
