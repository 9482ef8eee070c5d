package portfolio

import (
	"io/fs"
	"net/http"

	"github.com/bornholm/vitrine/internal/catalog"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/internal/ui"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	DefaultSessionName = "vitrine"
	ToggleEndpoint     = "/toggle"
)

type SocialLink struct {
	Label string
	URL   string
}

type Site struct {
	Name        string
	Description string
	Hero        ui.HeroTemplateData
	Links       []SocialLink
}

type Options struct {
	Site        Site
	SessionName string
	Toggle      []ui.ToggleOptionFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Site: Site{
			Name: "Portfolio",
		},
		SessionName: DefaultSessionName,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSite(site Site) OptionFunc {
	return func(opts *Options) {
		opts.Site = site
	}
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

func WithToggleOptions(funcs ...ui.ToggleOptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.Toggle = append(opts.Toggle, funcs...)
	}
}

// Handler serves the portfolio pages, the call-to-action fragment and a
// read-only JSON view of the catalog. It holds no mutable state: the toggle
// state of each visitor lives in their session.
type Handler struct {
	catalog  *catalog.Catalog
	navbar   ui.NavbarTemplateData
	sessions sessions.Store
	site     Site
	// toggle holds the defaults every visitor button is built from
	toggle      *ui.ToggleOptions
	toggleFuncs []ui.ToggleOptionFunc
	sessionName string
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler rejects missing collaborators with schema.ErrRenderInput.
func NewHandler(catalog *catalog.Catalog, navbar ui.NavbarTemplateData, store sessions.Store, funcs ...OptionFunc) (*Handler, error) {
	if catalog == nil {
		return nil, errors.Wrap(schema.ErrRenderInput, "project catalog must not be nil")
	}

	if navbar.NavbarItems == nil {
		return nil, errors.Wrap(schema.ErrRenderInput, "navigation items must not be nil")
	}

	if store == nil {
		return nil, errors.Wrap(schema.ErrRenderInput, "session store must not be nil")
	}

	opts := NewOptions(funcs...)

	handler := &Handler{
		catalog:     catalog,
		navbar:      navbar,
		sessions:    store,
		site:        opts.Site,
		toggle:      ui.NewToggleOptions(opts.Toggle...),
		toggleFuncs: opts.Toggle,
		sessionName: opts.SessionName,
		mux:         &http.ServeMux{},
	}

	staticRoot, err := fs.Sub(staticFs, "static")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler.mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(staticRoot)))

	handler.mux.HandleFunc("GET /{$}", handler.serveHome)
	handler.mux.HandleFunc("GET /projects", handler.serveProjects)

	handler.mux.HandleFunc("GET "+ToggleEndpoint, handler.serveToggle)
	handler.mux.HandleFunc("POST "+ToggleEndpoint, handler.handleToggleActivation)

	handler.mux.HandleFunc("GET /api/health", handler.serveHealth)
	handler.mux.HandleFunc("GET /api/projects", handler.serveAPIProjects)
	handler.mux.HandleFunc("GET /api/projects/{id}", handler.serveAPIProject)

	return handler, nil
}

var _ http.Handler = &Handler{}
