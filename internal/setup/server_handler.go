package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/portfolio"
	"github.com/bornholm/vitrine/internal/ratelimit"
	"github.com/bornholm/vitrine/internal/ui"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	catalog, err := NewCatalogFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	navbar, err := NewNavbarFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	portfolioHandler, err := portfolio.NewHandler(catalog, navbar, sessionStore,
		portfolio.WithSite(newSiteFromConfig(conf)),
		portfolio.WithToggleOptions(newToggleOptionsFromConfig(conf)...),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst))
	rateLimiterMiddleware := rateLimiter.Middleware(ratelimit.RemoteAddr)

	slogMiddleware := sloghttp.New(slog.Default())

	mux.Handle("POST "+portfolio.ToggleEndpoint, rateLimiterMiddleware(portfolioHandler))
	mux.Handle("/", portfolioHandler)

	return withRequestID(slogMiddleware(mux)), nil
}

// withRequestID attaches a unique identifier to every log record emitted
// while serving a request.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := xid.New().String()

		ctx := log.WithAttrs(r.Context(), slog.String("requestID", requestID))
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newSiteFromConfig(conf *config.Config) portfolio.Site {
	links := make([]portfolio.SocialLink, 0, len(conf.Site.Links))
	for _, l := range conf.Site.Links {
		links = append(links, portfolio.SocialLink{
			Label: string(l.Label),
			URL:   string(l.URL),
		})
	}

	return portfolio.Site{
		Name:        string(conf.Site.Name),
		Description: string(conf.Site.Description),
		Hero: ui.HeroTemplateData{
			Title:     string(conf.Site.Hero.Title),
			Highlight: string(conf.Site.Hero.Highlight),
			Tagline:   string(conf.Site.Hero.Tagline),
		},
		Links: links,
	}
}

func newToggleOptionsFromConfig(conf *config.Config) []ui.ToggleOptionFunc {
	return []ui.ToggleOptionFunc{
		ui.WithPromptLabel(string(conf.Button.PromptLabel)),
		ui.WithActiveLabel(string(conf.Button.ActiveLabel)),
		ui.WithInitialActive(bool(conf.Button.InitialActive)),
		ui.WithTargetHref(string(conf.Button.TargetHref)),
		ui.WithStyleOverride(string(conf.Button.Style)),
	}
}
