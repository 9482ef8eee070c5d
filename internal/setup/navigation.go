package setup

import (
	"context"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/internal/ui"
	"github.com/bornholm/vitrine/internal/visibility"
	"github.com/pkg/errors"
)

var NewNavbarFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (ui.NavbarTemplateData, error) {
	items := make([]schema.NavItem, 0, len(conf.Navigation.Items))
	for _, i := range conf.Navigation.Items {
		items = append(items, schema.NavItem{
			Label:        string(i.Label),
			Href:         string(i.Href),
			AuthRequired: bool(i.AuthRequired),
		})
	}

	rule := visibility.NewRule(string(conf.Navigation.Visibility))
	if err := rule.Compile(); err != nil {
		return ui.NavbarTemplateData{}, errors.Wrapf(err, "invalid navigation visibility rule '%s'", rule)
	}

	// Visitors are never authenticated
	visible, err := visibility.Filter(items, rule, visibility.Env{Authenticated: false})
	if err != nil {
		return ui.NavbarTemplateData{}, errors.WithStack(err)
	}

	navbar, err := ui.NewNavbarTemplateData(ctx, visible, string(conf.Navigation.Welcome))
	if err != nil {
		return ui.NavbarTemplateData{}, errors.WithStack(err)
	}

	return navbar, nil
})
