package ui

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/pkg/optional"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type NavbarTemplateData struct {
	Welcome     optional.Value[string]
	NavbarItems []schema.NavItem
	// CurrentPath is the path of the page being rendered
	CurrentPath string
}

// NewNavbarTemplateData validates and copies the given items. Items are
// rendered as given: filtering (on AuthRequired for example) must be done by
// the caller beforehand.
func NewNavbarTemplateData(ctx context.Context, items []schema.NavItem, welcome string) (NavbarTemplateData, error) {
	if err := schema.ValidateNavItems(items); err != nil {
		return NavbarTemplateData{}, errors.WithStack(err)
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.DebugContext(ctx, "navbar items", slog.String("items", spew.Sdump(items)))
	}

	return NavbarTemplateData{
		Welcome:     optional.NonEmpty(welcome),
		NavbarItems: slices.Clone(items),
	}, nil
}

// WithCurrentPath returns a copy of the navbar data marking the item matching
// the given path as current.
func (d NavbarTemplateData) WithCurrentPath(path string) NavbarTemplateData {
	d.CurrentPath = path
	return d
}

func RenderNavbar(w io.Writer, data NavbarTemplateData) error {
	if data.NavbarItems == nil {
		return errors.Wrap(schema.ErrRenderInput, "navigation items must not be nil")
	}

	return errors.WithStack(renderComponent(w, "navbar", data))
}
