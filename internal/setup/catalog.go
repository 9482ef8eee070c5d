package setup

import (
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/vitrine/internal/catalog"
	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/pkg/errors"
)

// NewCatalogFromConfig loads the catalog once from the configured source.
// Any invalid record aborts the startup.
var NewCatalogFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*catalog.Catalog, error) {
	sourceType := source.Type(conf.Catalog.Type)

	var options map[string]any
	if conf.Catalog.Options != nil {
		options = conf.Catalog.Options.Data
	}

	src, err := source.New(sourceType, options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create catalog source '%s'", sourceType)
	}

	if closer, ok := src.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.WarnContext(ctx, "could not close catalog source", log.Error(errors.WithStack(err)))
			}
		}()
	}

	projects, err := src.Projects(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load projects from source '%s'", sourceType)
	}

	c, err := catalog.New(projects)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "catalog loaded", slog.String("source", string(sourceType)), slog.Int("projects", c.Len()))

	return c, nil
})
