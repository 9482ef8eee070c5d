package file

import (
	"context"
	"os"

	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
)

const Type source.Type = "file"

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type Source struct {
	path string
}

// Projects implements source.Source.
func (s *Source) Projects(ctx context.Context) ([]schema.Project, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	projects, err := source.DecodeDocument(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode catalog file '%s'", s.path)
	}

	return projects, nil
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

var _ source.Source = &Source{}

func CreateSourceFromOptions(options any) (source.Source, error) {
	opts := Options{}

	if err := source.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Path == "" {
		return nil, errors.Errorf("'%s' catalog source requires a path", Type)
	}

	return NewSource(opts.Path), nil
}
