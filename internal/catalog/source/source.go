package source

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
)

var ErrNotRegistered = errors.New("not registered")

type Type string

// Source supplies the ordered project records of the catalog. Records are
// returned as-is: validation is the catalog's job.
type Source interface {
	Projects(ctx context.Context) ([]schema.Project, error)
}

type SourceFunc func(ctx context.Context) ([]schema.Project, error)

// Projects implements Source.
func (fn SourceFunc) Projects(ctx context.Context) ([]schema.Project, error) {
	return fn(ctx)
}

var _ Source = SourceFunc(nil)

type CreateSourceFunc func(options any) (Source, error)

var (
	registryMutex sync.RWMutex
	registry      = map[Type]CreateSourceFunc{}
)

func Register(sourceType Type, create CreateSourceFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[sourceType] = create
}

func New(sourceType Type, options any) (Source, error) {
	registryMutex.RLock()
	create, exists := registry[sourceType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "catalog source type '%s'", sourceType)
	}

	source, err := create(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return source, nil
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}
