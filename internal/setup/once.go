package setup

import (
	"context"
	"sync"

	"github.com/bornholm/vitrine/internal/config"
)

type result[T any] struct {
	value T
	err   error
}

// createFromConfigOnce memoizes a factory so that every component built from
// the same configuration shares a single instance.
func createFromConfigOnce[T any](create func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mutex   sync.Mutex
		results = map[*config.Config]result[T]{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if r, exists := results[conf]; exists {
			return r.value, r.err
		}

		value, err := create(ctx, conf)
		results[conf] = result[T]{value, err}

		return value, err
	}
}
