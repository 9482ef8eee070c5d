package schema

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is the cause of every record violating its schema.
	ErrConfiguration = errors.New("configuration error")
	// ErrRenderInput is returned when a required render input is missing
	// (nil rather than empty).
	ErrRenderInput = errors.New("invalid render input")
)

type ConfigurationError struct {
	// Kind of the faulty record ("project", "nav item")
	Kind string
	// Key identifies the faulty record (id, href or position)
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Kind, e.Key, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func newConfigurationError(kind, key, reason string, args ...any) error {
	return errors.WithStack(&ConfigurationError{
		Kind:   kind,
		Key:    key,
		Reason: fmt.Sprintf(reason, args...),
	})
}
