// Package optional provides a small tagged variant for values that may be
// absent, so render code can branch on presence instead of on zero values.
package optional

type Value[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

func Absent[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns an absent value for the empty string.
func NonEmpty(s string) Value[string] {
	if s == "" {
		return Absent[string]()
	}

	return Present(s)
}

func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

func (v Value[T]) IsPresent() bool {
	return v.present
}

// Value returns the wrapped value, or the zero value of T when absent.
// Intended for templates, which cannot consume two return values.
func (v Value[T]) Value() T {
	return v.value
}

func (v Value[T]) OrElse(fallback T) T {
	if !v.present {
		return fallback
	}

	return v.value
}
