package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var getEnv = os.Getenv

// expand reads a scalar node as a string and substitutes ${VAR:-default}
// expressions with the process environment.
func expand(unmarshal func(any) error) (string, error) {
	var raw string

	if err := unmarshal(&raw); err != nil {
		return "", errors.WithStack(err)
	}

	value, err := envsubst.Eval(raw, getEnv)
	if err != nil {
		return "", errors.Wrapf(err, "could not interpolate '%s'", raw)
	}

	return value, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := expand(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := expand(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(int(parsed))

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := expand(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(parsed)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

type InterpolatedBool bool

func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := expand(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return errors.WithStack(err)
	}

	*ib = InterpolatedBool(parsed)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

type InterpolatedStringSlice []string

func (iss *InterpolatedStringSlice) UnmarshalYAML(unmarshal func(any) error) error {
	var values []string

	if err := unmarshal(&values); err != nil {
		return errors.WithStack(err)
	}

	for index, raw := range values {
		value, err := envsubst.Eval(raw, getEnv)
		if err != nil {
			return errors.Wrapf(err, "could not interpolate '%s'", raw)
		}

		values[index] = value
	}

	*iss = values

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedStringSlice)

// InterpolatedMap holds free-form options. Every string leaf is
// interpolated, whatever its depth.
type InterpolatedMap struct {
	Data map[string]any
}

func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	interpolated, err := interpolateTree(data)
	if err != nil {
		return errors.WithStack(err)
	}

	data, _ = interpolated.(map[string]any)
	if data == nil {
		data = map[string]any{}
	}

	im.Data = data

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

func interpolateTree(node any) (any, error) {
	switch typ := node.(type) {
	case map[string]any:
		for key, value := range typ {
			value, err := interpolateTree(value)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[key] = value
		}

	case []any:
		for idx := range typ {
			value, err := interpolateTree(typ[idx])
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[idx] = value
		}

	case string:
		value, err := envsubst.Eval(typ, getEnv)
		if err != nil {
			return nil, errors.Wrapf(err, "could not interpolate '%s'", typ)
		}

		return value, nil
	}

	return node, nil
}

type InterpolatedDuration time.Duration

// UnmarshalYAML accepts Go duration strings ("24h") or a raw number of
// nanoseconds.
func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := expand(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		nanoseconds, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errors.WithStack(err)
		}

		duration = time.Duration(nanoseconds)
	}

	*id = InterpolatedDuration(duration)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(*id).String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}
