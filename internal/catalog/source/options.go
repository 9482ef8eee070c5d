package source

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// DecodeOptions decodes raw source options into target. Values are weakly
// typed since interpolated configuration values are always strings.
func DecodeOptions(sourceType Type, options any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		Result:           target,
	})
	if err != nil {
		return errors.Wrapf(err, "could not create '%s' catalog source options decoder", sourceType)
	}

	if options == nil {
		return nil
	}

	if err := decoder.Decode(options); err != nil {
		return errors.Wrapf(err, "could not parse '%s' catalog source options", sourceType)
	}

	return nil
}
