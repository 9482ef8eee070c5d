package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	Session   Session            `yaml:"session"`
	RateLimit RateLimit          `yaml:"rateLimit"`
}

type Session struct {
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${VITRINE_HTTP_ADDRESS:-:8080}",
		Session: Session{
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				MaxAge:   NewInterpolatedDuration(24 * time.Hour),
				HTTPOnly: true,
				Secure:   false,
			},
		},
		RateLimit: RateLimit{
			Rate:  5,
			Burst: 10,
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".session":               []*yaml.Comment{yaml.HeadComment(" Visitor session, holding the call-to-action button state")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, newest first", " The first key signs new cookies, the following ones still validate older cookies", " A random key is generated on startup if empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Session cookie lifetime")},
		".rateLimit":             []*yaml.Comment{yaml.HeadComment(" Button activations allowed per visitor (per second, burst)")},
	}
}
