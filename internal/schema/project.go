package schema

import (
	"net/url"
	"slices"

	"github.com/bornholm/vitrine/pkg/optional"
)

const KindProject = "project"

// Project is one entry of the portfolio catalog.
type Project struct {
	ID           string   `yaml:"id" json:"id" mapstructure:"id"`
	Name         string   `yaml:"name" json:"name" mapstructure:"name"`
	Description  string   `yaml:"description" json:"description" mapstructure:"description"`
	Img          string   `yaml:"img" json:"img" mapstructure:"img"`
	Technologies []string `yaml:"technologies" json:"technologies" mapstructure:"technologies"`
	CodeLink     string   `yaml:"codeLink,omitempty" json:"codeLink,omitempty" mapstructure:"codeLink"`
	LiveLink     string   `yaml:"liveLink,omitempty" json:"liveLink,omitempty" mapstructure:"liveLink"`
}

func (p Project) Image() optional.Value[string] {
	return optional.NonEmpty(p.Img)
}

func (p Project) Code() optional.Value[string] {
	return optional.NonEmpty(p.CodeLink)
}

func (p Project) Live() optional.Value[string] {
	return optional.NonEmpty(p.LiveLink)
}

// Clone returns a copy of the project sharing no memory with p.
func (p Project) Clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	return p
}

// Validate checks the invariants of a single record. Uniqueness of the id
// across a catalog is checked by the catalog itself.
func (p Project) Validate() error {
	if p.ID == "" {
		return newConfigurationError(KindProject, p.ID, "id must not be empty")
	}

	if p.Name == "" {
		return newConfigurationError(KindProject, p.ID, "name must not be empty")
	}

	links := []struct {
		Field string
		URL   optional.Value[string]
	}{
		{"codeLink", p.Code()},
		{"liveLink", p.Live()},
	}

	for _, l := range links {
		rawURL, ok := l.URL.Get()
		if !ok {
			continue
		}

		if _, err := url.Parse(rawURL); err != nil {
			return newConfigurationError(KindProject, p.ID, "%s '%s' is not a valid url", l.Field, rawURL)
		}
	}

	return nil
}
