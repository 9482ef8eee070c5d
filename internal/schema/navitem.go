package schema

import (
	"strconv"

	"github.com/pkg/errors"
)

const KindNavItem = "nav item"

// NavItem is a navigation link. Href is the key of the item within a list.
type NavItem struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	// AuthRequired is carried as-is; filtering is up to the caller.
	AuthRequired bool `yaml:"authRequired,omitempty" json:"authRequired,omitempty"`
}

// ValidateNavItems rejects a nil list, empty hrefs and duplicated hrefs.
// An empty, non-nil list is valid.
func ValidateNavItems(items []NavItem) error {
	if items == nil {
		return errors.Wrap(ErrRenderInput, "navigation items must not be nil")
	}

	seen := make(map[string]struct{}, len(items))

	for idx, item := range items {
		if item.Href == "" {
			return newConfigurationError(KindNavItem, strconv.Itoa(idx), "href must not be empty")
		}

		if _, exists := seen[item.Href]; exists {
			return newConfigurationError(KindNavItem, item.Href, "duplicated href")
		}

		seen[item.Href] = struct{}{}
	}

	return nil
}
