package catalog

import (
	"fmt"
	"iter"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
)

// Catalog is the ordered, read-only set of projects displayed by the site.
// It is validated once at construction and never mutated afterwards, so it
// can be shared between concurrent requests without locking.
type Catalog struct {
	projects []schema.Project
	index    map[string]int
}

func (c *Catalog) Len() int {
	return len(c.projects)
}

// Projects returns a copy of the catalog entries, in catalog order.
func (c *Catalog) Projects() []schema.Project {
	projects := make([]schema.Project, 0, len(c.projects))
	for _, p := range c.projects {
		projects = append(projects, p.Clone())
	}

	return projects
}

func (c *Catalog) All() iter.Seq2[int, schema.Project] {
	return func(yield func(int, schema.Project) bool) {
		for idx, p := range c.projects {
			if !yield(idx, p.Clone()) {
				return
			}
		}
	}
}

func (c *Catalog) Get(id string) (schema.Project, bool) {
	idx, exists := c.index[id]
	if !exists {
		return schema.Project{}, false
	}

	return c.projects[idx].Clone(), true
}

// New validates the given projects and returns a catalog holding a private
// copy of them.
func New(projects []schema.Project) (*Catalog, error) {
	catalog := &Catalog{
		projects: make([]schema.Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}

	for idx, p := range projects {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "project #%d", idx)
		}

		if previous, exists := catalog.index[p.ID]; exists {
			return nil, errors.WithStack(&schema.ConfigurationError{
				Kind:   schema.KindProject,
				Key:    p.ID,
				Reason: fmt.Sprintf("duplicated id, already used by project #%d", previous),
			})
		}

		catalog.index[p.ID] = idx
		catalog.projects = append(catalog.projects, p.Clone())
	}

	return catalog, nil
}

// Must is like New but panics on invalid projects. Meant for static datasets
// and tests.
func Must(projects []schema.Project) *Catalog {
	catalog, err := New(projects)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return catalog
}
