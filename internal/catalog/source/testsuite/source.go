package testsuite

import (
	"context"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/bornholm/vitrine/internal/catalog"
	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
)

// TestSource checks that the source of the given type, created with opts,
// returns the expected projects in order and that they form a valid catalog.
func TestSource(t *testing.T, sourceType source.Type, opts any, expected []schema.Project) {
	t.Logf("Using catalog source '%s'", sourceType)

	src, err := source.New(sourceType, opts)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if closer, ok := src.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		}()
	}

	t.Run("Projects", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		projects, err := src.Projects(ctx)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		AssertProjects(t, expected, projects)
	})

	t.Run("Catalog", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		projects, err := src.Projects(ctx)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		c, err := catalog.New(projects)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := len(expected), c.Len(); e != g {
			t.Errorf("c.Len(): expected '%v', got '%v'", e, g)
		}
	})
}

func AssertProjects(t *testing.T, expected, actual []schema.Project) {
	t.Helper()

	if e, g := len(expected), len(actual); e != g {
		t.Fatalf("len(projects): expected '%v', got '%v'", e, g)
	}

	for idx := range expected {
		e, g := expected[idx], actual[idx]

		if e.ID != g.ID {
			t.Errorf("projects[%d].ID: expected '%v', got '%v'", idx, e.ID, g.ID)
		}

		if e.Name != g.Name {
			t.Errorf("projects[%d].Name: expected '%v', got '%v'", idx, e.Name, g.Name)
		}

		if e.Description != g.Description {
			t.Errorf("projects[%d].Description: expected '%v', got '%v'", idx, e.Description, g.Description)
		}

		if e.Img != g.Img {
			t.Errorf("projects[%d].Img: expected '%v', got '%v'", idx, e.Img, g.Img)
		}

		if !slices.Equal(e.Technologies, g.Technologies) {
			t.Errorf("projects[%d].Technologies: expected '%v', got '%v'", idx, e.Technologies, g.Technologies)
		}

		if e.CodeLink != g.CodeLink {
			t.Errorf("projects[%d].CodeLink: expected '%v', got '%v'", idx, e.CodeLink, g.CodeLink)
		}

		if e.LiveLink != g.LiveLink {
			t.Errorf("projects[%d].LiveLink: expected '%v', got '%v'", idx, e.LiveLink, g.LiveLink)
		}
	}
}
