package schema

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestProjectValidate(t *testing.T) {
	type testCase struct {
		Project     Project
		ExpectError bool
	}

	testCases := []testCase{
		{
			Project: Project{ID: "a", Name: "X", Technologies: []string{"Go"}, CodeLink: "http://c"},
		},
		{
			Project: Project{ID: "b", Name: "Y"},
		},
		{
			Project:     Project{Name: "Z"},
			ExpectError: true,
		},
		{
			Project:     Project{ID: "c"},
			ExpectError: true,
		},
		{
			Project:     Project{ID: "d", Name: "W", LiveLink: "http://[::1"},
			ExpectError: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			err := tc.Project.Validate()

			if !tc.ExpectError {
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
				return
			}

			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("err: expected '%v', got '%v'", ErrConfiguration, err)
			}

			var configErr *ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("err: expected *ConfigurationError, got '%T'", err)
			}

			if e, g := KindProject, configErr.Kind; e != g {
				t.Errorf("configErr.Kind: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestProjectOptionalFields(t *testing.T) {
	project := Project{ID: "a", Name: "X", CodeLink: "http://c", LiveLink: ""}

	if !project.Code().IsPresent() {
		t.Errorf("project.Code(): expected present value")
	}

	if project.Live().IsPresent() {
		t.Errorf("project.Live(): expected absent value")
	}

	if project.Image().IsPresent() {
		t.Errorf("project.Image(): expected absent value")
	}
}

func TestProjectClone(t *testing.T) {
	original := Project{ID: "a", Name: "X", Technologies: []string{"Go", "SQL"}}

	clone := original.Clone()
	clone.Technologies[0] = "Rust"

	if e, g := "Go", original.Technologies[0]; e != g {
		t.Errorf("original.Technologies[0]: expected '%v', got '%v'", e, g)
	}

	if empty := (Project{ID: "b"}).Clone(); empty.Technologies == nil {
		t.Errorf("empty.Technologies: expected non nil slice")
	}
}

func TestProjectValidateLinkOrder(t *testing.T) {
	project := Project{
		ID:       "broken",
		Name:     "Broken",
		CodeLink: "http://[::1",
		LiveLink: "http://[::2",
	}

	for i := range 20 {
		err := project.Validate()

		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Fatalf("run #%d: expected a configuration error, got '%v'", i, err)
		}

		if !strings.HasPrefix(confErr.Reason, "codeLink ") {
			t.Fatalf("run #%d: expected codeLink to be reported first, got '%s'", i, confErr.Reason)
		}
	}
}

func TestValidateNavItems(t *testing.T) {
	if err := ValidateNavItems(nil); !errors.Is(err, ErrRenderInput) {
		t.Errorf("ValidateNavItems(nil): expected '%v', got '%v'", ErrRenderInput, err)
	}

	if err := ValidateNavItems([]NavItem{}); err != nil {
		t.Errorf("ValidateNavItems([]): expected no error, got '%+v'", err)
	}

	items := []NavItem{
		{Label: "Home", Href: "/"},
		{Label: "Projects", Href: "/projects"},
	}

	if err := ValidateNavItems(items); err != nil {
		t.Errorf("ValidateNavItems(items): expected no error, got '%+v'", err)
	}

	duplicated := append(items, NavItem{Label: "Again", Href: "/projects"})
	if err := ValidateNavItems(duplicated); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ValidateNavItems(duplicated): expected '%v', got '%v'", ErrConfiguration, err)
	}

	missingHref := []NavItem{{Label: "Nowhere"}}
	if err := ValidateNavItems(missingHref); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ValidateNavItems(missingHref): expected '%v', got '%v'", ErrConfiguration, err)
	}
}
