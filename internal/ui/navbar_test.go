package ui

import (
	"bytes"
	"context"
	"testing"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
)

func TestNewNavbarTemplateDataRejectsNil(t *testing.T) {
	_, err := NewNavbarTemplateData(context.Background(), nil, "")
	if !errors.Is(err, schema.ErrRenderInput) {
		t.Fatalf("err: expected '%v', got '%v'", schema.ErrRenderInput, err)
	}
}

func TestRenderNavbarRejectsZeroValue(t *testing.T) {
	var buff bytes.Buffer

	err := RenderNavbar(&buff, NavbarTemplateData{})
	if !errors.Is(err, schema.ErrRenderInput) {
		t.Fatalf("err: expected '%v', got '%v'", schema.ErrRenderInput, err)
	}

	if buff.Len() != 0 {
		t.Errorf("buff: expected nothing to be rendered, got '%s'", buff.String())
	}
}

func TestRenderNavbarEmpty(t *testing.T) {
	data, err := NewNavbarTemplateData(context.Background(), []schema.NavItem{}, "")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var buff bytes.Buffer
	if err := RenderNavbar(&buff, data); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := parseFragment(t, buff.String())

	if e, g := 0, len(findAll(doc, hasClass("navbar__link"))); e != g {
		t.Errorf("len(links): expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(findAll(doc, hasClass("navbar__welcome"))); e != g {
		t.Errorf("len(welcome): expected '%v', got '%v'", e, g)
	}
}

func TestRenderNavbar(t *testing.T) {
	items := []schema.NavItem{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Dashboard", Href: "/dashboard", AuthRequired: true},
	}

	data, err := NewNavbarTemplateData(context.Background(), items, "Welcome to my portfolio")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	items[0].Label = "Mutated"

	var buff bytes.Buffer
	if err := RenderNavbar(&buff, data.WithCurrentPath("/about")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := parseFragment(t, buff.String())

	entries := findAll(doc, hasClass("navbar__item"))
	if e, g := 3, len(entries); e != g {
		t.Fatalf("len(entries): expected '%v', got '%v'", e, g)
	}

	expectedKeys := []string{"/", "/about", "/dashboard"}
	for idx, entry := range entries {
		if key, _ := attr(entry, "data-key"); key != expectedKeys[idx] {
			t.Errorf("entries[%d] data-key: expected '%v', got '%v'", idx, expectedKeys[idx], key)
		}
	}

	if e, g := "Home", text(entries[0]); e != g {
		t.Errorf("entries[0]: expected '%v', got '%v'", e, g)
	}

	current := findAll(doc, hasAttr("aria-current", "page"))
	if e, g := 1, len(current); e != g {
		t.Fatalf("len(current): expected '%v', got '%v'", e, g)
	}

	if href, _ := attr(current[0], "href"); href != "/about" {
		t.Errorf("current href: expected '/about', got '%v'", href)
	}

	welcome := findAll(doc, hasClass("navbar__welcome"))
	if e, g := 1, len(welcome); e != g {
		t.Fatalf("len(welcome): expected '%v', got '%v'", e, g)
	}

	if e, g := "Welcome to my portfolio", text(welcome[0]); e != g {
		t.Errorf("welcome: expected '%v', got '%v'", e, g)
	}
}
