package ui

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/pkg/errors"
)

type toggleRecorder struct {
	calls []bool
}

func (r *toggleRecorder) OnToggle(active bool) {
	r.calls = append(r.calls, active)
}

func TestToggleButtonMount(t *testing.T) {
	button := NewToggleButton()

	if e, g := ToggleUninitialized, button.State(); e != g {
		t.Fatalf("button.State(): expected '%v', got '%v'", e, g)
	}

	if !button.Placeholder() {
		t.Errorf("button.Placeholder(): expected true before mount")
	}

	if button.Activate(PointerActivation()) {
		t.Errorf("button.Activate(): expected no transition before mount")
	}

	if !button.Mount() {
		t.Fatalf("button.Mount(): expected transition")
	}

	if e, g := ToggleInactive, button.State(); e != g {
		t.Errorf("button.State(): expected '%v', got '%v'", e, g)
	}

	if button.Mount() {
		t.Errorf("button.Mount(): expected second mount to be a no-op")
	}

	seeded := NewToggleButton(WithInitialActive(true))
	seeded.Mount()

	if e, g := ToggleActive, seeded.State(); e != g {
		t.Errorf("seeded.State(): expected '%v', got '%v'", e, g)
	}
}

func TestToggleButtonActivate(t *testing.T) {
	recorder := &toggleRecorder{}

	button := NewToggleButton(
		WithInitialActive(false),
		WithOnToggle(recorder.OnToggle),
		WithPromptLabel("Explore"),
		WithActiveLabel("Confirmed"),
	)
	button.Mount()

	if e, g := "Explore", button.Label(); e != g {
		t.Errorf("button.Label(): expected '%v', got '%v'", e, g)
	}

	if !button.Activate(PointerActivation()) {
		t.Fatalf("button.Activate(): expected transition")
	}

	if e, g := ToggleActive, button.State(); e != g {
		t.Errorf("button.State(): expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(recorder.calls); e != g {
		t.Fatalf("len(recorder.calls): expected '%v', got '%v'", e, g)
	}

	if !recorder.calls[0] {
		t.Errorf("recorder.calls[0]: expected true")
	}

	if e, g := "Confirmed", button.Label(); e != g {
		t.Errorf("button.Label(): expected '%v', got '%v'", e, g)
	}

	button.Activate(PointerActivation())

	if e, g := ToggleInactive, button.State(); e != g {
		t.Errorf("button.State(): expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(recorder.calls); e != g {
		t.Fatalf("len(recorder.calls): expected '%v', got '%v'", e, g)
	}

	if recorder.calls[1] {
		t.Errorf("recorder.calls[1]: expected false")
	}
}

func TestToggleButtonWithoutCallback(t *testing.T) {
	button := NewToggleButton()
	button.Mount()

	if !button.Activate(PointerActivation()) {
		t.Fatalf("button.Activate(): expected transition")
	}

	if !button.IsActive() {
		t.Errorf("button.IsActive(): expected true")
	}
}

func TestToggleButtonKeyboardParity(t *testing.T) {
	pointerRecorder := &toggleRecorder{}
	pointer := NewToggleButton(WithOnToggle(pointerRecorder.OnToggle))
	pointer.Mount()
	pointer.Activate(PointerActivation())

	for _, key := range []string{"Enter", " ", "Space"} {
		keyRecorder := &toggleRecorder{}
		keyboard := NewToggleButton(WithOnToggle(keyRecorder.OnToggle))
		keyboard.Mount()

		if !keyboard.Activate(KeyActivation(key)) {
			t.Fatalf("keyboard.Activate(%q): expected transition", key)
		}

		if e, g := pointer.Snapshot(), keyboard.Snapshot(); e != g {
			t.Errorf("keyboard.Snapshot() with %q: expected '%v', got '%v'", key, e, g)
		}

		if e, g := len(pointerRecorder.calls), len(keyRecorder.calls); e != g {
			t.Fatalf("len(keyRecorder.calls) with %q: expected '%v', got '%v'", key, e, g)
		}

		if e, g := pointerRecorder.calls[0], keyRecorder.calls[0]; e != g {
			t.Errorf("keyRecorder.calls[0] with %q: expected '%v', got '%v'", key, e, g)
		}
	}

	ignored := NewToggleButton()
	ignored.Mount()

	if ignored.Activate(KeyActivation("a")) {
		t.Errorf("ignored.Activate(\"a\"): expected no transition")
	}
}

func TestToggleButtonExternalOverride(t *testing.T) {
	button := NewToggleButton(WithInitialActive(false))
	button.Mount()
	button.Activate(PointerActivation())

	if !button.IsActive() {
		t.Fatalf("button.IsActive(): expected true")
	}

	// Same external value as before: internal state wins
	if button.Reconcile(false) {
		t.Errorf("button.Reconcile(false): expected no change")
	}

	if !button.IsActive() {
		t.Errorf("button.IsActive(): expected internal state to be kept")
	}

	button.Reconcile(true)

	if !button.IsActive() {
		t.Errorf("button.IsActive(): expected true after external change to true")
	}

	// Back to false: the external change overrides the internal value
	if !button.Reconcile(false) {
		t.Errorf("button.Reconcile(false): expected change")
	}

	if e, g := ToggleInactive, button.State(); e != g {
		t.Errorf("button.State(): expected '%v', got '%v'", e, g)
	}
}

func TestReconcileToggle(t *testing.T) {
	active := ToggleSnapshot{State: ToggleActive, External: true}

	if e, g := (ToggleSnapshot{State: ToggleInactive, External: false}), ReconcileToggle(active, false); e != g {
		t.Errorf("ReconcileToggle(active, false): expected '%v', got '%v'", e, g)
	}

	if e, g := active, ReconcileToggle(active, true); e != g {
		t.Errorf("ReconcileToggle(active, true): expected '%v', got '%v'", e, g)
	}

	unmounted := ToggleSnapshot{State: ToggleUninitialized, External: false}
	reconciled := ReconcileToggle(unmounted, true)

	if e, g := ToggleUninitialized, reconciled.State; e != g {
		t.Errorf("reconciled.State: expected '%v', got '%v'", e, g)
	}

	button := RestoreToggleButton(reconciled)
	button.Mount()

	if !button.IsActive() {
		t.Errorf("button.IsActive(): expected mount to use reconciled external value")
	}
}

func TestParseActivation(t *testing.T) {
	if e, g := PointerActivation(), ParseActivation(url.Values{}); e != g {
		t.Errorf("ParseActivation({}): expected '%v', got '%v'", e, g)
	}

	values := url.Values{"activation": {"key"}, "key": {"Enter"}}
	if e, g := KeyActivation("Enter"), ParseActivation(values); e != g {
		t.Errorf("ParseActivation(key): expected '%v', got '%v'", e, g)
	}

	if ParseActivation(url.Values{"activation": {"hover"}}).Valid() {
		t.Errorf("ParseActivation(hover): expected invalid activation")
	}
}

func TestRenderToggleButton(t *testing.T) {
	button := NewToggleButton(WithStyleOverride("hero__button"), WithPromptLabel("Explore"))

	var buff bytes.Buffer
	if err := RenderToggleButton(&buff, button.TemplateData("/toggle")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := parseFragment(t, buff.String())

	if e, g := 0, len(findAll(doc, hasClass("toggle--neutral"))); e != g {
		t.Errorf("len(neutral): expected '%v', got '%v'", e, g)
	}

	placeholders := findAll(doc, hasClass("toggle--placeholder"))
	if e, g := 1, len(placeholders); e != g {
		t.Fatalf("len(placeholders): expected '%v', got '%v'", e, g)
	}

	if text(placeholders[0]) != "" {
		t.Errorf("placeholder: expected no label, got '%s'", text(placeholders[0]))
	}

	if trigger, _ := attr(placeholders[0], "hx-get"); trigger != "/toggle" {
		t.Errorf("placeholder hx-get: expected '/toggle', got '%v'", trigger)
	}

	button.Mount()
	button.Activate(PointerActivation())

	buff.Reset()
	if err := RenderToggleButton(&buff, button.TemplateData("/toggle")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc = parseFragment(t, buff.String())

	buttons := findAll(doc, hasClass("toggle--active"))
	if e, g := 1, len(buttons); e != g {
		t.Fatalf("len(buttons): expected '%v', got '%v'", e, g)
	}

	if !hasClass("hero__button")(buttons[0]) {
		t.Errorf("buttons[0]: expected style override class")
	}

	if pressed, _ := attr(buttons[0], "aria-pressed"); pressed != "true" {
		t.Errorf("aria-pressed: expected 'true', got '%v'", pressed)
	}

	if e, g := "My projects", text(buttons[0]); e != g {
		t.Errorf("label: expected '%v', got '%v'", e, g)
	}
}
