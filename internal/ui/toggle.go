package ui

import (
	"io"
	"net/url"
	"strings"

	"github.com/bornholm/vitrine/pkg/optional"
	"github.com/pkg/errors"
)

type ToggleState int

const (
	ToggleUninitialized ToggleState = iota
	ToggleInactive
	ToggleActive
)

func (s ToggleState) String() string {
	switch s {
	case ToggleInactive:
		return "inactive"
	case ToggleActive:
		return "active"
	default:
		return "uninitialized"
	}
}

func toggleStateOf(active bool) ToggleState {
	if active {
		return ToggleActive
	}

	return ToggleInactive
}

type ToggleOptions struct {
	// ActiveLabel is shown while the button is active
	ActiveLabel string
	// PromptLabel is shown while the button is inactive
	PromptLabel   string
	InitialActive bool
	// OnToggle is called synchronously with the new state after each user
	// activation. It may be nil.
	OnToggle      func(active bool)
	TargetHref    string
	StyleOverride string
}

type ToggleOptionFunc func(opts *ToggleOptions)

func NewToggleOptions(funcs ...ToggleOptionFunc) *ToggleOptions {
	opts := &ToggleOptions{
		ActiveLabel:   "My projects",
		PromptLabel:   "Explore my projects",
		InitialActive: false,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithActiveLabel(label string) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.ActiveLabel = label
	}
}

func WithPromptLabel(label string) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.PromptLabel = label
	}
}

func WithInitialActive(active bool) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.InitialActive = active
	}
}

func WithOnToggle(fn func(active bool)) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.OnToggle = fn
	}
}

func WithTargetHref(href string) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.TargetHref = href
	}
}

func WithStyleOverride(class string) ToggleOptionFunc {
	return func(opts *ToggleOptions) {
		opts.StyleOverride = class
	}
}

// ToggleSnapshot is the persistable state of a ToggleButton.
type ToggleSnapshot struct {
	State ToggleState
	// External is the last observed value of the externally supplied
	// "active" input
	External bool
}

// ReconcileToggle applies an externally supplied "active" value to a
// snapshot. The internal state is overwritten only when the external value
// differs from the last observed one; between external changes the internal
// state is left to user activations. An unmounted snapshot only records the
// value, which then seeds the mount.
func ReconcileToggle(snapshot ToggleSnapshot, external bool) ToggleSnapshot {
	if snapshot.External == external {
		return snapshot
	}

	snapshot.External = external

	if snapshot.State != ToggleUninitialized {
		snapshot.State = toggleStateOf(external)
	}

	return snapshot
}

type ActivationKind string

const (
	ActivationPointer ActivationKind = "pointer"
	ActivationKey     ActivationKind = "key"
)

// Activation is a user event that may toggle the button: a pointer click or
// a key press. Only Enter and Space key presses activate the button.
type Activation struct {
	Kind ActivationKind
	Key  string
}

func PointerActivation() Activation {
	return Activation{Kind: ActivationPointer}
}

func KeyActivation(key string) Activation {
	return Activation{Kind: ActivationKey, Key: key}
}

func (a Activation) Valid() bool {
	switch a.Kind {
	case ActivationPointer:
		return true
	case ActivationKey:
		switch strings.ToLower(a.Key) {
		case "enter", " ", "space", "spacebar":
			return true
		}
	}

	return false
}

// ParseActivation reads an activation from submitted form values. A missing
// "activation" field is a pointer activation, which is what a plain form
// submission by a browser button amounts to.
func ParseActivation(values url.Values) Activation {
	switch ActivationKind(values.Get("activation")) {
	case ActivationKey:
		return KeyActivation(values.Get("key"))
	case ActivationPointer, "":
		return PointerActivation()
	default:
		return Activation{Kind: ActivationKind(values.Get("activation"))}
	}
}

// ToggleButton is the call-to-action button. It starts uninitialized and
// renders a placeholder until mounted.
type ToggleButton struct {
	opts     *ToggleOptions
	snapshot ToggleSnapshot
}

func (b *ToggleButton) State() ToggleState {
	return b.snapshot.State
}

func (b *ToggleButton) IsActive() bool {
	return b.snapshot.State == ToggleActive
}

func (b *ToggleButton) Snapshot() ToggleSnapshot {
	return b.snapshot
}

// Mount performs the one-time transition out of the uninitialized state,
// into the state matching the last observed external value. It returns false
// if the button was already mounted.
func (b *ToggleButton) Mount() bool {
	if b.snapshot.State != ToggleUninitialized {
		return false
	}

	b.snapshot.State = toggleStateOf(b.snapshot.External)

	return true
}

// Activate flips the state of a mounted button and notifies OnToggle. It
// returns false, without side effects, for an unmounted button or an event
// that is not an activation.
func (b *ToggleButton) Activate(activation Activation) bool {
	if b.snapshot.State == ToggleUninitialized || !activation.Valid() {
		return false
	}

	next := !b.IsActive()
	b.snapshot.State = toggleStateOf(next)

	if b.opts.OnToggle != nil {
		b.opts.OnToggle(next)
	}

	return true
}

// Reconcile applies ReconcileToggle to the button and reports whether the
// external value changed.
func (b *ToggleButton) Reconcile(external bool) bool {
	previous := b.snapshot
	b.snapshot = ReconcileToggle(b.snapshot, external)

	return previous != b.snapshot
}

func (b *ToggleButton) Placeholder() bool {
	return b.snapshot.State == ToggleUninitialized
}

func (b *ToggleButton) Label() string {
	if b.IsActive() {
		return b.opts.ActiveLabel
	}

	return b.opts.PromptLabel
}

func (b *ToggleButton) Class() string {
	classes := []string{"toggle"}

	switch b.snapshot.State {
	case ToggleActive:
		classes = append(classes, "toggle--active")
	case ToggleInactive:
		classes = append(classes, "toggle--neutral")
	default:
		classes = append(classes, "toggle--placeholder")
	}

	if b.opts.StyleOverride != "" {
		classes = append(classes, b.opts.StyleOverride)
	}

	return strings.Join(classes, " ")
}

// Target is the navigation destination bound to the button, if any.
func (b *ToggleButton) Target() optional.Value[string] {
	return optional.NonEmpty(b.opts.TargetHref)
}

type ToggleTemplateData struct {
	Placeholder bool
	Active      bool
	State       string
	Label       string
	Class       string
	// Endpoint receives activations and serves the mounted fragment
	Endpoint string
}

func (b *ToggleButton) TemplateData(endpoint string) ToggleTemplateData {
	return ToggleTemplateData{
		Placeholder: b.Placeholder(),
		Active:      b.IsActive(),
		State:       b.snapshot.State.String(),
		Label:       b.Label(),
		Class:       b.Class(),
		Endpoint:    endpoint,
	}
}

func NewToggleButton(funcs ...ToggleOptionFunc) *ToggleButton {
	opts := NewToggleOptions(funcs...)

	return &ToggleButton{
		opts: opts,
		snapshot: ToggleSnapshot{
			State:    ToggleUninitialized,
			External: opts.InitialActive,
		},
	}
}

// RestoreToggleButton recreates a button from a previously taken snapshot.
func RestoreToggleButton(snapshot ToggleSnapshot, funcs ...ToggleOptionFunc) *ToggleButton {
	return &ToggleButton{
		opts:     NewToggleOptions(funcs...),
		snapshot: snapshot,
	}
}

func RenderToggleButton(w io.Writer, data ToggleTemplateData) error {
	return errors.WithStack(renderComponent(w, "toggle-button", data))
}
