package portfolio

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/vitrine/internal/ui"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionToggleState    = "toggle.state"
	sessionToggleExternal = "toggle.external"

	externalActiveParam = "active"
)

// visitorToggle is the toggle button of the current visitor, bound to its
// session.
type visitorToggle struct {
	session  *sessions.Session
	button   *ui.ToggleButton
	restored ui.ToggleSnapshot
	// navigateTo is set by the activation callback when the button enters
	// the active state with a target
	navigateTo string
}

func (t *visitorToggle) changed() bool {
	return t.restored != t.button.Snapshot()
}

// external returns the externally supplied "active" value of the request:
// the query parameter when set, the configured initial value otherwise.
func (h *Handler) external(r *http.Request) bool {
	raw := r.URL.Query().Get(externalActiveParam)
	if raw == "" {
		return h.toggle.InitialActive
	}

	active, err := strconv.ParseBool(raw)
	if err != nil {
		slog.DebugContext(r.Context(), "ignoring invalid external toggle value", slog.String("value", raw))
		return h.toggle.InitialActive
	}

	return active
}

// endpoint forwards the external value to the toggle requests issued by the
// rendered fragment.
func (h *Handler) endpoint(r *http.Request) string {
	raw := r.URL.Query().Get(externalActiveParam)
	if raw == "" {
		return ToggleEndpoint
	}

	return ToggleEndpoint + "?" + url.Values{externalActiveParam: {raw}}.Encode()
}

func (h *Handler) loadToggle(r *http.Request) (*visitorToggle, error) {
	ctx := r.Context()

	sess, err := h.sessions.Get(r, h.sessionName)
	if err != nil {
		// A session signed with a rotated key is replaced by a new one
		slog.WarnContext(ctx, "could not decode session", log.Error(errors.WithStack(err)))
		if sess == nil {
			sess, err = h.sessions.New(r, h.sessionName)
			if sess == nil {
				return nil, errors.WithStack(err)
			}
		}
	}

	toggle := &visitorToggle{session: sess}

	funcs := append(
		append([]ui.ToggleOptionFunc{}, h.toggleFuncs...),
		ui.WithOnToggle(func(active bool) {
			slog.InfoContext(ctx, "toggle activated", slog.Bool("active", active))

			if !active {
				return
			}

			if target, ok := toggle.button.Target().Get(); ok {
				toggle.navigateTo = target
			}
		}),
	)

	external := h.external(r)

	state, hasState := sess.Values[sessionToggleState].(int)
	previous, hasExternal := sess.Values[sessionToggleExternal].(bool)

	if !hasState || !hasExternal {
		toggle.button = ui.NewToggleButton(append(funcs, ui.WithInitialActive(external))...)
		toggle.restored = toggle.button.Snapshot()
		return toggle, nil
	}

	toggle.restored = ui.ToggleSnapshot{
		State:    ui.ToggleState(state),
		External: previous,
	}

	toggle.button = ui.RestoreToggleButton(toggle.restored, funcs...)
	toggle.button.Reconcile(external)

	return toggle, nil
}

func (h *Handler) saveToggle(w http.ResponseWriter, r *http.Request, toggle *visitorToggle) error {
	snapshot := toggle.button.Snapshot()

	toggle.session.Values[sessionToggleState] = int(snapshot.State)
	toggle.session.Values[sessionToggleExternal] = snapshot.External

	if err := toggle.session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// prepareToggle reconciles the visitor button for a page render. An unmounted
// button is rendered as a placeholder which mounts itself once loaded.
func (h *Handler) prepareToggle(w http.ResponseWriter, r *http.Request) (ui.ToggleTemplateData, error) {
	toggle, err := h.loadToggle(r)
	if err != nil {
		return ui.ToggleTemplateData{}, errors.WithStack(err)
	}

	if toggle.changed() {
		if err := h.saveToggle(w, r, toggle); err != nil {
			return ui.ToggleTemplateData{}, errors.WithStack(err)
		}
	}

	return toggle.button.TemplateData(h.endpoint(r)), nil
}

func (h *Handler) serveToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	toggle, err := h.loadToggle(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not load toggle", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if toggle.button.Mount() {
		slog.DebugContext(ctx, "toggle mounted", slog.String("state", toggle.button.State().String()))
	}

	if toggle.changed() {
		if err := h.saveToggle(w, r, toggle); err != nil {
			slog.ErrorContext(ctx, "could not save toggle", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if !isHTMX(r) {
		http.Redirect(w, r, h.back(r), http.StatusSeeOther)
		return
	}

	h.renderToggle(w, r, toggle)
}

func (h *Handler) handleToggleActivation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	toggle, err := h.loadToggle(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not load toggle", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Clients without HTMX never issued the mount request
	toggle.button.Mount()

	activation := ui.ParseActivation(r.PostForm)

	if !toggle.button.Activate(activation) {
		slog.DebugContext(ctx, "ignoring toggle event", slog.String("kind", string(activation.Kind)), slog.String("key", activation.Key))
	}

	if toggle.changed() {
		if err := h.saveToggle(w, r, toggle); err != nil {
			slog.ErrorContext(ctx, "could not save toggle", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	switch {
	case toggle.navigateTo != "" && isHTMX(r):
		w.Header().Set("HX-Redirect", toggle.navigateTo)
		w.WriteHeader(http.StatusOK)
	case toggle.navigateTo != "":
		http.Redirect(w, r, toggle.navigateTo, http.StatusSeeOther)
	case isHTMX(r):
		h.renderToggle(w, r, toggle)
	default:
		http.Redirect(w, r, h.back(r), http.StatusSeeOther)
	}
}

func (h *Handler) renderToggle(w http.ResponseWriter, r *http.Request, toggle *visitorToggle) {
	var buff bytes.Buffer

	if err := ui.RenderToggleButton(&buff, toggle.button.TemplateData(h.endpoint(r))); err != nil {
		slog.ErrorContext(r.Context(), "could not render toggle", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "could not write toggle", log.Error(errors.WithStack(err)))
	}
}

// back returns the local page the request originates from.
func (h *Handler) back(r *http.Request) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Host != r.Host || referer.Path == "" || referer.Path == ToggleEndpoint {
		return "/"
	}

	return referer.RequestURI()
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
