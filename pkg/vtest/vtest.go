package vtest

import (
	"strings"
	"testing"

	"github.com/melba-ui/melba/pkg/hook"
	"github.com/melba-ui/melba/pkg/render"
	"github.com/melba-ui/melba/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// RenderHandlers renders a VNode and returns both the HTML string and
// the handler registry collected during rendering, keyed "hid_event".
// Tests use the registry to invoke handlers the way a session would
// when a client event arrives.
//
// Example:
//
//	html, handlers := vtest.RenderHandlers(overlay.Overlay(store))
//	hid := vtest.HIDForAttr(html, "data-toast-id", string(id))
//	vtest.FireHook(t, handlers, hid, hook.Event{Name: hook.SwipeTap})
func RenderHandlers(node *vdom.VNode) (string, map[string]any) {
	r := render.NewRenderer(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return "", nil
	}
	return html, r.GetHandlers()
}

// HIDForAttr returns the hydration ID of the first rendered element
// carrying the given attribute value, or "" if no element matches.
// Handler registry keys are built from this ID.
func HIDForAttr(html, attr, value string) string {
	needle := attr + `="` + value + `"`
	i := strings.Index(html, needle)
	if i < 0 {
		return ""
	}
	end := strings.Index(html[i:], ">")
	if end < 0 {
		return ""
	}
	// data-hid renders after all props, so it is still inside this tag.
	tag := html[i : i+end]
	const marker = `data-hid="`
	j := strings.Index(tag, marker)
	if j < 0 {
		return ""
	}
	rest := tag[j+len(marker):]
	k := strings.Index(rest, `"`)
	if k < 0 {
		return ""
	}
	return rest[:k]
}

// FireHook dispatches a hook event to the handlers registered for the
// given hydration ID, mirroring session dispatch. Merged handlers (an
// element with several hook.On attributes) all receive the event.
//
// Example:
//
//	vtest.FireHook(t, handlers, hid, hook.Event{
//	    Name: hook.SwipeEnd,
//	    Data: map[string]any{hook.FieldTranslationX: -250.0},
//	})
func FireHook(t *testing.T, handlers map[string]any, hid string, event hook.Event) {
	t.Helper()
	h, ok := handlers[hid+"_onhook"]
	if !ok {
		t.Fatalf("no hook handler registered for hid %q", hid)
	}
	dispatchHook(t, h, event)
}

// dispatchHook invokes a hook handler value from the registry.
func dispatchHook(t *testing.T, h any, event hook.Event) {
	t.Helper()
	switch fn := h.(type) {
	case func(hook.Event):
		fn(event)
	case []any:
		for _, sub := range fn {
			dispatchHook(t, sub, event)
		}
	default:
		t.Fatalf("unsupported hook handler type %T", h)
	}
}

// FireClick dispatches a click to the handler registered for the given
// hydration ID.
func FireClick(t *testing.T, handlers map[string]any, hid string) {
	t.Helper()
	h, ok := handlers[hid+"_onclick"]
	if !ok {
		t.Fatalf("no click handler registered for hid %q", hid)
	}
	switch fn := h.(type) {
	case func():
		fn()
	case func(any):
		fn(nil)
	default:
		t.Fatalf("unsupported click handler type %T", h)
	}
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, comp.Render(), "Saved")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	vtest.ExpectNotContains(t, comp.Render(), "Error")
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, comp.Render(), "button")
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, comp.Render(), "class", "melba-card")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
