// Package hook provides client-side interaction hooks for melba
// widgets.
//
// Hooks enable smooth client-side gesture handling (like swipe
// tracking at pointer speed) while keeping state on the server. A hook
// is attached to an element as an attribute; the thin client
// instantiates it and reports gesture telemetry back as hook events.
//
// Usage:
//
//	Div(
//	    hook.Swipe(hook.SwipeConfig{Axis: "x"}),
//	    hook.On(func(e hook.Event) { ... }),
//	)
package hook

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/melba-ui/melba/pkg/vdom"
)

// Attach creates a hook attribute for an element. The config is
// serialized to JSON and sent to the client in the form
// "HookName:{...}".
func Attach(name string, config any) vdom.Attr {
	b, _ := json.Marshal(config)
	return vdom.Attr{
		Key:   "m-hook",
		Value: fmt.Sprintf("%s:%s", name, string(b)),
	}
}

// On registers a handler for events emitted by this element's hooks.
// Multiple On attributes on one element are merged; each handler sees
// every event and filters by Event.Name.
func On(handler func(Event)) vdom.Attr {
	return vdom.Attr{
		Key:   "onhook",
		Value: handler,
	}
}

// Event is an event reported by a client hook.
type Event struct {
	Name string
	Data map[string]any
}

// String returns the named field as a string.
func (e Event) String(key string) string {
	if v, ok := e.Data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the named field as an int.
func (e Event) Int(key string) int {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Float returns the named field as a float64. JSON numbers arrive as
// float64, so this is the accessor gesture telemetry uses.
func (e Event) Float(key string) float64 {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		case string:
			f, _ := strconv.ParseFloat(val, 64)
			return f
		}
	}
	return 0.0
}

// Bool returns the named field as a bool.
func (e Event) Bool(key string) bool {
	if v, ok := e.Data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}

// Raw returns the named field without conversion.
func (e Event) Raw(key string) any {
	return e.Data[key]
}
