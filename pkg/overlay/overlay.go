// Package overlay renders a toast store as a stacked notification
// overlay.
//
// The overlay is a pure view: it snapshots the store, runs the stack
// layout engine, and emits a vdom tree with per-card transforms and
// gesture hooks wired back into the store. Hosts re-render it whenever
// the store notifies.
//
//	store := toast.NewStore()
//	view := func() *vdom.VNode {
//	    return overlay.Overlay(store, overlay.WithPosition(overlay.TopRight))
//	}
package overlay

import (
	"fmt"

	"github.com/melba-ui/melba/pkg/hook"
	"github.com/melba-ui/melba/pkg/stack"
	"github.com/melba-ui/melba/pkg/toast"
	"github.com/melba-ui/melba/pkg/vdom"
)

// Position anchors the overlay to a screen corner.
type Position string

const (
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
	TopRight    Position = "top-right"
	TopLeft     Position = "top-left"
)

// defaultWidth is the card column width in pixels.
const defaultWidth = 360.0

// Option configures an Overlay.
type Option func(*config)

type config struct {
	position Position
	width    float64
	class    string
}

func defaultConfig() config {
	return config{
		position: BottomRight,
		width:    defaultWidth,
	}
}

// WithPosition anchors the overlay to the given corner.
func WithPosition(p Position) Option {
	return func(c *config) {
		c.position = p
	}
}

// WithWidth sets the card column width in pixels.
func WithWidth(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.width = px
		}
	}
}

// WithClass adds extra CSS classes to the overlay container.
func WithClass(class string) Option {
	return func(c *config) {
		c.class = class
	}
}

// Overlay renders the store's current state. In compact mode cards
// stack on top of each other with the per-index lift and shrink from
// pkg/stack; in expanded mode they form a plain vertical list. Every
// card carries a Swipe hook whose events drive the store: move events
// update the live drag offset and release either dismisses or resets,
// while a tap toggles the mode.
func Overlay(store *toast.Store, opts ...Option) *vdom.VNode {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	items, expanded := store.Snapshot()

	layout := make([]stack.Item, len(items))
	for i, item := range items {
		layout[i] = stack.Item{Exiting: item.Exiting}
	}
	placements := stack.Compute(layout, expanded)

	mode := "stack"
	if expanded {
		mode = "list"
	}

	cards := make([]*vdom.VNode, 0, len(items))
	for i, item := range items {
		p := placements[i]

		// Cards shrunk to nothing are invisible behind the stack;
		// exiting cards stay so their removal can animate.
		if !expanded && p.Scale <= 0 && !item.Exiting {
			continue
		}

		cards = append(cards, card(store, item, p, expanded))
	}

	return vdom.Div(
		vdom.Classes("melba-overlay", "melba-overlay--"+string(cfg.position), cfg.class),
		vdom.Data("mode", mode),
		vdom.Role("region"),
		vdom.AriaLabel("Notifications"),
		vdom.AriaLive("polite"),
		vdom.StyleAttr(containerStyle(cfg, expanded)),
		cards,
	)
}

// Component wraps Overlay for hosts that mount components instead of
// calling render functions directly.
func Component(store *toast.Store, opts ...Option) vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		return Overlay(store, opts...)
	})
}

// card renders one toast with its computed placement and gesture hook.
func card(store *toast.Store, item toast.Item, p stack.Placement, expanded bool) *vdom.VNode {
	return vdom.Div(
		vdom.Key(string(item.ID)),
		vdom.Classes(
			"melba-card",
			levelClass(item.Level),
			map[string]bool{"melba-card--exiting": item.Exiting},
		),
		vdom.Data("toast-id", string(item.ID)),
		vdom.StyleAttr(cardStyle(item, p, expanded)),
		hook.Swipe(hook.SwipeConfig{Axis: "x"}),
		hook.On(cardHandler(store, item.ID)),
		item.Content,
	)
}

// cardHandler interprets swipe telemetry for one record. The stack
// engine decides; the store records the outcome.
func cardHandler(store *toast.Store, id toast.ID) func(hook.Event) {
	return func(e hook.Event) {
		switch e.Name {
		case hook.SwipeMove:
			store.SetDragOffset(id, stack.DragChange(e.Float(hook.FieldTranslationX)))

		case hook.SwipeEnd:
			translation := e.Float(hook.FieldTranslationX)
			velocity := e.Float(hook.FieldVelocityX)
			if stack.EndDrag(translation, velocity) == stack.OutcomeDismiss {
				store.Dismiss(id)
			} else {
				store.SetDragOffset(id, 0)
			}

		case hook.SwipeTap:
			store.ToggleExpanded()
		}
	}
}

func levelClass(level toast.Level) string {
	if level == "" {
		return ""
	}
	return "melba-card--" + string(level)
}

func containerStyle(cfg config, expanded bool) string {
	style := fmt.Sprintf("width:%.0fpx", cfg.width)
	if expanded {
		style += fmt.Sprintf(";gap:%.0fpx", stack.ExpandedSpacing)
	}
	return style
}

// cardStyle builds the inline transform for a card. The live drag
// offset applies in both modes; the stack lift and shrink only in
// compact mode. Exiting cards get the raised z-index so they leave on
// top of their neighbors.
func cardStyle(item toast.Item, p stack.Placement, expanded bool) string {
	var style string
	if expanded {
		style = fmt.Sprintf("transform:translateX(%.1fpx)", item.DragOffset)
	} else {
		style = fmt.Sprintf("transform:translateX(%.1fpx) translateY(%.1fpx) scale(%.2f)",
			item.DragOffset, p.Offset, p.Scale)
	}
	if p.Z != 0 {
		style += fmt.Sprintf(";z-index:%d", p.Z)
	}
	return style
}
