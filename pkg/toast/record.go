package toast

import (
	"github.com/melba-ui/melba/pkg/vdom"
)

// ID uniquely identifies a record within a store. IDs are assigned at
// creation and never accepted from outside input.
type ID string

// Level classifies a standard notification payload. It is presentation
// metadata only; the store treats all records the same.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Icon returns the default glyph rendered for this level.
func (l Level) Icon() string {
	switch l {
	case LevelSuccess:
		return "✓"
	case LevelError:
		return "✗"
	case LevelWarning:
		return "⚠"
	case LevelInfo:
		return "ℹ"
	default:
		return ""
	}
}

// Record is one notification in the collection. Everything on it is
// immutable after Push; transient gesture state lives in Interaction,
// keyed by the record's ID, so copying the collection never aliases
// mutable state.
type Record struct {
	// ID is the record's unique identifier.
	ID ID

	// Level tags records created through the standard helpers.
	// Records pushed with raw content carry an empty level.
	Level Level

	// Content is the renderable payload. The record owns it
	// exclusively; it is supplied at construction and never mutated.
	Content *vdom.VNode
}

// Interaction is the per-record transient gesture state.
type Interaction struct {
	// DragOffset is the live horizontal offset in pixels while a
	// swipe is in progress. Zero at rest.
	DragOffset float64

	// Exiting is set the instant a dismissal is decided and is
	// consumed by the renderer to raise the card's z-order while it
	// animates out.
	Exiting bool
}

// Item bundles a record with its interaction state for single-pass
// layout and rendering.
type Item struct {
	Record
	Interaction
}

// Note builds the standard notification payload from a text string and
// an icon glyph. An empty icon renders text only.
func Note(text, icon string) *vdom.VNode {
	return vdom.Div(
		vdom.Class("melba-note"),
		vdom.If(icon != "", vdom.Span(
			vdom.Class("melba-note-icon"),
			vdom.AriaHidden(true),
			vdom.Text(icon),
		)),
		vdom.Span(vdom.Class("melba-note-text"), vdom.Text(text)),
	)
}

// Titled builds a standard payload with a bold title line above the
// text.
func Titled(title, text, icon string) *vdom.VNode {
	return vdom.Div(
		vdom.Class("melba-note"),
		vdom.If(icon != "", vdom.Span(
			vdom.Class("melba-note-icon"),
			vdom.AriaHidden(true),
			vdom.Text(icon),
		)),
		vdom.Div(
			vdom.Class("melba-note-body"),
			vdom.Strong(vdom.Class("melba-note-title"), vdom.Text(title)),
			vdom.Span(vdom.Class("melba-note-text"), vdom.Text(text)),
		),
	)
}
