// Package melba provides the public API for the melba toast overlay.
//
// This is the recommended import for hosts embedding the overlay:
//
//	import "github.com/melba-ui/melba"
//
// Usage:
//
//	store := melba.NewStore()
//	store.Success("Changes saved")
//	view := func() *melba.VNode {
//	    return melba.Overlay(store, melba.WithPosition(melba.TopRight))
//	}
//
// The store holds the notification state; Overlay renders it. Hosts
// re-render whenever the store notifies (see Store.Watch) and feed
// gesture telemetry back through the hooks the overlay wires onto
// each card.
package melba

import (
	"github.com/melba-ui/melba/pkg/overlay"
	"github.com/melba-ui/melba/pkg/toast"
	"github.com/melba-ui/melba/pkg/vdom"
)

// =============================================================================
// Store (pkg/toast re-exports)
// =============================================================================

// Store is the observable state behind a toast overlay. See
// pkg/toast for the full method set.
type Store = toast.Store

// ID identifies one notification in a store.
type ID = toast.ID

// Level is the severity of a notification.
type Level = toast.Level

// Record is one notification in the collection.
type Record = toast.Record

// NewStore creates an empty store in compact mode.
var NewStore = toast.NewStore

// Notification levels.
const (
	LevelSuccess = toast.LevelSuccess
	LevelError   = toast.LevelError
	LevelWarning = toast.LevelWarning
	LevelInfo    = toast.LevelInfo
)

// Content builders for standard card bodies.
//
// Example:
//
//	store.Push(melba.Titled("Deploy", "Build #42 is live", "🚀"))
var (
	Note   = toast.Note
	Titled = toast.Titled
)

// =============================================================================
// Overlay (pkg/overlay re-exports)
// =============================================================================

// Overlay renders a store as a stacked notification overlay.
//
// Example:
//
//	melba.Overlay(store, melba.WithPosition(melba.TopLeft), melba.WithWidth(420))
var Overlay = overlay.Overlay

// OverlayComponent wraps Overlay for hosts that mount components.
var OverlayComponent = overlay.Component

// OverlayOption configures the overlay.
type OverlayOption = overlay.Option

// Position anchors the overlay to a screen corner.
type Position = overlay.Position

// Overlay corners.
const (
	BottomRight = overlay.BottomRight
	BottomLeft  = overlay.BottomLeft
	TopRight    = overlay.TopRight
	TopLeft     = overlay.TopLeft
)

// Overlay options.
var (
	WithPosition = overlay.WithPosition
	WithWidth    = overlay.WithWidth
	WithClass    = overlay.WithClass
)

// =============================================================================
// View primitives (pkg/vdom re-exports)
// =============================================================================

// VNode is a node in the rendered tree. Custom card content is built
// from vdom elements; see pkg/vdom.
type VNode = vdom.VNode

// Component is anything with a Render method returning a VNode.
type Component = vdom.Component
