// Package vtest provides testing helpers for melba widgets.
//
// The package reduces boilerplate in render tests: render a tree to
// HTML and assert on its contents, or drive a store while recording
// what an observer would have seen at each notification.
//
// # Render Assertions
//
//	func TestCard(t *testing.T) {
//	    node := overlay.Overlay(store)
//	    vtest.ExpectContains(t, node, "melba-card")
//	    vtest.ExpectAttribute(t, node, "data-mode", "stack")
//	}
//
// # Handler Extraction
//
// RenderHandlers renders a tree and returns the handler registry a
// session would dispatch through, keyed "hid_event". Tests use it to
// invoke handlers the way a client event would:
//
//	_, handlers := vtest.RenderHandlers(node)
//	vtest.FireHook(t, handlers, hook.Event{Name: hook.SwipeTap})
//
// # Store Recording
//
// A Recorder subscribes to a toast store and snapshots it on every
// notification, exposing intermediate states (such as the exiting
// flag set just before removal) that direct accessors cannot observe
// after the fact.
package vtest
