// Package vdom provides the virtual DOM that melba widgets render to.
//
// The VDOM is an in-memory representation of the UI that can be diffed
// to produce minimal DOM updates. In melba's server-driven model the
// tree lives on the server and diffs produce patches sent to the
// client over the session transport.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and
// event handlers. Attr and EventHandler are the units Props is built
// from.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("melba-toast"), Key(id),
//	    Span(Text("Saved")),
//	    OnClick(handler),
//	)
//
// # Diffing
//
// Diff compares two VNode trees and returns a slice of Patch
// operations. Keyed reconciliation is used when children carry Key
// attributes, which keeps removals from the middle of a toast list
// cheap.
//
// # Hydration
//
// Expand flattens component nodes, then AssignHIDs gives every element
// an ID linking server VNodes to client DOM.
package vdom
