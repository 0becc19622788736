// Package render provides server-side rendering for melba widgets.
//
// The render package converts VNode trees into HTML strings or
// streams: HTML5 element rendering, text and attribute escaping, void
// and boolean attribute handling, hydration ID generation, and full
// page rendering with DOCTYPE, head, and the session bootstrap.
//
// To render a VNode tree to a string:
//
//	r := render.NewRenderer(render.Config{})
//	html, err := r.RenderToString(node)
//
// Every element receives a data-hid attribute during rendering, and
// event handlers are collected into a registry retrievable via
// GetHandlers(); the session dispatches client events through it.
//
// All text content is escaped. Raw HTML can be inserted using KindRaw
// nodes, but should only be used with trusted content.
package render
