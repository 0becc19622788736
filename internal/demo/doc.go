// Package demo wires the melba toolkit into a runnable showcase
// server. It serves a page whose toolbar pushes notifications at every
// level and renders the toast overlay server-side. Each browser tab
// stays live over a WebSocket: client gestures come in as JSON event
// frames, and every store change a handler makes streams a fresh
// render frame back.
//
// The package is also the reference wiring for embedding melba in an
// application: session lifecycle, frame protocol, and overlay
// configuration all live here.
package demo
