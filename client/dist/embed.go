// Package clientdist embeds the built thin client assets.
package clientdist

import _ "embed"

// MelbaJS is the thin client JavaScript bundle.
//
// Hosts serve it at "/melba/client.js"; the page bootstrap emitted by
// render.RenderPage loads it from there.
//go:embed melba.js
var MelbaJS []byte

// MelbaCSS is the widget stylesheet.
//go:embed melba.css
var MelbaCSS []byte
