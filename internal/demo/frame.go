package demo

import (
	"encoding/json"

	"github.com/melba-ui/melba/internal/errors"
)

// Frame types exchanged with the thin client. The wire format is JSON
// text messages; every frame carries a "type" discriminator and only
// the fields that type uses.
const (
	// FrameEvent carries a user interaction from the client.
	FrameEvent = "event"

	// FrameRender carries a fresh render of the live region to the
	// client, which swaps it into the DOM.
	FrameRender = "render"

	// FrameError reports a server-side failure to the client.
	FrameError = "error"

	// FramePing and FramePong keep idle connections alive.
	FramePing = "ping"
	FramePong = "pong"
)

// Event kinds within a FrameEvent. Standard DOM events use their name
// directly ("click"); hook telemetry arrives as EventHook with the
// hook event name in Frame.Name.
const (
	EventClick = "click"
	EventHook  = "hook"
)

// Frame is a single protocol message in either direction.
type Frame struct {
	Type string `json:"type"`

	// Event frames (client to server).
	HID   string         `json:"hid,omitempty"`
	Event string         `json:"event,omitempty"`
	Name  string         `json:"name,omitempty"`
	Data  map[string]any `json:"data,omitempty"`

	// Render frames (server to client).
	HTML string `json:"html,omitempty"`

	// Error frames (server to client).
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// DecodeFrame parses a frame received from the client. It validates
// only the envelope; kind-specific fields are checked at dispatch.
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.New("E020").
			WithDetail("Frame is not valid JSON: " + err.Error())
	}
	if f.Type == "" {
		return nil, errors.New("E020").
			WithDetail("Frame is missing the type field")
	}
	return &f, nil
}

// Encode serializes a frame for the wire.
func (f *Frame) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// RenderFrame builds a render frame carrying the given HTML.
func RenderFrame(html string) *Frame {
	return &Frame{Type: FrameRender, HTML: html}
}

// ErrorFrame builds an error frame with the given code and message.
func ErrorFrame(code, message string) *Frame {
	return &Frame{Type: FrameError, Code: code, Message: message}
}

// PongFrame builds the reply to a client ping.
func PongFrame() *Frame {
	return &Frame{Type: FramePong}
}
