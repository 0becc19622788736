package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/melba-ui/melba/internal/errors"
	"github.com/melba-ui/melba/pkg/hook"
	"github.com/melba-ui/melba/pkg/middleware"
	"github.com/melba-ui/melba/pkg/render"
	"github.com/melba-ui/melba/pkg/toast"
	"github.com/melba-ui/melba/pkg/vdom"
)

const (
	readTimeout       = 60 * time.Second
	writeTimeout      = 10 * time.Second
	heartbeatInterval = 25 * time.Second
	maxMessageSize    = 4096
	eventQueueSize    = 64
)

// Session ties one browser tab to its toast store. The page render
// and every subsequent frame come from the same body function; the
// renderer's handler registry from the latest render is what events
// dispatch against.
//
// Lifecycle: created on page load, attached when the client opens its
// WebSocket, closed when the socket drops.
type Session struct {
	// ID is the session identifier the page bootstrap hands to the
	// client.
	ID string

	// CreatedAt is when the page was rendered.
	CreatedAt time.Time

	store     *toast.Store
	body      func() *vdom.VNode
	renderer  *render.Renderer
	handlers  map[string]any
	lastTree  *vdom.VNode
	lastCount int

	conn     *websocket.Conn
	mu       sync.Mutex // protects conn writes
	attached atomic.Bool
	closed   atomic.Bool

	events   chan *Frame
	renderCh chan struct{}
	done     chan struct{}
	unwatch  func()
	onClose  func()

	ctx context.Context

	eventCount atomic.Uint64
	frameCount atomic.Uint64

	logger *slog.Logger
}

// newSession creates a detached session around a fresh store.
func newSession(id string, store *toast.Store, body func() *vdom.VNode, logger *slog.Logger) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		store:     store,
		body:      body,
		renderer:  render.NewRenderer(render.Config{}),
		handlers:  make(map[string]any),
		events:    make(chan *Frame, eventQueueSize),
		renderCh:  make(chan struct{}, 1),
		done:      make(chan struct{}),
		ctx:       context.Background(),
		logger:    logger.With("session_id", id),
	}
}

// Store returns the session's toast store.
func (s *Session) Store() *toast.Store {
	return s.store
}

// Attached reports whether a WebSocket is bound to this session.
func (s *Session) Attached() bool {
	return s.attached.Load()
}

// RenderInitial writes the full HTML document for this session. The
// handler registry collected here serves events from the initial DOM
// until the first render frame replaces both together.
func (s *Session) RenderInitial(w io.Writer, title string) error {
	s.renderer.Reset()
	tree := s.body()
	err := s.renderer.RenderPage(w, render.PageData{
		Body:        tree,
		Title:       title,
		StyleSheets: []string{"/melba/melba.css"},
		SessionID:   s.ID,
	})
	if err != nil {
		return err
	}
	s.handlers = s.renderer.GetHandlers()
	s.lastTree = tree
	s.lastCount = s.store.Len()
	return nil
}

// Attach binds the WebSocket connection and starts the session loops.
func (s *Session) Attach(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.attached.Store(true)

	// Coalesce store notifications; the event loop renders at most
	// once per wakeup.
	s.unwatch = s.store.Watch(func() {
		select {
		case s.renderCh <- struct{}{}:
		default:
		}
	})

	middleware.RecordSessionStart()
	s.logger.Info("session attached")

	go s.readLoop()
	go s.eventLoop()
	go s.writeLoop()
}

// readLoop reads frames off the socket until it closes.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read failed", "error", err)
				middleware.RecordWebSocketError("read")
			}
			return
		}

		frame, err := DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("bad frame", "error", err)
			middleware.RecordWebSocketError("decode")
			s.send(ErrorFrame("E020", "Invalid frame"))
			continue
		}

		switch frame.Type {
		case FramePing:
			s.send(PongFrame())

		case FrameEvent:
			select {
			case s.events <- frame:
			default:
				s.logger.Warn("event queue full, dropping", "hid", frame.HID)
				middleware.RecordWebSocketError("queue_full")
			}

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
			s.send(ErrorFrame("E021", "Unknown frame type: "+frame.Type))
		}
	}
}

// eventLoop serializes event handling and rendering on one goroutine.
// A handler mutates the store, whose watch wakes renderCh so the next
// loop iteration sends the frame.
func (s *Session) eventLoop() {
	for {
		select {
		case frame := <-s.events:
			s.handleEvent(frame)

		case <-s.renderCh:
			s.renderAndSend()

		case <-s.done:
			return
		}
	}
}

// writeLoop sends heartbeats until the session closes.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.ping(); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}

// handleEvent looks up and runs the handler a frame addresses.
func (s *Session) handleEvent(frame *Frame) {
	start := time.Now()
	name := frame.Event
	if frame.Event == EventHook {
		name = frame.Name
	}

	_, span := middleware.EventSpan(s.ctx, name, frame.HID)

	var err error
	defer func() {
		middleware.EndEventSpan(span, err)
		middleware.RecordEvent(name, time.Since(start), err)
	}()

	var key string
	if frame.Event == EventHook {
		key = frame.HID + "_onhook"
	} else {
		key = frame.HID + "_on" + frame.Event
	}

	handler, ok := s.handlers[key]
	if !ok {
		err = errors.New("E001").WithDetail("No handler registered for " + key)
		s.logger.Warn("handler not found", "hid", frame.HID, "event", frame.Event, "key", key)
		s.send(ErrorFrame("E001", "No handler for "+key))
		return
	}

	err = s.invoke(handler, frame)
	if err != nil {
		s.send(ErrorFrame(errorCode(err), "Internal error"))
		return
	}

	s.eventCount.Add(1)
}

// invoke dispatches the frame to the handler with panic recovery.
func (s *Session) invoke(handler any, frame *Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("handler panic",
				"panic", r,
				"hid", frame.HID,
				"event", frame.Event,
				"stack", string(stack))
			err = errors.New("E003").WithDetail(fmt.Sprintf("%v", r))
		}
	}()

	if frame.Event == EventHook {
		ev := hook.Event{Name: frame.Name, Data: frame.Data}
		if !dispatchHook(handler, ev) {
			return errors.New("E022").
				WithDetail(fmt.Sprintf("Hook handler has unsupported type %T", handler))
		}
		return nil
	}

	if !dispatchFunc(handler) {
		return errors.New("E022").
			WithDetail(fmt.Sprintf("Handler has unsupported type %T", handler))
	}
	return nil
}

// dispatchHook delivers a hook event to a handler value from the
// registry. Merged handlers arrive as []any; every one sees the event
// and filters by name itself.
func dispatchHook(handler any, ev hook.Event) bool {
	switch h := handler.(type) {
	case func(hook.Event):
		h(ev)
		return true
	case []any:
		handled := false
		for _, inner := range h {
			if dispatchHook(inner, ev) {
				handled = true
			}
		}
		return handled
	default:
		return false
	}
}

// dispatchFunc delivers a plain DOM event to a handler value.
func dispatchFunc(handler any) bool {
	switch h := handler.(type) {
	case func():
		h()
		return true
	case func(any):
		h(nil)
		return true
	default:
		return false
	}
}

// renderAndSend renders the live region and streams it to the client.
// The handler registry swaps atomically with the frame so the DOM the
// client shows always matches the handlers the server holds.
func (s *Session) renderAndSend() {
	s.renderer.Reset()
	tree := s.body()
	html, err := s.renderer.RenderToString(tree)
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.send(ErrorFrame("E003", "Render failed"))
		return
	}
	s.handlers = s.renderer.GetHandlers()

	if s.lastTree != nil && s.logger.Enabled(s.ctx, slog.LevelDebug) {
		patches := vdom.Diff(s.lastTree, tree)
		s.logger.Debug("render frame", "patches", len(patches), "bytes", len(html))
	}
	s.lastTree = tree

	// Pushes are counted where the level is known; dismissals show up
	// here as the collection shrinking.
	count := s.store.Len()
	for i := count; i < s.lastCount; i++ {
		middleware.RecordToastDismissed()
	}
	s.lastCount = count

	s.send(RenderFrame(html))
	s.frameCount.Add(1)
	middleware.RecordFrames(1)
}

// send writes one frame to the socket. Write failures log and close;
// the read loop notices the dead socket and finishes teardown.
func (s *Session) send(f *Frame) {
	data, err := f.Encode()
	if err != nil {
		s.logger.Error("frame encode failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() || s.conn == nil {
		return
	}

	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write failed", "error", errors.New("E023").Wrap(err))
		middleware.RecordWebSocketError("write")
		go s.Close()
	}
}

// ping sends a WebSocket-level heartbeat.
func (s *Session) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() || s.conn == nil {
		return errors.New("E023").WithDetail("Session closed")
	}
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	if s.unwatch != nil {
		s.unwatch()
	}
	close(s.done)

	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.mu.Unlock()

	if s.attached.Load() {
		middleware.RecordSessionEnd()
	}
	if s.onClose != nil {
		s.onClose()
	}

	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"frames", s.frameCount.Load())
}

// errorCode extracts the melba error code for the client, defaulting
// to the handler panic code.
func errorCode(err error) string {
	if me, ok := err.(*errors.MelbaError); ok && me.Code != "" {
		return me.Code
	}
	return "E003"
}
