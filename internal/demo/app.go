package demo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientdist "github.com/melba-ui/melba/client/dist"
	"github.com/melba-ui/melba/pkg/middleware"
)

const pageTitle = "melba toasts"

// purgeInterval is how often the manager sweeps pending sessions.
const purgeInterval = 30 * time.Second

// App is the demo HTTP server: the showcase page, the client assets,
// the live WebSocket endpoint, and the operational endpoints.
type App struct {
	cfg      *Config
	sessions *Manager
	router   chi.Router
	server   *http.Server
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewApp wires the router, middleware, and session manager.
func NewApp(cfg *Config, logger *slog.Logger) *App {
	a := &App{
		cfg:      cfg,
		sessions: NewManager(cfg.SessionGrace(), logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus())
	r.Use(middleware.Tracing(middleware.WithRequestFilter(func(req *http.Request) bool {
		return req.URL.Path != "/healthz" && req.URL.Path != "/metrics"
	})))

	r.Get("/", a.handleIndex)
	r.Get("/ws", a.handleWebSocket)
	r.Get("/melba/client.js", a.handleClientJS)
	r.Get("/melba/melba.css", a.handleClientCSS)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", a.handleHealth)

	a.router = r
	return a
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Sessions returns the session manager.
func (a *App) Sessions() *Manager {
	return a.sessions
}

// handleIndex renders the demo page and registers its session.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.Create(a.cfg)

	var buf bytes.Buffer
	if err := sess.RenderInitial(&buf, pageTitle); err != nil {
		a.logger.Error("page render failed", "error", err, "session_id", sess.ID)
		a.sessions.remove(sess.ID)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

// handleWebSocket upgrades the connection and binds it to the session
// named in the query string. Unknown sessions get an error frame over
// the fresh socket so the client can surface it, then a close.
func (a *App) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Error("websocket upgrade failed", "error", err)
		middleware.RecordWebSocketError("upgrade")
		return
	}

	id := r.URL.Query().Get("session")
	sess, ok := a.sessions.Get(id)
	if !ok || sess.Attached() {
		a.logger.Warn("websocket for unknown session", "session_id", id)
		middleware.RecordWebSocketError("session_not_found")
		if data, err := ErrorFrame("E002", "Session not found; reload the page").Encode(); err == nil {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			conn.WriteMessage(websocket.TextMessage, data)
		}
		conn.Close()
		return
	}

	sess.Attach(conn)
}

func (a *App) handleClientJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(clientdist.MelbaJS)
}

func (a *App) handleClientCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(clientdist.MelbaCSS)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Start runs the server until the context is canceled, then shuts
// down gracefully.
func (a *App) Start(ctx context.Context) error {
	a.server = &http.Server{
		Addr:              a.cfg.Address(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.sessions.StartPurge(purgeInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.cfg.Address(), "url", a.cfg.URL())
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.sessions.Shutdown()
		return err
	case <-ctx.Done():
		return a.Shutdown()
	}
}

// Shutdown drains in-flight requests and closes every session.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace())
	defer cancel()

	var err error
	if a.server != nil {
		err = a.server.Shutdown(ctx)
	}
	a.sessions.Shutdown()
	a.logger.Info("server stopped")
	return err
}
