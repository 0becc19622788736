package demo

import (
	"fmt"

	"github.com/melba-ui/melba/pkg/middleware"
	"github.com/melba-ui/melba/pkg/overlay"
	"github.com/melba-ui/melba/pkg/toast"
	"github.com/melba-ui/melba/pkg/vdom"
)

// Body builds the live region of the demo page: a toolbar that pushes
// notifications at each level, a status line, and the toast overlay.
// The client swaps this whole node on every render frame, so all
// interactive elements live inside it.
func Body(store *toast.Store, cfg *Config) *vdom.VNode {
	return vdom.Div(
		vdom.Data("melba-root", "true"),
		vdom.Class("melba-app"),
		header(),
		toolbar(store),
		statusLine(store),
		overlay.Overlay(store, overlayOptions(cfg)...),
	)
}

func header() *vdom.VNode {
	return vdom.Header(
		vdom.Class("app-header"),
		vdom.H1(vdom.Text("melba")),
		vdom.P(vdom.Text("Server-driven toast notifications. Push a few, swipe them away, tap the stack to expand.")),
	)
}

func toolbar(store *toast.Store) *vdom.VNode {
	return vdom.Div(
		vdom.Class("toolbar"),
		pushButton("Success", "toolbar-btn--success", func() {
			push(store, toast.LevelSuccess, "Changes saved")
		}),
		pushButton("Error", "toolbar-btn--error", func() {
			push(store, toast.LevelError, "Request failed")
		}),
		pushButton("Warning", "toolbar-btn--warning", func() {
			push(store, toast.LevelWarning, "Disk space low")
		}),
		pushButton("Info", "toolbar-btn--info", func() {
			push(store, toast.LevelInfo, "Deploy started")
		}),
		vdom.Button(
			vdom.Class("toolbar-btn"),
			vdom.Data("action", "toggle"),
			vdom.OnClick(func() { store.ToggleExpanded() }),
			vdom.Text("Toggle layout"),
		),
		vdom.Button(
			vdom.Class("toolbar-btn"),
			vdom.Data("action", "dismiss-oldest"),
			vdom.OnClick(func() { dismissOldest(store) }),
			vdom.Text("Dismiss oldest"),
		),
	)
}

func pushButton(label, class string, onClick func()) *vdom.VNode {
	return vdom.Button(
		vdom.Classes("toolbar-btn", class),
		vdom.Data("action", "push"),
		vdom.OnClick(onClick),
		vdom.Text(label),
	)
}

// push adds a standard note at the given level and counts it.
func push(store *toast.Store, level toast.Level, text string) {
	store.PushLevel(level, toast.Note(text, level.Icon()))
	middleware.RecordToastPushed(string(level))
}

func dismissOldest(store *toast.Store) {
	records := store.Records()
	if len(records) == 0 {
		return
	}
	store.Dismiss(records[0].ID)
}

func statusLine(store *toast.Store) *vdom.VNode {
	mode := "stacked"
	if store.Expanded() {
		mode = "expanded"
	}
	return vdom.P(
		vdom.Class("status-line"),
		vdom.Data("status", "true"),
		vdom.Text(fmt.Sprintf("%d active, %s", store.Len(), mode)),
	)
}

// overlayOptions maps overlay settings from the config.
func overlayOptions(cfg *Config) []overlay.Option {
	if cfg == nil {
		return nil
	}
	var opts []overlay.Option
	if cfg.Overlay.Position != "" {
		opts = append(opts, overlay.WithPosition(overlay.Position(cfg.Overlay.Position)))
	}
	if cfg.Overlay.Width > 0 {
		opts = append(opts, overlay.WithWidth(cfg.Overlay.Width))
	}
	return opts
}
