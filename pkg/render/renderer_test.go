package render

import (
	"strings"
	"testing"

	"github.com/melba-ui/melba/pkg/vdom"
)

func TestRenderBasicElement(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Div(vdom.Class("box"), vdom.Text("hello")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, `class="box"`) {
		t.Errorf("expected class attribute, got %s", html)
	}
	if !strings.Contains(html, ">hello</div>") {
		t.Errorf("expected text content, got %s", html)
	}
}

func TestRenderEscapesText(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Span(vdom.Text(`<script>alert("x")</script>`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(html, "<script>alert") {
		t.Errorf("text was not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped entities, got %s", html)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Div(vdom.TitleAttr(`"><script>`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(html, `"><script>`) {
		t.Errorf("attribute was not escaped: %s", html)
	}
}

func TestRenderSortedAttributes(t *testing.T) {
	r := NewRenderer(Config{})
	node := vdom.Div(
		vdom.TitleAttr("t"),
		vdom.Class("c"),
		vdom.ID("i"),
	)
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	classIdx := strings.Index(html, "class=")
	idIdx := strings.Index(html, "id=")
	titleIdx := strings.Index(html, "title=")
	if !(classIdx < idIdx && idIdx < titleIdx) {
		t.Errorf("attributes not sorted: %s", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Img(vdom.Src("/icon.png"), vdom.Alt("icon")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(html, "</img>") {
		t.Errorf("void element should not have closing tag: %s", html)
	}
}

func TestRenderBooleanAttr(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Button(vdom.Disabled(), vdom.Text("no")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, " disabled") {
		t.Errorf("expected bare boolean attribute, got %s", html)
	}
	if strings.Contains(html, `disabled="`) {
		t.Errorf("boolean attribute should not have a value: %s", html)
	}
}

func TestRenderAssignsHIDs(t *testing.T) {
	r := NewRenderer(Config{})
	node := vdom.Div(vdom.Span(vdom.Text("a")), vdom.Span(vdom.Text("b")))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, hid := range []string{`data-hid="h1"`, `data-hid="h2"`, `data-hid="h3"`} {
		if !strings.Contains(html, hid) {
			t.Errorf("expected %s in output: %s", hid, html)
		}
	}
	if node.HID != "h1" {
		t.Errorf("expected root HID h1, got %s", node.HID)
	}
}

func TestRenderHIDsMatchAssignHIDs(t *testing.T) {
	// The renderer and vdom.AssignHIDs must walk in the same order so
	// the session can re-derive the IDs the client saw.
	build := func() *vdom.VNode {
		return vdom.Div(
			vdom.Span(vdom.Text("a")),
			vdom.Ul(vdom.Li(vdom.Text("x")), vdom.Li(vdom.Text("y"))),
		)
	}

	rendered := build()
	r := NewRenderer(Config{})
	if _, err := r.RenderToString(rendered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assigned := build()
	vdom.AssignHIDs(assigned, vdom.NewHIDGenerator())

	var walk func(a, b *vdom.VNode)
	walk = func(a, b *vdom.VNode) {
		if a.HID != b.HID {
			t.Errorf("HID mismatch: rendered %q vs assigned %q (tag %s)", a.HID, b.HID, a.Tag)
		}
		for i := range a.Children {
			walk(a.Children[i], b.Children[i])
		}
	}
	walk(rendered, assigned)
}

func TestRenderCollectsHandlers(t *testing.T) {
	r := NewRenderer(Config{})
	node := vdom.Button(vdom.OnClick(func() {}), vdom.Text("go"))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("expected event marker, got %s", html)
	}
	if strings.Contains(html, "onclick=") {
		t.Errorf("handler must not serialize to HTML: %s", html)
	}

	handlers := r.GetHandlers()
	if _, ok := handlers["h1_onclick"]; !ok {
		t.Errorf("expected h1_onclick in registry, got %v", handlers)
	}
}

func TestRenderFragmentAndRaw(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(vdom.Fragment(
		vdom.Div(vdom.Text("a")),
		vdom.Raw("<b>bold</b>"),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "<b>bold</b>") {
		t.Errorf("raw content should not be escaped: %s", html)
	}
	if strings.Contains(html, "<fragment") {
		t.Errorf("fragment should not render a wrapper: %s", html)
	}
}

func TestRenderComponent(t *testing.T) {
	r := NewRenderer(Config{})
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Span(vdom.Text("inner"))
	})
	html, err := r.RenderToString(vdom.Div(comp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, ">inner</span>") {
		t.Errorf("component output missing: %s", html)
	}
}

func TestRendererReset(t *testing.T) {
	r := NewRenderer(Config{})
	if _, err := r.RenderToString(vdom.Button(vdom.OnClick(func() {}))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Reset()
	if len(r.GetHandlers()) != 0 {
		t.Error("reset should clear handlers")
	}

	node := vdom.Div()
	if _, err := r.RenderToString(node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.HID != "h1" {
		t.Errorf("reset should restart HID counter, got %s", node.HID)
	}
}

func TestRenderNilNode(t *testing.T) {
	r := NewRenderer(Config{})
	html, err := r.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("expected empty output for nil node, got %q", html)
	}
}
