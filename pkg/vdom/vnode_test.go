package vdom

import (
	"strings"
	"testing"
)

func TestCreateElementBasic(t *testing.T) {
	node := Div(Class("box"), ID("main"))

	if node.Kind != KindElement {
		t.Errorf("expected KindElement, got %v", node.Kind)
	}
	if node.Tag != "div" {
		t.Errorf("expected tag div, got %s", node.Tag)
	}
	if node.Props["class"] != "box" {
		t.Errorf("expected class box, got %v", node.Props["class"])
	}
	if node.Props["id"] != "main" {
		t.Errorf("expected id main, got %v", node.Props["id"])
	}
}

func TestCreateElementChildren(t *testing.T) {
	node := Ul(
		Li(Text("one")),
		[]*VNode{Li(Text("two")), Li(Text("three"))},
		nil,
		"four",
	)

	if len(node.Children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(node.Children))
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "four" {
		t.Errorf("expected trailing string to become text node, got %+v", node.Children[3])
	}
}

func TestCreateElementKey(t *testing.T) {
	node := Li(Key("item-7"), Text("seven"))

	if node.Key != "item-7" {
		t.Errorf("expected key item-7, got %q", node.Key)
	}
	if _, exists := node.Props["key"]; exists {
		t.Error("key should not appear in props")
	}
}

func TestCreateElementEventHandler(t *testing.T) {
	called := false
	node := Button(OnClick(func() { called = true }), Text("go"))

	handler, ok := node.Props["onclick"].(func())
	if !ok {
		t.Fatalf("expected onclick func in props, got %T", node.Props["onclick"])
	}
	handler()
	if !called {
		t.Error("handler was not invoked")
	}

	if !node.IsInteractive() {
		t.Error("node with onclick should be interactive")
	}
}

func TestCreateElementHookHandlerMerge(t *testing.T) {
	h1 := func() {}
	h2 := func() {}
	node := Div(
		Attr{Key: "onhook", Value: h1},
		Attr{Key: "onhook", Value: h2},
	)

	handlers, ok := node.Props["onhook"].([]any)
	if !ok {
		t.Fatalf("expected merged []any, got %T", node.Props["onhook"])
	}
	if len(handlers) != 2 {
		t.Errorf("expected 2 merged handlers, got %d", len(handlers))
	}
}

func TestCreateElementEmptyAttrIgnored(t *testing.T) {
	node := Div(ClassIf(false, "hidden"))

	if len(node.Props) != 0 {
		t.Errorf("expected no props, got %v", node.Props)
	}
}

func TestIsInteractive(t *testing.T) {
	if Div(Class("plain")).IsInteractive() {
		t.Error("node without handlers should not be interactive")
	}
	if Text("hi").IsInteractive() {
		t.Error("text node should not be interactive")
	}
	var nilNode *VNode
	if nilNode.IsInteractive() {
		t.Error("nil node should not be interactive")
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(
		Div(),
		nil,
		"text",
		[]*VNode{Span(), nil, Span()},
	)

	if frag.Kind != KindFragment {
		t.Errorf("expected KindFragment, got %v", frag.Kind)
	}
	if len(frag.Children) != 4 {
		t.Errorf("expected 4 children, got %d", len(frag.Children))
	}
}

func TestIfHelpers(t *testing.T) {
	node := Div()

	if If(true, node) != node {
		t.Error("If(true) should return the node")
	}
	if If(false, node) != nil {
		t.Error("If(false) should return nil")
	}

	other := Span()
	if IfElse(false, node, other) != other {
		t.Error("IfElse(false) should return the second node")
	}

	called := false
	When(false, func() *VNode {
		called = true
		return node
	})
	if called {
		t.Error("When(false) should not evaluate the function")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "b" {
			return nil
		}
		return Li(Text(item))
	})

	if len(nodes) != 2 {
		t.Errorf("expected nil results to be skipped, got %d nodes", len(nodes))
	}
}

func TestTextf(t *testing.T) {
	node := Textf("%d unread", 3)
	if node.Text != "3 unread" {
		t.Errorf("expected '3 unread', got %q", node.Text)
	}
}

func TestFuncComponent(t *testing.T) {
	comp := Func(func() *VNode { return Div(Class("inner")) })

	node := Div(comp)
	if len(node.Children) != 1 {
		t.Fatalf("expected component child, got %d children", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindComponent {
		t.Errorf("expected KindComponent, got %v", child.Kind)
	}
	if child.Comp.Render().Props["class"] != "inner" {
		t.Error("component render output mismatch")
	}
}

func TestExpand(t *testing.T) {
	comp := Func(func() *VNode {
		return Span(Text("from component"))
	})
	tree := Expand(Div(comp, P(Text("static"))))

	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children after expand, got %d", len(tree.Children))
	}
	if tree.Children[0].Kind != KindElement || tree.Children[0].Tag != "span" {
		t.Errorf("expected component replaced by its output, got %+v", tree.Children[0])
	}
}

func TestClasses(t *testing.T) {
	a := Classes("toast", []string{"raised"}, map[string]bool{"exiting": true, "hidden": false})

	got := a.Value.(string)
	parts := strings.Fields(got)

	// Map order is not fixed; check membership instead of exact string.
	for _, want := range []string{"toast", "raised", "exiting"} {
		found := false
		for _, part := range parts {
			if part == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected class %q in %q", want, got)
		}
	}
	for _, part := range parts {
		if part == "hidden" {
			t.Error("excluded class should not appear")
		}
	}
}
