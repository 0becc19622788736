package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates sequential hydration IDs.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs walks the tree and assigns an HID to every element node.
// The walk order must match the renderer's so server handlers and
// client bindings agree on IDs. Component nodes are skipped; expand
// the tree first (see Expand) so their output is visible to the walk.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	if node == nil {
		return nil
	}

	if node.HID == hid {
		return node
	}

	for _, child := range node.Children {
		if found := FindByHID(child, hid); found != nil {
			return found
		}
	}

	return nil
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	collectHIDs(node, result)
	return result
}

func collectHIDs(node *VNode, result map[string]*VNode) {
	if node == nil {
		return
	}

	if node.HID != "" {
		result[node.HID] = node
	}

	for _, child := range node.Children {
		collectHIDs(child, result)
	}
}
