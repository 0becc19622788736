package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Diff compares two VNode trees and returns the patches needed to
// transform prev into next. HIDs are carried over from prev to next so
// a subsequent diff can target the same elements.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches. parentHID is
// the HID of the enclosing element, used for text patches since text
// nodes have no HID of their own.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Additions are handled by the parent via InsertNode.
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	case KindComponent:
		diffComponent(prev, next, parentHID, patches)
	case KindRaw:
		diffRaw(prev, next, parentHID, patches)
	}
}

// diffText compares text nodes. The patch targets the parent element;
// the client updates its textContent.
func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   targetHID,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID

	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

// diffComponent renders both components and diffs the output.
func diffComponent(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Comp != nil && next.Comp != nil {
		diff(prev.Comp.Render(), next.Comp.Render(), parentHID, patches)
	}
}

// diffRaw compares raw HTML nodes. Raw content has no structure to
// patch, so any change replaces the node.
func diffRaw(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch{
				Op:   PatchReplaceNode,
				HID:  targetHID,
				Node: next,
			})
		}
	}
}

// diffProps compares and patches attributes. Event handlers never
// render as attributes, so they are skipped here; the session rebinds
// them from the new tree.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		if isEventHandler(key) || key == "key" {
			continue
		}

		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if isEventHandler(key) || key == "key" {
			continue
		}

		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}
}

// diffChildren compares child lists, using keyed reconciliation when
// any child carries a key.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	} else {
		diffUnkeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	}
}

// diffUnkeyedChildren matches children by position.
func diffUnkeyedChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode

		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		default:
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren matches children by key so removals from the
// middle of a list produce one RemoveNode plus moves instead of
// rewriting every following sibling.
func diffKeyedChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	prevKeyMap := make(map[string]int)
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeyMap[key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		key := getKey(nextChild)

		if key == "" {
			// Unkeyed node in a keyed list is treated as an insert.
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		prevIdx, exists := prevKeyMap[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		matched[prevIdx] = true
		prevChild := prev[prevIdx]

		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				HID:      prevChild.HID,
				ParentID: parent.HID,
				Index:    nextIdx,
			})
		}

		diff(prevChild, nextChild, parentHID, patches)
	}

	for i, prevChild := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		}
	}
}

// getKey extracts the reconciliation key from a node.
func getKey(node *VNode) string {
	if node == nil {
		return ""
	}
	if node.Key != "" {
		return node.Key
	}
	if node.Props == nil {
		return ""
	}
	if key, ok := node.Props["key"].(string); ok {
		return key
	}
	return ""
}

// hasKeys returns true if any child has a key.
func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

// isEventHandler returns true if the prop key is an event handler.
// Case-insensitive to catch onclick, ONCLICK, onClick, etc.
func isEventHandler(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to a string for the patch.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
