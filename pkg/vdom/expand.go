package vdom

// Expand replaces every component node in the tree with its rendered
// output, recursively. The result contains only element, text,
// fragment, and raw nodes, which makes the tree safe to diff and to
// assign hydration IDs to: component render order can no longer shift
// IDs between otherwise identical trees.
func Expand(node *VNode) *VNode {
	if node == nil {
		return nil
	}

	if node.Kind == KindComponent {
		if node.Comp == nil {
			return nil
		}
		return Expand(node.Comp.Render())
	}

	if len(node.Children) > 0 {
		children := make([]*VNode, 0, len(node.Children))
		for _, child := range node.Children {
			if expanded := Expand(child); expanded != nil {
				children = append(children, expanded)
			}
		}
		node.Children = children
	}

	return node
}
