package psx

// Tree functions take the document's root group as first argument and
// mutate it in place. Unknown ids are not errors: the functions return
// nil or false and leave the tree unchanged, so UI code can dispatch
// redundant operations freely.

// AddLayer attaches layer to the group identified by parentID ("" means
// root) at index, counted bottom to top. A negative index, or one past the
// end, places the layer on top. It reports whether the layer was attached;
// an unknown parent, or a group being added inside itself, is a no-op.
func AddLayer(root *LayerGroup, layer Layer, parentID string, index int) bool {
	target := resolveGroup(root, parentID)
	if target == nil {
		return false
	}
	if g, ok := layer.(*LayerGroup); ok && (g == target || containsLayer(g, target.ID)) {
		return false
	}
	insertChild(target, layer, index)
	return true
}

// RemoveLayer detaches the layer with the given id from its parent and
// returns it with ParentID cleared. A removed group keeps its children.
// Returns nil if no such layer exists.
func RemoveLayer(root *LayerGroup, layerID string) Layer {
	parent := FindParentGroup(root, layerID)
	if parent == nil {
		return nil
	}
	i := ChildIndex(parent, layerID)
	layer := parent.Children[i]
	n := len(parent.Children)
	copy(parent.Children[i:], parent.Children[i+1:])
	parent.Children[n-1] = nil
	parent.Children = parent.Children[:n-1]
	layer.Base().ParentID = ""
	return layer
}

// ReorderLayer moves a layer to newParentID ("" means root) at
// min(newIndex, len(children)). It returns false if the layer does not
// exist, or if the target group cannot be found once the layer has been
// detached. In the latter case the layer stays detached; this includes
// moving a group into its own subtree.
func ReorderLayer(root *LayerGroup, layerID, newParentID string, newIndex int) bool {
	layer := RemoveLayer(root, layerID)
	if layer == nil {
		return false
	}
	target := resolveGroup(root, newParentID)
	if target == nil {
		Logger().Warn("psx: reorder target not found, layer left detached",
			"layer", layerID, "parent", newParentID)
		return false
	}
	insertChild(target, layer, newIndex)
	return true
}

// FindLayerByID returns the layer with the given id, searching depth
// first. The root group itself is never returned.
func FindLayerByID(root *LayerGroup, layerID string) Layer {
	for _, child := range root.Children {
		if child.Base().ID == layerID {
			return child
		}
		if g, ok := child.(*LayerGroup); ok {
			if found := FindLayerByID(g, layerID); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindParentGroup returns the group whose Children directly contain the
// layer, or nil.
func FindParentGroup(root *LayerGroup, layerID string) *LayerGroup {
	for _, child := range root.Children {
		if child.Base().ID == layerID {
			return root
		}
		if g, ok := child.(*LayerGroup); ok {
			if found := FindParentGroup(g, layerID); found != nil {
				return found
			}
		}
	}
	return nil
}

// ChildIndex returns the index of the child with the given id in
// group.Children, or -1.
func ChildIndex(group *LayerGroup, layerID string) int {
	return indexOf(group.Children, layerID)
}

// TraverseLayers calls fn for every layer below root in array order. A
// group is visited after all of its descendants, so callers can composite
// a group's children before applying the group's own settings.
func TraverseLayers(root *LayerGroup, fn func(Layer)) {
	for _, child := range root.Children {
		if g, ok := child.(*LayerGroup); ok {
			TraverseLayers(g, fn)
		}
		fn(child)
	}
}

// FlattenLayers returns the TraverseLayers order as a slice. This is the
// document's draw order.
func FlattenLayers(root *LayerGroup) []Layer {
	var out []Layer
	TraverseLayers(root, func(l Layer) {
		out = append(out, l)
	})
	return out
}

// resolveGroup maps "" and the root's own id to root, and any other id to
// the group with that id. Returns nil for unknown ids and non-group layers.
func resolveGroup(root *LayerGroup, id string) *LayerGroup {
	if id == "" || id == root.ID {
		return root
	}
	g, _ := FindLayerByID(root, id).(*LayerGroup)
	return g
}

func insertChild(g *LayerGroup, layer Layer, index int) {
	if index < 0 || index > len(g.Children) {
		index = len(g.Children)
	}
	g.Children = append(g.Children, nil)
	copy(g.Children[index+1:], g.Children[index:])
	g.Children[index] = layer
	layer.Base().ParentID = g.ID
}

func containsLayer(g *LayerGroup, id string) bool {
	return FindLayerByID(g, id) != nil
}

func indexOf(layers []Layer, id string) int {
	for i, l := range layers {
		if l.Base().ID == id {
			return i
		}
	}
	return -1
}
