package psx

// IsClippingMask reports whether the layer is clipped to the layer below.
func IsClippingMask(layer Layer) bool {
	return layer.Base().ClippingMask
}

// GetClippingBase returns the nearest sibling below layer that is not
// itself a clipping mask. It returns nil if layer is the bottom-most
// sibling, is not among siblings, or every layer below it is clipping.
func GetClippingBase(layer Layer, siblings []Layer) Layer {
	idx := indexOf(siblings, layer.Base().ID)
	if idx <= 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if !IsClippingMask(siblings[i]) {
			return siblings[i]
		}
	}
	return nil
}

// GetClippedLayers returns the contiguous run of clipping siblings directly
// above base, bottom to top. The scan stops at the first non-clipping layer.
func GetClippedLayers(base Layer, siblings []Layer) []Layer {
	idx := indexOf(siblings, base.Base().ID)
	if idx < 0 {
		return nil
	}
	var clipped []Layer
	for i := idx + 1; i < len(siblings); i++ {
		if !IsClippingMask(siblings[i]) {
			break
		}
		clipped = append(clipped, siblings[i])
	}
	return clipped
}

// ToggleClippingMask flips the clipping flag of the layer with the given
// id and reports whether it changed. The flag cannot be set on the
// bottom-most layer of a group, which has nothing below to clip to;
// clearing it there is allowed. Unknown ids are a no-op.
func ToggleClippingMask(root *LayerGroup, layerID string) bool {
	parent := FindParentGroup(root, layerID)
	if parent == nil {
		return false
	}
	idx := ChildIndex(parent, layerID)
	b := parent.Children[idx].Base()
	if !b.ClippingMask && idx == 0 {
		return false
	}
	b.ClippingMask = !b.ClippingMask
	return true
}
