package psx

// CloneLayer returns a deep copy of layer with fresh ids throughout its
// subtree. The copy is detached (ParentID ""); children of a cloned group
// point at the new group. Pixel, mask and effect data are copied.
func CloneLayer(layer Layer) Layer {
	switch l := layer.(type) {
	case *RasterLayer:
		c := *l
		c.LayerBase = cloneBase(&l.LayerBase)
		c.ImageData = l.ImageData.Clone()
		return &c
	case *TextLayer:
		c := *l
		c.LayerBase = cloneBase(&l.LayerBase)
		return &c
	case *LayerGroup:
		c := *l
		c.LayerBase = cloneBase(&l.LayerBase)
		c.Children = make([]Layer, 0, len(l.Children))
		for _, child := range l.Children {
			cc := CloneLayer(child)
			cc.Base().ParentID = c.ID
			c.Children = append(c.Children, cc)
		}
		return &c
	default:
		return nil
	}
}

func cloneBase(b *LayerBase) LayerBase {
	c := *b
	c.ID = NewID()
	c.ParentID = ""
	c.Mask = b.Mask.Clone()
	if b.Effects != nil {
		c.Effects = append([]LayerEffect(nil), b.Effects...)
	}
	return c
}
