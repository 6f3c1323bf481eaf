// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"github.com/gogpu/psx"
	"github.com/gogpu/psx/textmetrics"
)

// Every stock command marks its document dirty on Execute and Undo.
// Commands that target a layer by id do nothing if the layer is gone.

// AddLayer returns a command that attaches layer under parentID ("" means
// root) at index, with the same index rules as psx.AddLayer. Undo detaches
// it again and clears the selection if it pointed at the layer.
func AddLayer(doc *psx.Document, layer psx.Layer, parentID string, index int) Command {
	return &addLayer{doc: doc, layer: layer, parentID: parentID, index: index}
}

type addLayer struct {
	doc      *psx.Document
	layer    psx.Layer
	parentID string
	index    int
	added    bool
}

func (c *addLayer) Description() string { return "Add Layer" }

func (c *addLayer) Execute() {
	c.added = psx.AddLayer(c.doc.RootGroup, c.layer, c.parentID, c.index)
	if c.added {
		c.doc.MarkDirty()
	}
}

func (c *addLayer) Undo() {
	if !c.added {
		return
	}
	id := c.layer.Base().ID
	psx.RemoveLayer(c.doc.RootGroup, id)
	deselect(c.doc, c.layer)
	c.doc.MarkDirty()
}

// RemoveLayer returns a command that detaches the layer with the given id.
// Undo puts it back under its original parent at its original index.
func RemoveLayer(doc *psx.Document, layerID string) Command {
	return &removeLayer{doc: doc, id: layerID}
}

type removeLayer struct {
	doc      *psx.Document
	id       string
	layer    psx.Layer
	parentID string
	index    int
}

func (c *removeLayer) Description() string { return "Delete Layer" }

func (c *removeLayer) Execute() {
	c.layer = nil
	parent := psx.FindParentGroup(c.doc.RootGroup, c.id)
	if parent == nil {
		return
	}
	c.parentID = parent.ID
	c.index = psx.ChildIndex(parent, c.id)
	c.layer = psx.RemoveLayer(c.doc.RootGroup, c.id)
	deselect(c.doc, c.layer)
	c.doc.MarkDirty()
}

func (c *removeLayer) Undo() {
	if c.layer == nil {
		return
	}
	psx.AddLayer(c.doc.RootGroup, c.layer, c.parentID, c.index)
	c.doc.MarkDirty()
}

// ReorderLayer returns a command that moves a layer to newParentID ("" means
// root) at newIndex. Undo restores the previous parent and index, including
// when the move left the layer detached.
func ReorderLayer(doc *psx.Document, layerID, newParentID string, newIndex int) Command {
	return &reorderLayer{doc: doc, id: layerID, newParentID: newParentID, newIndex: newIndex}
}

type reorderLayer struct {
	doc         *psx.Document
	id          string
	newParentID string
	newIndex    int

	layer    psx.Layer
	parentID string
	index    int
}

func (c *reorderLayer) Description() string { return "Move Layer" }

func (c *reorderLayer) Execute() {
	c.layer = nil
	parent := psx.FindParentGroup(c.doc.RootGroup, c.id)
	if parent == nil {
		return
	}
	c.parentID = parent.ID
	c.index = psx.ChildIndex(parent, c.id)
	c.layer = parent.Children[c.index]
	psx.ReorderLayer(c.doc.RootGroup, c.id, c.newParentID, c.newIndex)
	c.doc.MarkDirty()
}

func (c *reorderLayer) Undo() {
	if c.layer == nil {
		return
	}
	if psx.FindLayerByID(c.doc.RootGroup, c.id) == nil {
		psx.AddLayer(c.doc.RootGroup, c.layer, c.parentID, c.index)
	} else {
		psx.ReorderLayer(c.doc.RootGroup, c.id, c.parentID, c.index)
	}
	c.doc.MarkDirty()
}

// setLayer is a command that swaps one value on a layer.
type setLayer[T any] struct {
	doc   *psx.Document
	id    string
	desc  string
	get   func(psx.Layer) (T, bool)
	set   func(psx.Layer, T)
	value T

	prev    T
	applied bool
}

func (c *setLayer[T]) Description() string { return c.desc }

func (c *setLayer[T]) Execute() {
	c.applied = false
	l := psx.FindLayerByID(c.doc.RootGroup, c.id)
	if l == nil {
		return
	}
	prev, ok := c.get(l)
	if !ok {
		return
	}
	c.prev = prev
	c.set(l, c.value)
	c.applied = true
	c.doc.MarkDirty()
}

func (c *setLayer[T]) Undo() {
	if !c.applied {
		return
	}
	l := psx.FindLayerByID(c.doc.RootGroup, c.id)
	if l == nil {
		return
	}
	c.set(l, c.prev)
	c.doc.MarkDirty()
}

// Rename returns a command that sets a layer's name.
func Rename(doc *psx.Document, layerID, name string) Command {
	return &setLayer[string]{
		doc: doc, id: layerID, desc: "Rename Layer", value: name,
		get: func(l psx.Layer) (string, bool) { return l.Base().Name, true },
		set: func(l psx.Layer, v string) { l.Base().Name = v },
	}
}

// SetVisible returns a command that shows or hides a layer.
func SetVisible(doc *psx.Document, layerID string, visible bool) Command {
	desc := "Hide Layer"
	if visible {
		desc = "Show Layer"
	}
	return &setLayer[bool]{
		doc: doc, id: layerID, desc: desc, value: visible,
		get: func(l psx.Layer) (bool, bool) { return l.Base().Visible, true },
		set: func(l psx.Layer, v bool) { l.Base().Visible = v },
	}
}

// SetLocked returns a command that locks or unlocks a layer.
func SetLocked(doc *psx.Document, layerID string, locked bool) Command {
	desc := "Unlock Layer"
	if locked {
		desc = "Lock Layer"
	}
	return &setLayer[bool]{
		doc: doc, id: layerID, desc: desc, value: locked,
		get: func(l psx.Layer) (bool, bool) { return l.Base().Locked, true },
		set: func(l psx.Layer, v bool) { l.Base().Locked = v },
	}
}

// SetOpacity returns a command that sets a layer's opacity, clamped to
// [0, 1].
func SetOpacity(doc *psx.Document, layerID string, opacity float64) Command {
	return &setLayer[float64]{
		doc: doc, id: layerID, desc: "Change Opacity", value: opacity,
		get: func(l psx.Layer) (float64, bool) { return l.Base().Opacity, true },
		set: func(l psx.Layer, v float64) { l.Base().SetOpacity(v) },
	}
}

// SetBlendMode returns a command that sets a layer's blend mode.
func SetBlendMode(doc *psx.Document, layerID string, mode psx.BlendMode) Command {
	return &setLayer[psx.BlendMode]{
		doc: doc, id: layerID, desc: "Change Blend Mode", value: mode,
		get: func(l psx.Layer) (psx.BlendMode, bool) { return l.Base().BlendMode, true },
		set: func(l psx.Layer, v psx.BlendMode) { l.Base().BlendMode = v },
	}
}

// Move returns a command that sets a layer's position.
func Move(doc *psx.Document, layerID string, pos psx.Point) Command {
	return &setLayer[psx.Point]{
		doc: doc, id: layerID, desc: "Move", value: pos,
		get: func(l psx.Layer) (psx.Point, bool) { return l.Base().Position, true },
		set: func(l psx.Layer, v psx.Point) { l.Base().Position = v },
	}
}

// SetMask returns a command that replaces a layer's mask. A nil mask
// removes it.
func SetMask(doc *psx.Document, layerID string, mask *psx.LayerMask) Command {
	desc := "Add Layer Mask"
	if mask == nil {
		desc = "Delete Layer Mask"
	}
	return &setLayer[*psx.LayerMask]{
		doc: doc, id: layerID, desc: desc, value: mask,
		get: func(l psx.Layer) (*psx.LayerMask, bool) { return l.Base().Mask, true },
		set: func(l psx.Layer, v *psx.LayerMask) { l.Base().Mask = v },
	}
}

// rasterState is the part of a raster layer replaced by pixel edits.
type rasterState struct {
	img    *psx.ImageData
	bounds psx.Rect
}

// ReplacePixels returns a command that swaps a raster layer's pixel buffer
// for img and resizes its bounds to match, keeping their origin. It does
// nothing for other layer kinds.
func ReplacePixels(doc *psx.Document, layerID string, img *psx.ImageData) Command {
	return &setLayer[rasterState]{
		doc: doc, id: layerID, desc: "Edit Pixels", value: rasterState{img: img},
		get: func(l psx.Layer) (rasterState, bool) {
			r, ok := l.(*psx.RasterLayer)
			if !ok {
				return rasterState{}, false
			}
			return rasterState{img: r.ImageData, bounds: r.Bounds}, true
		},
		set: func(l psx.Layer, v rasterState) {
			r := l.(*psx.RasterLayer)
			if v.bounds.Empty() && v.img != nil {
				v.bounds = psx.NewRect(r.Bounds.X, r.Bounds.Y, float64(v.img.Width), float64(v.img.Height))
			}
			r.ImageData = v.img
			r.Bounds = v.bounds
		},
	}
}

// textState is the part of a text layer replaced by SetText.
type textState struct {
	text   string
	bounds psx.Rect
	valid  bool
}

// SetText returns a command that replaces a text layer's content and
// re-measures its bounds with textmetrics. It does nothing for other
// layer kinds.
func SetText(doc *psx.Document, layerID, text string) Command {
	return &setLayer[textState]{
		doc: doc, id: layerID, desc: "Edit Text", value: textState{text: text},
		get: func(l psx.Layer) (textState, bool) {
			t, ok := l.(*psx.TextLayer)
			if !ok {
				return textState{}, false
			}
			return textState{text: t.Text, bounds: t.TextBounds, valid: true}, true
		},
		set: func(l psx.Layer, v textState) {
			t := l.(*psx.TextLayer)
			t.Text = v.text
			if v.valid {
				t.TextBounds = v.bounds
				return
			}
			t.TextBounds = textmetrics.Measure(t)
		},
	}
}

// ToggleClippingMask returns a command that flips a layer's clipping flag
// with the rules of psx.ToggleClippingMask.
func ToggleClippingMask(doc *psx.Document, layerID string) Command {
	return &toggleClipping{doc: doc, id: layerID}
}

type toggleClipping struct {
	doc     *psx.Document
	id      string
	changed bool
}

func (c *toggleClipping) Description() string { return "Toggle Clipping Mask" }

func (c *toggleClipping) Execute() {
	c.changed = psx.ToggleClippingMask(c.doc.RootGroup, c.id)
	if c.changed {
		c.doc.MarkDirty()
	}
}

func (c *toggleClipping) Undo() {
	if !c.changed {
		return
	}
	// Set directly: psx.ToggleClippingMask refuses to set the flag on the
	// bottom layer, which undoing an unset may need.
	if l := psx.FindLayerByID(c.doc.RootGroup, c.id); l != nil {
		b := l.Base()
		b.ClippingMask = !b.ClippingMask
		c.doc.MarkDirty()
	}
}

func deselect(doc *psx.Document, layer psx.Layer) {
	if layer == nil || doc.SelectedLayerID == "" {
		return
	}
	if doc.SelectedLayerID == layer.Base().ID {
		doc.SelectedLayerID = ""
		return
	}
	if g, ok := layer.(*psx.LayerGroup); ok && psx.FindLayerByID(g, doc.SelectedLayerID) != nil {
		doc.SelectedLayerID = ""
	}
}
