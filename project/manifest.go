// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gogpu/psx"
)

// File layout constants.
const (
	// FormatVersion is the manifest version written and accepted.
	FormatVersion = 1

	// ManifestName is the archive entry holding the manifest.
	ManifestName = "manifest.json"

	// Extension is the conventional project file extension.
	Extension = ".psxp"

	// DefaultDocumentName names loaded documents unless WithName is given.
	DefaultDocumentName = "Untitled"

	layersDir = "layers/"
	masksDir  = "masks/"
)

// File is a project in unpacked form: the manifest plus the binary blobs
// it references, keyed by archive path.
type File struct {
	Manifest Manifest
	Files    map[string][]byte
}

// Manifest is the JSON description of a project, excluding pixel data.
type Manifest struct {
	Version    int         `json:"version"`
	Canvas     psx.Canvas  `json:"canvas"`
	LayerTree  []LayerNode `json:"layerTree"`
	CreatedAt  time.Time   `json:"createdAt"`
	ModifiedAt time.Time   `json:"modifiedAt"`
}

// LayerNode is one layer in the manifest tree.
//
// Properties holds the variant-specific schema selected by Type:
// *RasterProperties, *TextProperties or *GroupProperties. Nodes of an
// unknown type decode with nil Properties and are skipped on load.
type LayerNode struct {
	ID         string
	Type       psx.LayerKind
	Name       string
	Properties Properties
	ImagePath  string      // raster layers with pixels only
	Children   []LayerNode // groups only
}

// Properties is implemented by the per-variant property schemas.
type Properties interface {
	Common() *CommonProperties
}

// CommonProperties are the fields shared by all layer variants.
// Effects, ClippingMask and the mask fields are omitted when unset.
type CommonProperties struct {
	Visible      bool              `json:"visible"`
	Opacity      float64           `json:"opacity"`
	BlendMode    psx.BlendMode     `json:"blendMode"`
	Position     psx.Point         `json:"position"`
	Locked       bool              `json:"locked"`
	Effects      []psx.LayerEffect `json:"effects,omitempty"`
	ClippingMask bool              `json:"clippingMask,omitempty"`

	*MaskProperties
}

// Common implements [Properties].
func (c *CommonProperties) Common() *CommonProperties { return c }

// MaskProperties records a layer mask. MaskPath is empty for a mask with
// no area, which has no blob.
type MaskProperties struct {
	MaskPath    string    `json:"maskPath,omitempty"`
	MaskWidth   int       `json:"maskWidth"`
	MaskHeight  int       `json:"maskHeight"`
	MaskOffset  psx.Point `json:"maskOffset"`
	MaskEnabled bool      `json:"maskEnabled"`
}

// RasterProperties is the schema of raster layers.
type RasterProperties struct {
	CommonProperties
	Bounds *psx.Rect `json:"bounds,omitempty"`
}

// TextProperties is the schema of text layers.
type TextProperties struct {
	CommonProperties
	Text          string        `json:"text"`
	FontFamily    string        `json:"fontFamily"`
	FontSize      float64       `json:"fontSize"`
	Color         string        `json:"color"`
	Bold          bool          `json:"bold"`
	Italic        bool          `json:"italic"`
	Alignment     psx.TextAlign `json:"alignment"`
	LineHeight    float64       `json:"lineHeight"`
	LetterSpacing float64       `json:"letterSpacing"`
	TextBounds    psx.Rect      `json:"textBounds"`
}

// GroupProperties is the schema of layer groups.
type GroupProperties struct {
	CommonProperties
	Expanded bool `json:"expanded"`
}

// layerNodeJSON is the wire shape of LayerNode.
type layerNodeJSON struct {
	ID         string          `json:"id"`
	Type       psx.LayerKind   `json:"type"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties"`
	ImagePath  string          `json:"imagePath,omitempty"`
	Children   []LayerNode     `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n LayerNode) MarshalJSON() ([]byte, error) {
	props := json.RawMessage("{}")
	if n.Properties != nil {
		raw, err := json.Marshal(n.Properties)
		if err != nil {
			return nil, err
		}
		props = raw
	}
	return json.Marshal(layerNodeJSON{
		ID:         n.ID,
		Type:       n.Type,
		Name:       n.Name,
		Properties: props,
		ImagePath:  n.ImagePath,
		Children:   n.Children,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Properties missing from the
// input keep the defaults of the matching layer factory.
func (n *LayerNode) UnmarshalJSON(data []byte) error {
	var w layerNodeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var props Properties
	switch w.Type {
	case psx.KindRaster:
		props = &RasterProperties{CommonProperties: defaultCommon()}
	case psx.KindText:
		props = defaultTextProperties()
	case psx.KindGroup:
		props = &GroupProperties{CommonProperties: defaultCommon(), Expanded: true}
	}
	if props != nil && len(w.Properties) > 0 && string(w.Properties) != "null" {
		if err := json.Unmarshal(w.Properties, props); err != nil {
			return fmt.Errorf("layer %s properties: %w", w.ID, err)
		}
	}

	*n = LayerNode{
		ID:         w.ID,
		Type:       w.Type,
		Name:       w.Name,
		Properties: props,
		ImagePath:  w.ImagePath,
		Children:   w.Children,
	}
	return nil
}

func defaultCommon() CommonProperties {
	return CommonProperties{
		Visible:   true,
		Opacity:   1.0,
		BlendMode: psx.BlendNormal,
	}
}

func defaultTextProperties() *TextProperties {
	return &TextProperties{
		CommonProperties: defaultCommon(),
		FontFamily:       psx.DefaultFontFamily,
		FontSize:         psx.DefaultFontSize,
		Color:            psx.DefaultTextColor,
		Alignment:        psx.AlignLeft,
		LineHeight:       psx.DefaultLineHeight,
	}
}

func layerImagePath(id string) string { return layersDir + id + ".png" }
func maskImagePath(id string) string  { return masksDir + id + ".png" }
