// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/psx"
	"github.com/gogpu/psx/internal/image"
	"github.com/gogpu/psx/internal/pngcodec"
)

// decodeJob is a PNG blob waiting to be decoded into a layer.
type decodeJob struct {
	path  string
	apply func(*psx.ImageData) error
}

// FromProjectFile rebuilds a document from its unpacked form.
//
// The returned document has fresh document and root group ids, no
// selection, no file path and is not dirty. Nodes of unknown type are
// skipped. Blobs are decoded concurrently (see WithConcurrency).
func FromProjectFile(f *File, opts ...Option) (*psx.Document, error) {
	o := buildOptions(opts)
	m := &f.Manifest
	if m.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.Version)
	}

	doc := psx.NewDocumentWithCanvas(o.name, m.Canvas)
	if !m.CreatedAt.IsZero() {
		doc.CreatedAt = m.CreatedAt
	}
	if !m.ModifiedAt.IsZero() {
		doc.ModifiedAt = m.ModifiedAt
	}

	var jobs []decodeJob
	if err := attachNodes(doc.RootGroup, m.LayerTree, &jobs); err != nil {
		return nil, err
	}
	if err := decodeBlobs(jobs, f.Files, o); err != nil {
		return nil, err
	}

	psx.Logger().Debug("project: document restored",
		"document", doc.ID, "layers", doc.LayerCount(), "blobs", len(jobs))
	return doc, nil
}

func attachNodes(parent *psx.LayerGroup, nodes []LayerNode, jobs *[]decodeJob) error {
	for i := range nodes {
		layer, err := layerFromNode(&nodes[i], jobs)
		if err != nil {
			return err
		}
		if layer == nil {
			continue
		}
		psx.AddLayer(parent, layer, "", -1)
	}
	return nil
}

// layerFromNode builds the layer for n and queues its blobs. It returns a
// nil layer for nodes of unknown type.
func layerFromNode(n *LayerNode, jobs *[]decodeJob) (psx.Layer, error) {
	id := n.ID
	if id == "" {
		id = psx.NewID()
	}

	var layer psx.Layer
	switch p := n.Properties.(type) {
	case *RasterProperties:
		l := &psx.RasterLayer{}
		if p.Bounds != nil {
			l.Bounds = *p.Bounds
		}
		if n.ImagePath != "" {
			path := n.ImagePath
			*jobs = append(*jobs, decodeJob{path: path, apply: func(img *psx.ImageData) error {
				l.ImageData = img
				if p.Bounds == nil {
					l.Bounds = psx.NewRect(0, 0, float64(img.Width), float64(img.Height))
				}
				return nil
			}})
		}
		layer = l

	case *TextProperties:
		layer = &psx.TextLayer{
			Text:          p.Text,
			FontFamily:    p.FontFamily,
			FontSize:      p.FontSize,
			Color:         p.Color,
			Bold:          p.Bold,
			Italic:        p.Italic,
			Alignment:     p.Alignment,
			LineHeight:    p.LineHeight,
			LetterSpacing: p.LetterSpacing,
			TextBounds:    p.TextBounds,
		}

	case *GroupProperties:
		g := &psx.LayerGroup{Children: []psx.Layer{}, Expanded: p.Expanded}
		g.ID = id // children record it as their parent
		if err := attachNodes(g, n.Children, jobs); err != nil {
			return nil, err
		}
		layer = g

	default:
		psx.Logger().Warn("project: skipping layer of unknown type", "layer", n.ID, "type", n.Type)
		return nil, nil
	}

	b := layer.Base()
	c := n.Properties.Common()
	b.ID = id
	b.Name = n.Name
	b.Visible = c.Visible
	b.SetOpacity(c.Opacity)
	b.BlendMode = c.BlendMode
	if b.BlendMode == "" {
		b.BlendMode = psx.BlendNormal
	}
	b.Position = c.Position
	b.Locked = c.Locked
	b.ClippingMask = c.ClippingMask
	if len(c.Effects) > 0 {
		b.Effects = c.Effects
	}
	if mp := c.MaskProperties; mp != nil {
		if err := queueMask(b, mp, jobs); err != nil {
			return nil, err
		}
	}
	return layer, nil
}

// queueMask attaches the mask described by mp to b. The mask pixels are
// filled in when its blob is decoded.
func queueMask(b *psx.LayerBase, mp *MaskProperties, jobs *[]decodeJob) error {
	if mp.MaskWidth < 0 || mp.MaskHeight < 0 ||
		int64(mp.MaskWidth)*int64(mp.MaskHeight) > pngcodec.MaxPixels {
		return fmt.Errorf("%w: layer %s mask is %dx%d", ErrInvalidManifest, b.ID, mp.MaskWidth, mp.MaskHeight)
	}
	m := &psx.LayerMask{
		Data:    make([]uint8, mp.MaskWidth*mp.MaskHeight),
		Width:   mp.MaskWidth,
		Height:  mp.MaskHeight,
		Offset:  mp.MaskOffset,
		Enabled: mp.MaskEnabled,
	}
	b.Mask = m
	if mp.MaskPath == "" {
		return nil
	}
	id := b.ID
	*jobs = append(*jobs, decodeJob{path: mp.MaskPath, apply: func(img *psx.ImageData) error {
		if img.Width != m.Width || img.Height != m.Height {
			return fmt.Errorf("%w: layer %s mask is %dx%d, manifest says %dx%d",
				ErrMaskSize, id, img.Width, img.Height, m.Width, m.Height)
		}
		rgba, err := image.FromRaw(img.Data, img.Width, img.Height, image.FormatRGBA8)
		if err != nil {
			return fmt.Errorf("project: layer %s mask: %w", id, err)
		}
		gray, err := rgba.Convert(image.FormatGray8)
		if err != nil {
			return fmt.Errorf("project: layer %s mask: %w", id, err)
		}
		m.Data = gray.Data()
		return nil
	}})
	return nil
}

// decodeBlobs decodes every queued blob with at most o.concurrency in
// flight. Each job writes to a distinct layer, so apply runs unlocked.
func decodeBlobs(jobs []decodeJob, files map[string][]byte, o options) error {
	for _, job := range jobs {
		if _, ok := files[job.path]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingBlob, job.path)
		}
	}

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for _, job := range jobs {
		data := files[job.path]
		g.Go(func() error {
			img, err := pngcodec.Decode(data)
			if err != nil {
				return fmt.Errorf("project: decode %s: %w", job.path, err)
			}
			return job.apply(img)
		})
	}
	return g.Wait()
}
