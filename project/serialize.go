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

// encodeJob is a pixel buffer waiting to be written as a PNG blob.
type encodeJob struct {
	path string
	img  *psx.ImageData
}

// ToProjectFile converts doc into a manifest and the PNG blobs it
// references. Raster pixels go to layers/<id>.png and masks to
// masks/<id>.png. Blobs are encoded concurrently (see WithConcurrency).
//
// It fails with a psx.ErrValidation-class error if a raster buffer or
// mask does not match its declared dimensions.
func ToProjectFile(doc *psx.Document, opts ...Option) (*File, error) {
	o := buildOptions(opts)

	var jobs []encodeJob
	tree, err := nodesFromLayers(doc.RootGroup.Children, &jobs)
	if err != nil {
		return nil, err
	}

	files, err := encodeBlobs(jobs, o)
	if err != nil {
		return nil, err
	}

	psx.Logger().Debug("project: document converted",
		"document", doc.ID, "layers", doc.LayerCount(), "blobs", len(files))

	return &File{
		Manifest: Manifest{
			Version:    FormatVersion,
			Canvas:     doc.Canvas,
			LayerTree:  tree,
			CreatedAt:  doc.CreatedAt,
			ModifiedAt: doc.ModifiedAt,
		},
		Files: files,
	}, nil
}

func nodesFromLayers(layers []psx.Layer, jobs *[]encodeJob) ([]LayerNode, error) {
	nodes := make([]LayerNode, 0, len(layers))
	for _, l := range layers {
		n, err := nodeFromLayer(l, jobs)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func nodeFromLayer(layer psx.Layer, jobs *[]encodeJob) (LayerNode, error) {
	b := layer.Base()
	n := LayerNode{ID: b.ID, Type: layer.Kind(), Name: b.Name}

	common := CommonProperties{
		Visible:      b.Visible,
		Opacity:      b.Opacity,
		BlendMode:    b.BlendMode,
		Position:     b.Position,
		Locked:       b.Locked,
		ClippingMask: b.ClippingMask,
	}
	if len(b.Effects) > 0 {
		common.Effects = b.Effects
	}
	if b.Mask != nil {
		mp, err := maskProperties(b.ID, b.Mask, jobs)
		if err != nil {
			return LayerNode{}, err
		}
		common.MaskProperties = mp
	}

	switch l := layer.(type) {
	case *psx.RasterLayer:
		bounds := l.Bounds
		n.Properties = &RasterProperties{CommonProperties: common, Bounds: &bounds}
		if img := l.ImageData; img != nil && img.Width > 0 && img.Height > 0 {
			if err := img.Validate(); err != nil {
				return LayerNode{}, fmt.Errorf("project: layer %s: %w", b.ID, err)
			}
			n.ImagePath = layerImagePath(b.ID)
			*jobs = append(*jobs, encodeJob{path: n.ImagePath, img: img})
		}

	case *psx.TextLayer:
		n.Properties = &TextProperties{
			CommonProperties: common,
			Text:             l.Text,
			FontFamily:       l.FontFamily,
			FontSize:         l.FontSize,
			Color:            l.Color,
			Bold:             l.Bold,
			Italic:           l.Italic,
			Alignment:        l.Alignment,
			LineHeight:       l.LineHeight,
			LetterSpacing:    l.LetterSpacing,
			TextBounds:       l.TextBounds,
		}

	case *psx.LayerGroup:
		n.Properties = &GroupProperties{CommonProperties: common, Expanded: l.Expanded}
		children, err := nodesFromLayers(l.Children, jobs)
		if err != nil {
			return LayerNode{}, err
		}
		n.Children = children

	default:
		return LayerNode{}, fmt.Errorf("project: layer %s: unsupported layer type %T", b.ID, layer)
	}
	return n, nil
}

// maskProperties records mask metadata and queues the mask, expanded to
// RGBA, for encoding.
func maskProperties(id string, m *psx.LayerMask, jobs *[]encodeJob) (*MaskProperties, error) {
	mp := &MaskProperties{
		MaskWidth:   m.Width,
		MaskHeight:  m.Height,
		MaskOffset:  m.Offset,
		MaskEnabled: m.Enabled,
	}
	gray, err := image.FromRaw(m.Data, m.Width, m.Height, image.FormatGray8)
	if err != nil {
		return nil, fmt.Errorf("%w: layer %s mask: %w", psx.ErrValidation, id, err)
	}
	if m.Width == 0 || m.Height == 0 {
		return mp, nil
	}
	rgba, err := gray.Convert(image.FormatRGBA8)
	if err != nil {
		return nil, fmt.Errorf("project: layer %s mask: %w", id, err)
	}
	mp.MaskPath = maskImagePath(id)
	*jobs = append(*jobs, encodeJob{
		path: mp.MaskPath,
		img:  &psx.ImageData{Data: rgba.Data(), Width: m.Width, Height: m.Height},
	})
	return mp, nil
}

// encodeBlobs PNG-encodes all jobs with at most o.concurrency in flight.
func encodeBlobs(jobs []encodeJob, o options) (map[string][]byte, error) {
	enc := pngcodec.Encoder{CompressionLevel: o.compression}
	results := make([][]byte, len(jobs))

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			data, err := enc.Encode(job.img)
			if err != nil {
				return fmt.Errorf("project: encode %s: %w", job.path, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(jobs))
	for i, job := range jobs {
		files[job.path] = results[i]
	}
	return files, nil
}
