package main

import (
	"github.com/gogpu/psx"
	"github.com/gogpu/psx/history"
	"github.com/gogpu/psx/textmetrics"
)

const (
	demoWidth  = 800
	demoHeight = 600
)

// demoDocument builds a small poster through an editing session. Top to
// bottom:
//
//	Title       text with a drop shadow
//	Artwork     group
//	  Shade     raster clipped to Panel, multiply
//	  Panel     raster with a radial mask
//	Background  raster gradient
func demoDocument() (*psx.Document, error) {
	doc := psx.NewDocument("Demo", demoWidth, demoHeight)
	ed, err := history.NewEditor(doc)
	if err != nil {
		return nil, err
	}

	bg := psx.NewRasterLayerFromImage("Background", gradient(demoWidth, demoHeight))
	ed.Do(history.AddLayer(doc, bg, "", -1))

	art := psx.NewLayerGroup("Artwork")
	ed.Do(history.AddLayer(doc, art, "", -1))

	panel := psx.NewRasterLayerFromImage("Panel", solid(400, 300, 240, 240, 240))
	panel.Position = psx.Pt(200, 150)
	panel.Mask = radialMask(400, 300)
	ed.Do(history.AddLayer(doc, panel, art.ID, -1))

	shade := psx.NewRasterLayerFromImage("Shade", solid(400, 300, 40, 80, 160))
	shade.Position = panel.Position
	ed.Do(history.AddLayer(doc, shade, art.ID, -1))
	ed.Do(history.ToggleClippingMask(doc, shade.ID))
	ed.Do(history.SetBlendMode(doc, shade.ID, psx.BlendMultiply))
	ed.Do(history.SetOpacity(doc, shade.ID, 0.6))

	title := psx.NewTextLayer("Title", "")
	title.FontSize = 48
	title.Bold = true
	title.Color = "#ffffff"
	title.Position = psx.Pt(40, 40)
	title.Effects = []psx.LayerEffect{{
		Type: psx.EffectDropShadow, Enabled: true, Color: "#000000",
		Opacity: 0.5, Distance: 4, Angle: 135, Size: 6,
	}}
	title.TextBounds = textmetrics.Measure(title)
	ed.Do(history.AddLayer(doc, title, "", -1))
	ed.Do(history.SetText(doc, title.ID, "psx demo\nlayers, masks, clipping"))

	ed.View(func(d *psx.Document) { d.SelectedLayerID = title.ID })
	return doc, nil
}

func gradient(w, h int) *psx.ImageData {
	img := psx.NewImageData(w, h)
	for y := range h {
		t := float64(y) / float64(h)
		r := uint8(25 + t*100)
		g := uint8(50 + t*75)
		b := uint8(100 + t*50)
		for x := range w {
			img.SetRGBA(x, y, r, g, b, 255)
		}
	}
	return img
}

func solid(w, h int, r, g, b uint8) *psx.ImageData {
	img := psx.NewImageData(w, h)
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, r, g, b, 255)
		}
	}
	return img
}

func radialMask(w, h int) *psx.LayerMask {
	m := psx.NewLayerMask(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	for y := range h {
		for x := range w {
			dx, dy := (float64(x)-cx)/cx, (float64(y)-cy)/cy
			d := dx*dx + dy*dy
			if d >= 1 {
				m.Set(x, y, 0)
				continue
			}
			m.Set(x, y, uint8(255*(1-d)))
		}
	}
	return m
}
