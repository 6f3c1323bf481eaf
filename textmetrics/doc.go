// Package textmetrics measures the bounds of psx text layers.
//
// Lines are shaped with the HarfBuzz port in go-text/typesetting, so
// kerning and ligatures count toward the width. Fonts are looked up by
// the layer's family and style among faces added with
// [Measurer.Register]; unknown families are measured with the Go fonts
// from golang.org/x/image/font/gofont, which gives stable metrics on every
// platform.
//
//	layer := psx.NewTextLayer("Title", "Hello")
//	layer.TextBounds = textmetrics.Measure(layer)
package textmetrics
