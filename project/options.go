// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import (
	"runtime"

	"github.com/gogpu/psx/internal/pngcodec"
)

// CompressionLevel selects the deflate effort used for PNG blobs.
type CompressionLevel = pngcodec.CompressionLevel

// Compression levels.
const (
	DefaultCompression = pngcodec.DefaultCompression
	NoCompression      = pngcodec.NoCompression
	BestSpeed          = pngcodec.BestSpeed
	BestCompression    = pngcodec.BestCompression
)

// Option configures saving and loading.
//
// Example:
//
//	data, err := project.Serialize(doc,
//	    project.WithCompressionLevel(project.BestSpeed),
//	    project.WithConcurrency(2),
//	)
type Option func(*options)

// options holds optional configuration for Serialize and Deserialize.
type options struct {
	compression CompressionLevel
	concurrency int
	name        string
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		compression: DefaultCompression,
		concurrency: runtime.GOMAXPROCS(0),
		name:        DefaultDocumentName,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	return o
}

// WithCompressionLevel sets the deflate level for PNG blobs.
// The default is DefaultCompression.
func WithCompressionLevel(level CompressionLevel) Option {
	return func(o *options) {
		o.compression = level
	}
}

// WithConcurrency bounds the number of PNG blobs encoded or decoded at
// once. The default is GOMAXPROCS; values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithName sets the name of documents produced by loading.
// The default is DefaultDocumentName.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
