// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/psx"
)

// Save writes doc to path. The archive is written to a temporary file in
// the same directory and renamed over path, so an existing project is
// never left half-written. On success doc.FilePath is set to path and
// doc.Dirty is cleared.
func Save(path string, doc *psx.Document, opts ...Option) error {
	data, err := Serialize(doc, opts...)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("project: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("project: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("project: replace %s: %w", path, err)
	}

	doc.FilePath = path
	doc.Dirty = false
	psx.Logger().Debug("project: saved", "path", path, "bytes", len(data))
	return nil
}

// Open reads the project at path. The document is named after the file
// (without extension) unless WithName is given, and its FilePath is set.
func Open(path string, opts ...Option) (*psx.Document, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: open: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	opts = append([]Option{WithName(name)}, opts...)
	doc, err := Deserialize(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("project: open %s: %w", path, err)
	}
	doc.FilePath = path
	return doc, nil
}
