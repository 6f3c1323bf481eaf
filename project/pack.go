// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gogpu/psx"
)

// Serialize encodes doc as a .psxp archive: manifest.json followed by the
// PNG blobs in path order. The manifest is deflated; PNG blobs are
// already compressed and are stored as-is.
func Serialize(doc *psx.Document, opts ...Option) ([]byte, error) {
	pf, err := ToProjectFile(doc, opts...)
	if err != nil {
		return nil, err
	}
	return Pack(pf)
}

// Pack archives an unpacked project file.
func Pack(pf *File) ([]byte, error) {
	manifest, err := json.MarshalIndent(pf.Manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("project: encode manifest: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := pf.Manifest.ModifiedAt

	if err := writeEntry(zw, ManifestName, zip.Deflate, modified, manifest); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(pf.Files))
	for p := range pf.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if err := writeEntry(zw, p, zip.Store, modified, pf.Files[p]); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("project: finish archive: %w", err)
	}

	psx.Logger().Debug("project: packed", "entries", len(paths)+1, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, method uint16, modified time.Time, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   method,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("project: add %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("project: write %s: %w", name, err)
	}
	return nil
}

// Deserialize decodes a .psxp archive into a new document.
//
// Bytes that are not a valid ZIP archive fail with the error reported by
// archive/zip, unwrapped. An archive without manifest.json fails with
// ErrMissingManifest.
func Deserialize(data []byte, opts ...Option) (*psx.Document, error) {
	pf, err := Unpack(data)
	if err != nil {
		return nil, err
	}
	return FromProjectFile(pf, opts...)
}

// Unpack reads an archive into its unpacked form without decoding blobs.
func Unpack(data []byte) (*File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var manifest []byte
	var found bool
	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		body, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		if f.Name == ManifestName {
			manifest, found = body, true
			continue
		}
		files[f.Name] = body
	}
	if !found {
		return nil, ErrMissingManifest
	}

	pf := &File{Files: files}
	if err := json.Unmarshal(manifest, &pf.Manifest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return pf, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
