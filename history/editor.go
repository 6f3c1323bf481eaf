// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"sync"

	"github.com/gogpu/psx"
)

// EditorOption configures an Editor.
type EditorOption func(*editorOptions)

type editorOptions struct {
	maxDepth int
}

// WithMaxDepth sets the undo depth of the editor's history.
// The default is DefaultMaxDepth.
func WithMaxDepth(n int) EditorOption {
	return func(o *editorOptions) {
		o.maxDepth = n
	}
}

// Editor is an editing session that owns one document and its history.
// All methods are safe for concurrent use; they serialize on one mutex, so
// long commands block other callers.
//
// Commands passed to Do must have been built for the editor's document.
type Editor struct {
	mu   sync.Mutex
	doc  *psx.Document
	hist *History
}

// NewEditor creates a session for doc. It fails with ErrInvalidDepth if
// WithMaxDepth is given a value below 1.
func NewEditor(doc *psx.Document, opts ...EditorOption) (*Editor, error) {
	o := editorOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	h, err := New(o.maxDepth)
	if err != nil {
		return nil, err
	}
	return &Editor{doc: doc, hist: h}, nil
}

// Do executes cmd and records it for undo.
func (e *Editor) Do(cmd Command) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hist.Execute(cmd)
}

// Undo reverts the most recent command and reports whether there was one.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Undo()
}

// Redo re-applies the most recently undone command and reports whether
// there was one.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Redo()
}

// View calls fn with the document while holding the session lock. fn must
// not retain the document or call back into the editor.
func (e *Editor) View(fn func(doc *psx.Document)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.doc)
}

// Timeline returns the history entries and the current index.
func (e *Editor) Timeline() (entries []string, current int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Entries(), e.hist.CurrentIndex()
}

// Clear empties the undo and redo stacks, typically after a load.
func (e *Editor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hist.Clear()
}
