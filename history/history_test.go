// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"slices"
	"testing"
)

// recorder is a command that logs its calls.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Description() string { return r.name }
func (r *recorder) Execute()            { *r.log = append(*r.log, "+"+r.name) }
func (r *recorder) Undo()               { *r.log = append(*r.log, "-"+r.name) }

func newHistory(t *testing.T, depth int) *History {
	t.Helper()
	h, err := New(depth)
	if err != nil {
		t.Fatalf("New(%d) error = %v", depth, err)
	}
	return h
}

func TestNewInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -1, -50} {
		if _, err := New(depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("New(%d) error = %v, want ErrInvalidDepth", depth, err)
		}
	}
	h := newHistory(t, 1)
	if h.MaxDepth() != 1 {
		t.Errorf("MaxDepth() = %d, want 1", h.MaxDepth())
	}
}

func TestEmptyHistory(t *testing.T) {
	h := newHistory(t, DefaultMaxDepth)
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports undo/redo available")
	}
	if h.Undo() || h.Redo() {
		t.Error("Undo/Redo on empty history reported true")
	}
	if h.UndoDescription() != "" || h.RedoDescription() != "" {
		t.Error("empty history has descriptions")
	}
	if len(h.Entries()) != 0 || h.CurrentIndex() != 0 {
		t.Errorf("Entries() = %v, CurrentIndex() = %d", h.Entries(), h.CurrentIndex())
	}
}

func TestExecuteUndoRedo(t *testing.T) {
	var log []string
	h := newHistory(t, DefaultMaxDepth)
	a := &recorder{name: "A", log: &log}
	b := &recorder{name: "B", log: &log}

	h.Execute(a)
	h.Execute(b)
	if got := h.UndoDescription(); got != "B" {
		t.Errorf("UndoDescription() = %q, want B", got)
	}

	h.Undo()
	if got := h.RedoDescription(); got != "B" {
		t.Errorf("RedoDescription() = %q, want B", got)
	}
	if got := h.UndoDescription(); got != "A" {
		t.Errorf("UndoDescription() = %q, want A", got)
	}
	h.Redo()
	h.Undo()
	h.Undo()

	want := []string{"+A", "+B", "-B", "+B", "-B", "-A"}
	if !slices.Equal(log, want) {
		t.Errorf("calls = %v, want %v", log, want)
	}
	if h.CanUndo() || !h.CanRedo() {
		t.Errorf("CanUndo=%v CanRedo=%v, want false/true", h.CanUndo(), h.CanRedo())
	}
	if got := h.Entries(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Entries() = %v, want [A B]", got)
	}
	if h.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", h.CurrentIndex())
	}
}

func TestExecuteDiscardsRedoBranch(t *testing.T) {
	var log []string
	h := newHistory(t, DefaultMaxDepth)
	for _, name := range []string{"A", "B", "C"} {
		h.Execute(&recorder{name: name, log: &log})
	}
	h.Undo()
	h.Undo()

	if got := h.Entries(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Entries() after undos = %v, want [A B C]", got)
	}
	if h.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", h.CurrentIndex())
	}

	h.Execute(&recorder{name: "D", log: &log})
	if got := h.Entries(); !slices.Equal(got, []string{"A", "D"}) {
		t.Errorf("Entries() = %v, want [A D]", got)
	}
	if h.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", h.CurrentIndex())
	}
	if h.CanRedo() || h.Redo() {
		t.Error("redo branch survived Execute")
	}
}

func TestMaxDepthEviction(t *testing.T) {
	tests := []struct {
		depth, executed int
		want            []string
	}{
		{depth: 1, executed: 3, want: []string{"c"}},
		{depth: 3, executed: 3, want: []string{"a", "b", "c"}},
		{depth: 3, executed: 4, want: []string{"b", "c", "d"}},
		{depth: 2, executed: 5, want: []string{"d", "e"}},
	}
	for _, tt := range tests {
		var log []string
		h := newHistory(t, tt.depth)
		for i := range tt.executed {
			h.Execute(&recorder{name: string(rune('a' + i)), log: &log})
		}
		if got := h.Entries(); !slices.Equal(got, tt.want) {
			t.Errorf("depth %d, %d executed: Entries() = %v, want %v", tt.depth, tt.executed, got, tt.want)
		}
		for h.Undo() {
		}
		if len(log) != tt.executed+len(tt.want) {
			t.Errorf("depth %d: %d calls, want %d", tt.depth, len(log), tt.executed+len(tt.want))
		}
	}
}

func TestDefaultDepthRetainsNewest(t *testing.T) {
	var log []string
	h := newHistory(t, DefaultMaxDepth)
	for i := range DefaultMaxDepth + 1 {
		h.Execute(&recorder{name: string(rune('A' + i)), log: &log})
	}
	entries := h.Entries()
	if len(entries) != DefaultMaxDepth {
		t.Fatalf("len(Entries()) = %d, want %d", len(entries), DefaultMaxDepth)
	}
	if entries[0] != "B" {
		t.Errorf("oldest entry = %q, want B", entries[0])
	}
}

func TestClear(t *testing.T) {
	var log []string
	h := newHistory(t, DefaultMaxDepth)
	h.Execute(&recorder{name: "A", log: &log})
	h.Execute(&recorder{name: "B", log: &log})
	h.Undo()
	h.Clear()
	if h.CanUndo() || h.CanRedo() || len(h.Entries()) != 0 {
		t.Error("Clear() left entries behind")
	}
	if len(log) != 3 {
		t.Errorf("Clear() invoked commands: %v", log)
	}
}

func TestPanickingCommandPropagates(t *testing.T) {
	h := newHistory(t, DefaultMaxDepth)
	defer func() {
		if recover() == nil {
			t.Error("panic was swallowed")
		}
	}()
	h.Execute(panicker{})
}

type panicker struct{}

func (panicker) Description() string { return "boom" }
func (panicker) Execute()            { panic("boom") }
func (panicker) Undo()               {}
