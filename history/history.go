// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"errors"

	"github.com/gogpu/psx"
)

// DefaultMaxDepth is the undo depth used by NewEditor unless WithMaxDepth
// is given.
const DefaultMaxDepth = 50

// ErrInvalidDepth is returned by New for a max depth below 1.
var ErrInvalidDepth = errors.New("history: max depth must be at least 1")

// Command is a reversible edit.
//
// Commands are infallible by contract: History does not recover from a
// panic in Execute or Undo, and the stacks may be inconsistent afterwards.
// Execute is called again on redo, so it must be repeatable after Undo.
type Command interface {
	// Description is a short label for menus, e.g. "Rename Layer".
	Description() string
	Execute()
	Undo()
}

// History is an undo/redo engine over two stacks of commands.
// The zero value is not usable; create one with New.
type History struct {
	maxDepth int
	undo     []Command
	redo     []Command
}

// New creates an empty history that retains at most maxDepth undoable
// commands.
func New(maxDepth int) (*History, error) {
	if maxDepth < 1 {
		return nil, ErrInvalidDepth
	}
	return &History{maxDepth: maxDepth}, nil
}

// MaxDepth returns the undo depth limit.
func (h *History) MaxDepth() int {
	return h.maxDepth
}

// Execute runs cmd, pushes it on the undo stack and discards the redo
// stack. The oldest entry is dropped once more than MaxDepth commands are
// held.
func (h *History) Execute(cmd Command) {
	cmd.Execute()
	h.undo = append(h.undo, cmd)
	clear(h.redo)
	h.redo = h.redo[:0]
	if len(h.undo) > h.maxDepth {
		n := copy(h.undo, h.undo[len(h.undo)-h.maxDepth:])
		clear(h.undo[n:])
		h.undo = h.undo[:n]
	}
	psx.Logger().Debug("history: execute", "command", cmd.Description(), "depth", len(h.undo))
}

// Undo reverts the most recent command. It reports false and does nothing
// if there is nothing to undo.
func (h *History) Undo() bool {
	cmd, ok := pop(&h.undo)
	if !ok {
		return false
	}
	cmd.Undo()
	h.redo = append(h.redo, cmd)
	psx.Logger().Debug("history: undo", "command", cmd.Description())
	return true
}

// Redo re-executes the most recently undone command. It reports false and
// does nothing if there is nothing to redo.
func (h *History) Redo() bool {
	cmd, ok := pop(&h.redo)
	if !ok {
		return false
	}
	cmd.Execute()
	h.undo = append(h.undo, cmd)
	psx.Logger().Debug("history: redo", "command", cmd.Description())
	return true
}

// Clear empties both stacks.
func (h *History) Clear() {
	clear(h.undo)
	clear(h.redo)
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDescription returns the description of the command Undo would
// revert, or "" if there is none.
func (h *History) UndoDescription() string {
	return topDescription(h.undo)
}

// RedoDescription returns the description of the command Redo would
// re-execute, or "" if there is none.
func (h *History) RedoDescription() string {
	return topDescription(h.redo)
}

// Entries returns the timeline of descriptions in chronological order:
// the undo stack from oldest to newest, then the undone commands in the
// order Redo would replay them.
func (h *History) Entries() []string {
	out := make([]string, 0, len(h.undo)+len(h.redo))
	for _, cmd := range h.undo {
		out = append(out, cmd.Description())
	}
	for i := len(h.redo) - 1; i >= 0; i-- {
		out = append(out, h.redo[i].Description())
	}
	return out
}

// CurrentIndex returns the position in Entries after the last applied
// command, which is the undo stack length.
func (h *History) CurrentIndex() int {
	return len(h.undo)
}

func pop(stack *[]Command) (Command, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	cmd := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return cmd, true
}

func topDescription(stack []Command) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Description()
}
