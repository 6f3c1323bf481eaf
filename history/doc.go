// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package history implements undo and redo for psx documents.
//
// A [History] keeps two stacks of reversible [Command] values. Executing a
// command pushes it on the undo stack and discards everything that was
// undone before; undo and redo move commands between the stacks.
//
//	h, _ := history.New(history.DefaultMaxDepth)
//	h.Execute(history.AddLayer(doc, layer, "", -1))
//	h.Execute(history.Rename(doc, layer.ID, "Sky"))
//	h.Undo() // layer is called "Layer" again
//
// The package ships commands for the common layer edits (see [AddLayer],
// [RemoveLayer], [Rename] and friends). Applications add their own by
// implementing Command.
//
// History and the commands perform no locking. [Editor] pairs a document
// with a history behind a mutex for hosts that edit from several
// goroutines.
package history
