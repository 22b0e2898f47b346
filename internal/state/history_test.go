package state

import (
	"slices"
	"testing"
)

func strokes(n int) []Drawable {
	out := make([]Drawable, n)
	for i := range out {
		out[i] = NewStroke(Point{float64(i), float64(i)}, 2)
	}
	return out
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		h := NewHistory()
		for _, d := range strokes(depth) {
			h.Commit(d)
		}
		before := h.Committed()

		if !h.Undo() {
			t.Fatalf("depth %d: Undo() = false", depth)
		}
		if !h.Redo() {
			t.Fatalf("depth %d: Redo() = false", depth)
		}
		if got := h.Committed(); !slices.Equal(got, before) {
			t.Errorf("depth %d: round trip = %v, want %v", depth, got, before)
		}
		if h.CanRedo() {
			t.Errorf("depth %d: redo stack should be empty", depth)
		}
	}
}

func TestHistoryEmptyStacksAreNoOps(t *testing.T) {
	h := NewHistory()
	rev := h.Revision()

	if h.Undo() {
		t.Error("Undo() on empty history = true")
	}
	if h.Redo() {
		t.Error("Redo() on empty history = true")
	}
	if h.Len() != 0 || len(h.Undone()) != 0 {
		t.Error("stacks should stay empty")
	}
	if h.Revision() != rev {
		t.Error("no-op undo/redo should not bump the revision")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	for _, d := range strokes(3) {
		h.Commit(d)
	}
	h.Undo()
	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear() should empty both stacks")
	}
	if !h.Bounds().Empty() {
		t.Error("cleared history should have empty bounds")
	}
}

func TestHistoryCommitAfterUndo(t *testing.T) {
	tests := []struct {
		name     string
		opts     []HistoryOption
		wantRedo int
	}{
		{"commit discards redo", nil, 0},
		{"commit keeps redo", []HistoryOption{KeepRedoOnCommit(true)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.opts...)
			if h.KeepsRedo() != (tt.wantRedo == 1) {
				t.Errorf("KeepsRedo() = %v", h.KeepsRedo())
			}
			ds := strokes(4)
			a, b, c, d := ds[0], ds[1], ds[2], ds[3]
			h.Commit(a)
			h.Commit(b)
			h.Commit(c)
			h.Undo()

			if got := h.Committed(); !slices.Equal(got, []Drawable{a, b}) {
				t.Fatalf("after undo committed = %v", got)
			}
			if got := h.Undone(); !slices.Equal(got, []Drawable{c}) {
				t.Fatalf("after undo undone = %v", got)
			}

			h.Commit(d)
			if got := h.Committed(); !slices.Equal(got, []Drawable{a, b, d}) {
				t.Errorf("committed = %v, want [a b d]", got)
			}
			if got := len(h.Undone()); got != tt.wantRedo {
				t.Errorf("len(Undone()) = %d, want %d", got, tt.wantRedo)
			}
		})
	}
}

func TestHistoryStacksStayDisjoint(t *testing.T) {
	h := NewHistory(KeepRedoOnCommit(true))
	ds := strokes(5)
	for _, d := range ds {
		h.Commit(d)
	}
	h.Undo()
	h.Undo()
	h.Redo()
	h.Undo()

	for _, u := range h.Undone() {
		if slices.Contains(h.Committed(), u) {
			t.Errorf("%v is on both stacks", u)
		}
	}
	if got := h.Len() + len(h.Undone()); got != len(ds) {
		t.Errorf("stack sizes sum to %d, want %d", got, len(ds))
	}
}

func TestHistoryRevisionAdvances(t *testing.T) {
	h := NewHistory()
	r0 := h.Revision()
	h.Commit(NewStroke(Point{}, 2))
	r1 := h.Revision()
	h.Undo()
	r2 := h.Revision()
	if !(r0 < r1 && r1 < r2) {
		t.Errorf("revisions %d, %d, %d should increase", r0, r1, r2)
	}
}
