package state

// HistoryOption configures a History.
type HistoryOption func(*History)

// KeepRedoOnCommit leaves undone drawables on the redo stack when a new one
// is committed. By default a commit discards them.
func KeepRedoOnCommit(keep bool) HistoryOption {
	return func(h *History) { h.keepRedo = keep }
}

// History is the pair of undo and redo stacks. The two stacks are disjoint
// and only ever hold committed strokes and stickers.
type History struct {
	committed []Drawable
	undone    []Drawable
	keepRedo  bool
	clock     Clock
}

func NewHistory(opts ...HistoryOption) *History {
	h := &History{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commit pushes d onto the undo stack.
func (h *History) Commit(d Drawable) {
	h.committed = append(h.committed, d)
	if !h.keepRedo {
		h.undone = nil
	}
	h.clock.Tick()
}

// Undo moves the newest committed drawable to the redo stack. It reports
// false, and changes nothing, when there is nothing to undo.
func (h *History) Undo() bool {
	d, ok := pop(&h.committed)
	if !ok {
		return false
	}
	h.undone = append(h.undone, d)
	h.clock.Tick()
	return true
}

// Redo moves the newest undone drawable back onto the undo stack.
func (h *History) Redo() bool {
	d, ok := pop(&h.undone)
	if !ok {
		return false
	}
	h.committed = append(h.committed, d)
	h.clock.Tick()
	return true
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.committed = nil
	h.undone = nil
	h.clock.Tick()
}

// Committed returns the undo stack, oldest first.
func (h *History) Committed() []Drawable { return clone(h.committed) }

// Undone returns the redo stack, oldest first.
func (h *History) Undone() []Drawable { return clone(h.undone) }

func (h *History) Len() int        { return len(h.committed) }
func (h *History) CanUndo() bool   { return len(h.committed) > 0 }
func (h *History) CanRedo() bool   { return len(h.undone) > 0 }
func (h *History) KeepsRedo() bool { return h.keepRedo }

// Revision changes every time either stack changes.
func (h *History) Revision() uint64 { return h.clock.Now() }

// Bounds covers every committed drawable.
func (h *History) Bounds() Rect {
	var r Rect
	for _, d := range h.committed {
		r = r.Union(d.Bounds())
	}
	return r
}

func pop(stack *[]Drawable) (Drawable, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	d := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return d, true
}

func clone(s []Drawable) []Drawable {
	out := make([]Drawable, len(s))
	copy(out, s)
	return out
}
