package core

// WindowInfoTracker mirrors the framebuffer size. Only resize events mutate it.
type WindowInfoTracker struct {
	width, height int
}

func NewWindowInfoTracker(width, height int) *WindowInfoTracker {
	return &WindowInfoTracker{width: width, height: height}
}

func (t *WindowInfoTracker) OnWindowEvent(ev Event) {
	if r, ok := ev.(EventResize); ok {
		t.width, t.height = r.W, r.H
	}
}

func (t *WindowInfoTracker) Size() (int, int) { return t.width, t.height }

// Aspect returns width/height, or 1 while the window is minimized.
func (t *WindowInfoTracker) Aspect() float32 {
	if t.width <= 0 || t.height <= 0 {
		return 1
	}
	return float32(t.width) / float32(t.height)
}
