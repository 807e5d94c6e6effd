package core

// Event model. Platform windows translate their native callbacks into these.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new framebuffer size in device pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

// EventMouseMove is the absolute cursor position.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseDelta is the pointer motion accumulated since the previous sample.
type EventMouseDelta struct{ DX, DY float64 }

func (EventMouseDelta) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
