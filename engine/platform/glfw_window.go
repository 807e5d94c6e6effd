package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/lumen/engine/core"
)

// GLFWWindow implements core.Window and pushes translated events to the host.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)

	// Last cursor position, for pointer deltas.
	lastX, lastY float64
	haveCursor   bool
}

// NewGLFWWindow creates the window with exactly the GL version and profile in
// cfg and leaves its context current. Must be called on the main thread.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		// Mac requires the forward-compatible flag for core profiles.
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win}
	if cfg.CaptureCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.cursorMoved(x, y)
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{
			Key:    k,
			Down:   action != glfw.Release,
			Repeat: action == glfw.Repeat,
			Mods:   translateMods(mods),
		})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		// Re-anchor so the first sample after refocus is not a jump.
		gw.haveCursor = false
	})

	w, h := win.GetFramebufferSize()
	slog.Debug("window created", "title", cfg.Title, "width", w, "height", h,
		"gl", fmt.Sprintf("%d.%d", cfg.GLMajor, cfg.GLMinor), "core", cfg.CoreProfile)
	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// cursorMoved emits the absolute position and, from the second sample on,
// the delta since the previous one.
func (g *GLFWWindow) cursorMoved(x, y float64) {
	g.emit(core.EventMouseMove{X: x, Y: y})
	if g.haveCursor {
		if dx, dy := x-g.lastX, y-g.lastY; dx != 0 || dy != 0 {
			g.emit(core.EventMouseDelta{DX: dx, DY: dy})
		}
	}
	g.lastX, g.lastY, g.haveCursor = x, y, true
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) IsContextCurrent() bool               { return glfw.GetCurrentContext() == g.w }

// Destroy closes the window and terminates GLFW; the context goes with it.
func (g *GLFWWindow) Destroy() {
	if g.w == nil {
		return
	}
	g.w.Destroy()
	g.w = nil
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyQ:
		return core.KeyQ
	case glfw.KeyE:
		return core.KeyE
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
