package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"

	"github.com/hubastard/lumen/engine/profiler"
)

// Host owns the window, the graphics context and every registered component,
// and runs the frame loop on the calling thread.
//
// Per tick: poll events, route them (window tracker, controllers, plugins),
// clear, render plugins in registration order, advance the clock and the
// updaters, present.
type Host struct {
	cfg         Config
	win         Window
	ctx         *Context
	clock       *Clock
	tracker     *WindowInfoTracker
	controllers []WindowEventHandler
	ctrlNames   []string
	plugins     PluginStack

	queue   []Event
	closing bool
	closed  bool
	frames  uint64
	err     error
}

// NewHost creates the window and its context and makes the host the single
// owner of that context. Any failure here is fatal for the application.
func NewHost(cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) (*Host, error) {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := claimContext(); err != nil {
		return nil, err
	}

	win, err := newWindow(cfg)
	if err != nil {
		releaseContext()
		return nil, fmt.Errorf("create window (OpenGL %d.%d): %w", cfg.GLMajor, cfg.GLMinor, err)
	}
	if !win.IsContextCurrent() {
		win.Destroy()
		releaseContext()
		return nil, ErrContextNotCurrent
	}

	dev, err := newDevice(win, cfg)
	if err != nil {
		win.Destroy()
		releaseContext()
		return nil, fmt.Errorf("create device: %w", err)
	}

	w, h := win.FramebufferSize()
	dev.Resize(w, h)

	host := &Host{
		cfg:     cfg,
		win:     win,
		clock:   NewClock(),
		tracker: NewWindowInfoTracker(w, h),
	}
	host.ctx = &Context{dev: dev, services: NewLocator(), requestClose: host.requestClose}
	Provide(host.ctx.services, host.clock)
	Provide(host.ctx.services, host.tracker)
	win.SetEventCallback(host.enqueue)

	info := dev.Info()
	slog.Info("graphics context ready",
		"vendor", info.Vendor, "renderer", info.Renderer, "version", info.Version,
		"width", w, "height", h)
	return host, nil
}

func (h *Host) Context() *Context              { return h.ctx }
func (h *Host) Services() *Locator             { return h.ctx.services }
func (h *Host) Clock() *Clock                  { return h.clock }
func (h *Host) WindowInfo() *WindowInfoTracker { return h.tracker }

// Frames is the number of frames presented so far.
func (h *Host) Frames() uint64 { return h.frames }

// WithPlugin registers a plugin and returns the host for chaining. A failed
// registration is kept and reported by Run.
func (h *Host) WithPlugin(factory PluginFactory) *Host {
	_ = h.Register(factory)
	return h
}

// WithController adds an input-aware component. Controllers see every routed
// event after the window tracker and before the plugins, and are updated
// each frame when they implement Updater.
func (h *Host) WithController(c WindowEventHandler) *Host {
	h.controllers = append(h.controllers, c)
	h.ctrlNames = append(h.ctrlNames, fmt.Sprintf("%T", c))
	return h
}

// Register runs factory with the context current and appends the result to
// the render order. An error or panic from the factory poisons the host.
func (h *Host) Register(factory PluginFactory) error {
	if h.closed {
		return ErrHostClosed
	}
	if h.err != nil {
		return h.err
	}

	idx := h.plugins.Len()
	var (
		p    Plugin
		ferr error
	)
	err := h.guard("register", idx, "factory", func() { p, ferr = factory(h.ctx) })
	if err == nil {
		err = ferr
	}
	if err == nil && p == nil {
		err = ErrNilPlugin
	}
	if err != nil {
		h.err = fmt.Errorf("register plugin #%d: %w", idx, err)
		slog.Error("plugin registration failed", "index", idx, "err", err)
		return h.err
	}

	h.plugins.Push(p)
	slog.Debug("plugin registered", "index", idx, "plugin", h.plugins.Name(idx))
	return nil
}

// Run blocks until a close request is routed or a component fails. It
// returns nil on a requested close.
func (h *Host) Run() error {
	if h.closed {
		return ErrHostClosed
	}
	if h.err != nil {
		return h.err
	}

	for {
		h.win.PollEvents()
		if err := h.route(); err != nil {
			return h.fail(err)
		}
		if h.closing {
			slog.Info("host exit", "frames", h.frames)
			return nil
		}
		if err := h.frame(); err != nil {
			return h.fail(err)
		}
	}
}

func (h *Host) fail(err error) error {
	h.err = err
	slog.Error("host loop aborted", "frame", h.frames, "err", err)
	return err
}

func (h *Host) enqueue(ev Event) { h.queue = append(h.queue, ev) }

func (h *Host) requestClose() { h.enqueue(EventCloseRequested{}) }

// route drains the queue. Handlers may enqueue more events while it runs;
// those are routed in the same pass.
func (h *Host) route() error {
	defer func() { h.queue = h.queue[:0] }()
	for i := 0; i < len(h.queue); i++ {
		ev := h.queue[i]
		if _, ok := ev.(EventCloseRequested); ok {
			h.closing = true
			return nil
		}
		if err := h.dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) dispatch(ev Event) error {
	h.tracker.OnWindowEvent(ev)
	if r, ok := ev.(EventResize); ok && r.W > 0 && r.H > 0 {
		h.ctx.dev.Resize(r.W, r.H)
	}

	for i, c := range h.controllers {
		if err := h.guard("event", i, h.ctrlNames[i], func() { c.OnWindowEvent(ev) }); err != nil {
			return err
		}
	}
	for i := 0; i < h.plugins.Len(); i++ {
		eh, ok := h.plugins.At(i).(WindowEventHandler)
		if !ok {
			continue
		}
		if err := h.guard("event", i, h.plugins.Name(i), func() { eh.OnWindowEvent(ev) }); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) frame() error {
	defer profiler.Start("Host.Frame")()

	c := h.cfg.ClearColor
	h.ctx.dev.Clear(c[0], c[1], c[2], c[3])

	for i := 0; i < h.plugins.Len(); i++ {
		p, name := h.plugins.At(i), h.plugins.Name(i)
		err := h.guard("render", i, name, func() {
			defer profiler.Start(name)()
			p.Render(h.ctx)
		})
		if err != nil {
			return err
		}
	}

	h.clock.Update()
	dt := h.clock.DeltaTime()
	for i, c := range h.controllers {
		if u, ok := c.(Updater); ok {
			if err := h.guard("update", i, h.ctrlNames[i], func() { u.Update(dt) }); err != nil {
				return err
			}
		}
	}
	for i := 0; i < h.plugins.Len(); i++ {
		if u, ok := h.plugins.At(i).(Updater); ok {
			if err := h.guard("update", i, h.plugins.Name(i), func() { u.Update(dt) }); err != nil {
				return err
			}
		}
	}

	h.win.SwapBuffers()
	h.frames++
	return nil
}

// guard runs fn and turns a panic into a *PanicError.
func (h *Host) guard(phase string, idx int, name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Phase: phase, Index: idx, Plugin: name, Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

// Close releases plugins in reverse registration order, then the device and
// the window, and gives the context slot back. Calling it again is a no-op.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	var errs []error
	h.plugins.ForEachReverse(func(i int, p Plugin) bool {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s #%d: %w", h.plugins.Name(i), i, err))
			}
		}
		return false
	})
	h.ctx.dev.Shutdown()
	h.win.Destroy()
	releaseContext()
	return errors.Join(errs...)
}
