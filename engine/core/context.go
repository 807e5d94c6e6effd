package core

import "sync/atomic"

// Window abstraction. The window owns the graphics context.
type Window interface {
	PollEvents()
	SwapBuffers()
	FramebufferSize() (int, int)
	SetEventCallback(cb func(Event))
	IsContextCurrent() bool
	SetTitle(title string)
	Destroy()
}

// Device is the thin facade over the graphics API state the host itself
// touches. Backends are constructed with the context already current.
type Device interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Info() DeviceInfo
	Shutdown()
}

type DeviceInfo struct {
	Vendor   string
	Renderer string
	Version  string
}

// One context per process.
var contextLive atomic.Bool

func claimContext() error {
	if !contextLive.CompareAndSwap(false, true) {
		return ErrContextInUse
	}
	return nil
}

func releaseContext() { contextLive.Store(false) }

// Context is the handle to the live graphics context handed to plugins at
// construction and on every render. It is only valid on the host thread and
// only for the lifetime of the Host that created it.
type Context struct {
	dev          Device
	services     *Locator
	requestClose func()
}

func (c *Context) Device() Device     { return c.dev }
func (c *Context) Services() *Locator { return c.services }
func (c *Context) Info() DeviceInfo   { return c.dev.Info() }

// RequestClose queues a close request. The current frame still completes.
func (c *Context) RequestClose() { c.requestClose() }
