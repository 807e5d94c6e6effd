package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeWindow replays one slice of events per PollEvents call and requests a
// close once the script runs out.
type fakeWindow struct {
	log        *[]string
	cb         func(Event)
	ticks      [][]Event
	polls      int
	w, h       int
	notCurrent bool
	destroyed  bool
}

func (f *fakeWindow) PollEvents() {
	if f.polls < len(f.ticks) {
		for _, ev := range f.ticks[f.polls] {
			f.cb(ev)
		}
	} else {
		f.cb(EventCloseRequested{})
	}
	f.polls++
}

func (f *fakeWindow) SwapBuffers()                    { *f.log = append(*f.log, "swap") }
func (f *fakeWindow) FramebufferSize() (int, int)     { return f.w, f.h }
func (f *fakeWindow) SetEventCallback(cb func(Event)) { f.cb = cb }
func (f *fakeWindow) IsContextCurrent() bool          { return !f.notCurrent }
func (f *fakeWindow) SetTitle(string)                 {}
func (f *fakeWindow) Destroy()                        { f.destroyed = true; *f.log = append(*f.log, "destroy") }

type fakeDevice struct {
	log *[]string
}

func (d *fakeDevice) Resize(w, h int)          { *d.log = append(*d.log, fmt.Sprintf("viewport %dx%d", w, h)) }
func (d *fakeDevice) Clear(r, g, b, a float32) { *d.log = append(*d.log, "clear") }
func (d *fakeDevice) Info() DeviceInfo         { return DeviceInfo{Vendor: "test", Renderer: "fake", Version: "4.1"} }
func (d *fakeDevice) Shutdown()                { *d.log = append(*d.log, "shutdown") }

// recorder is a plugin that logs every callback it receives.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Render(*Context) { *r.log = append(*r.log, "render "+r.name) }

type eventRecorder struct{ recorder }

func (r *eventRecorder) OnWindowEvent(ev Event) {
	*r.log = append(*r.log, fmt.Sprintf("event %s %T", r.name, ev))
}

type closingRecorder struct{ recorder }

func (r *closingRecorder) Close() error {
	*r.log = append(*r.log, "close "+r.name)
	return nil
}

func pluginOf(p Plugin) PluginFactory {
	return func(*Context) (Plugin, error) { return p, nil }
}

func newTestHost(t *testing.T, ticks ...[]Event) (*Host, *fakeWindow, *[]string) {
	t.Helper()
	log := &[]string{}
	win := &fakeWindow{log: log, ticks: ticks, w: 640, h: 480}
	h, err := NewHost(DefaultConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Device, error) { return &fakeDevice{log: log}, nil },
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	*log = (*log)[:0]
	return h, win, log
}
