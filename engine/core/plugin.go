package core

import "fmt"

// Plugin is a render component owned by the Host. Render is called once per
// frame, after the clear, in registration order, with the context current.
//
// A plugin may also implement WindowEventHandler, Updater and io.Closer.
// Close is where GPU resources created by the factory are released.
type Plugin interface {
	Render(ctx *Context)
}

// PluginFactory builds a plugin while the context is current.
type PluginFactory func(ctx *Context) (Plugin, error)

type WindowEventHandler interface {
	OnWindowEvent(ev Event)
}

// Updater is implemented by stateful components that advance once per frame
// by the clock delta (seconds).
type Updater interface {
	Update(dt float32)
}

// PluginFunc adapts a plain function to Plugin.
type PluginFunc func(ctx *Context)

func (f PluginFunc) Render(ctx *Context) { f(ctx) }

// PluginStack keeps plugins in registration order.
type PluginStack struct {
	list  []Plugin
	names []string
}

func (ps *PluginStack) Push(p Plugin) {
	ps.list = append(ps.list, p)
	ps.names = append(ps.names, fmt.Sprintf("%T", p))
}

func (ps *PluginStack) Len() int          { return len(ps.list) }
func (ps *PluginStack) At(i int) Plugin   { return ps.list[i] }
func (ps *PluginStack) Name(i int) string { return ps.names[i] }

func (ps *PluginStack) ForEach(f func(i int, p Plugin)) {
	for i, p := range ps.list {
		f(i, p)
	}
}

// ForEachReverse walks from the most recently registered plugin; returning
// true from f stops the walk.
func (ps *PluginStack) ForEachReverse(f func(i int, p Plugin) bool) {
	for i := len(ps.list) - 1; i >= 0; i-- {
		if stop := f(i, ps.list[i]); stop {
			break
		}
	}
}
