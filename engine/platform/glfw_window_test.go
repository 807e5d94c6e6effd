package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/lumen/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestCursorDeltas(t *testing.T) {
	var got []core.Event
	g := &GLFWWindow{onEv: func(ev core.Event) { got = append(got, ev) }}

	g.cursorMoved(10, 20)
	g.cursorMoved(13, 18)
	g.cursorMoved(13, 18)

	assert.Equal(t, []core.Event{
		core.EventMouseMove{X: 10, Y: 20},
		core.EventMouseMove{X: 13, Y: 18},
		core.EventMouseDelta{DX: 3, DY: -2},
		core.EventMouseMove{X: 13, Y: 18},
	}, got)
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyW, translateKey(glfw.KeyW))
	assert.Equal(t, core.KeyLeft, translateKey(glfw.KeyLeft))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyF12))
}

func TestTranslateMods(t *testing.T) {
	assert.Equal(t, core.ModNone, translateMods(0))
	assert.Equal(t, core.ModCtrl|core.ModShift, translateMods(glfw.ModControl|glfw.ModShift))
}

func TestEmitWithoutCallback(t *testing.T) {
	g := &GLFWWindow{}
	assert.NotPanics(t, func() { g.emit(core.EventCloseRequested{}) })
}
