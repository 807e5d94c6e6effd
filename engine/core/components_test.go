package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockDelta(t *testing.T) {
	now := time.Unix(100, 0)
	c := newClock(func() time.Time { return now })

	now = now.Add(500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 0.5, c.Time(), 1e-6)
	assert.InDelta(t, 0.5, c.DeltaTime(), 1e-6)

	now = now.Add(250 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 0.75, c.Time(), 1e-6)
	assert.InDelta(t, 0.25, c.DeltaTime(), 1e-6)

	c.Update()
	assert.Zero(t, c.DeltaTime())
}

func TestWindowInfoTrackerIgnoresOtherEvents(t *testing.T) {
	tr := NewWindowInfoTracker(1280, 720)
	tr.OnWindowEvent(EventKey{Key: KeyW, Down: true})
	tr.OnWindowEvent(EventMouseDelta{DX: 3})
	w, h := tr.Size()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

	tr.OnWindowEvent(EventResize{W: 100, H: 50})
	assert.Equal(t, float32(2), tr.Aspect())
}

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.Handle(EventKey{Key: KeyA, Down: false})
	in.Handle(EventMouseMove{X: 4, Y: 2})

	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyA))
	x, y := in.Mouse()
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 2.0, y)

	in.Reset()
	assert.False(t, in.IsKeyDown(KeyW))
}

type speedSetting float32

func TestLocator(t *testing.T) {
	l := NewLocator()
	_, ok := Lookup[*Clock](l)
	assert.False(t, ok)

	c := NewClock()
	Provide(l, c)
	Provide(l, speedSetting(2))
	Provide(l, speedSetting(3))

	got, ok := Lookup[*Clock](l)
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, speedSetting(3), MustLookup[speedSetting](l))
	assert.Panics(t, func() { MustLookup[*WindowInfoTracker](l) })
}

func TestPluginStack(t *testing.T) {
	var ps PluginStack
	ps.Push(PluginFunc(func(*Context) {}))
	ps.Push(&recorder{name: "x"})

	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, "core.PluginFunc", ps.Name(0))
	assert.Equal(t, "*core.recorder", ps.Name(1))

	var order []int
	ps.ForEachReverse(func(i int, _ Plugin) bool {
		order = append(order, i)
		return false
	})
	assert.Equal(t, []int{1, 0}, order)

	order = order[:0]
	ps.ForEachReverse(func(i int, _ Plugin) bool {
		order = append(order, i)
		return true
	})
	assert.Equal(t, []int{1}, order)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "demo"
width = 800
clear_color = [0.1, 0.2, 0.3, 1.0]
log_level = "debug"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1.0}, cfg.ClearColor)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.True(t, cfg.CoreProfile)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = \"wide\""), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.toml")
	require.NoError(t, os.WriteFile(old, []byte("gl_major = 2"), 0o644))
	_, err = LoadConfig(old)
	assert.ErrorContains(t, err, "OpenGL 2.1")
}

func TestValidateLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = ""
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, "INFO", lvl.String())
}
