package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/hubastard/lumen/engine/core"
)

// Device implements core.Device on OpenGL. It is created after the window
// made its context current and never changes threads.
type Device struct {
	info core.DeviceInfo
}

func NewDevice(_ core.Window, cfg core.Config) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("load OpenGL %d.%d functions: %w", cfg.GLMajor, cfg.GLMinor, err)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < int32(cfg.GLMajor) || (major == int32(cfg.GLMajor) && minor < int32(cfg.GLMinor)) {
		return nil, fmt.Errorf("OpenGL %d.%d required, driver gave %d.%d", cfg.GLMajor, cfg.GLMinor, major, minor)
	}

	d := &Device{info: core.DeviceInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}}

	gl.Enable(gl.DEPTH_TEST)
	return d, nil
}

func (d *Device) Info() core.DeviceInfo { return d.info }

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Shutdown waits for queued GL work; the objects themselves belong to the
// plugins that created them and die with the context.
func (d *Device) Shutdown() {
	gl.Finish()
}
