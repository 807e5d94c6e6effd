package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"github.com/hubastard/lumen/engine/core"
	glbackend "github.com/hubastard/lumen/engine/gfx/gl"
	"github.com/hubastard/lumen/engine/platform"
	"github.com/hubastard/lumen/engine/profiler"
	"github.com/hubastard/lumen/engine/scene"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults are used when empty)")
	texturePath := flag.String("texture", "", "image for the cubes (a checkerboard when empty)")
	shaderDir := flag.String("shaders", "", "directory with cubes.vert/cubes.frag overriding the built-in shaders")
	continuous := flag.Bool("continuous", false, "move while keys are held instead of per key press")
	flag.Parse()

	if err := run(*configPath, *texturePath, *shaderDir, *continuous); err != nil {
		slog.Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, texturePath, shaderDir string, continuous bool) error {
	cfg := core.DefaultConfig()
	cfg.Title = "lumen sandbox"
	cfg.CaptureCursor = true
	if configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(configPath); err != nil {
			return err
		}
	}
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	profiler.Init(1 << 16)

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newDevice := func(win core.Window, cfg core.Config) (core.Device, error) {
		return glbackend.NewDevice(win, cfg)
	}

	host, err := core.NewHost(cfg, newWindow, newDevice)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer func() { errors.Log(host.Close()) }()

	ctrl := scene.NewCameraController(nil)
	ctrl.Continuous = continuous
	if continuous {
		ctrl.Speed = 3 // units per second
	}
	core.Provide(host.Services(), ctrl)

	host.WithController(ctrl).
		WithPlugin(newTrianglePlugin).
		WithPlugin(cubesFactory(texturePath, shaderDir)).
		WithPlugin(newHotkeysPlugin)

	return host.Run()
}
