package main

import (
	"log/slog"
	"os"

	"github.com/hubastard/lumen/engine/core"
	"github.com/hubastard/lumen/engine/profiler"
)

// hotkeysPlugin: Escape closes the host, Ctrl+P dumps the profiler.
type hotkeysPlugin struct {
	ctx *core.Context
}

func newHotkeysPlugin(ctx *core.Context) (core.Plugin, error) {
	return &hotkeysPlugin{ctx: ctx}, nil
}

func (h *hotkeysPlugin) Render(*core.Context) {}

func (h *hotkeysPlugin) OnWindowEvent(ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Repeat {
		return
	}
	switch {
	case k.Key == core.KeyEscape:
		h.ctx.RequestClose()
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		if path, err := profiler.Dump(os.TempDir()); err == nil {
			slog.Info("speedscope dump written", "path", path)
		} else {
			slog.Warn("profiler dump failed", "err", err)
		}
	}
}
