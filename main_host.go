//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"ember/app"
	"ember/hal"
	"ember/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var (
		term       bool
		dump       string
		configPath string
		width      int
		height     int
		scale      int
		untracked  bool
		statsEvery int
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&term, "term", false, "Render into the terminal instead of a window.")
	flag.StringVar(&dump, "dump", "", "Write the framebuffer to this PNG file after a headless run.")
	flag.StringVar(&configPath, "config", "", "YAML panel config.")
	flag.IntVar(&width, "width", 320, "Panel width in pixels.")
	flag.IntVar(&height, "height", 320, "Panel height in pixels.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.BoolVar(&untracked, "untracked", false, "Redraw every widget every frame.")
	flag.IntVar(&statsEvery, "stats", 0, "Log frame statistics every N frames (0 = off).")
	flag.Parse()

	pcfg := app.DefaultConfig()
	if configPath != "" {
		var err error
		pcfg, err = app.LoadConfig(configPath)
		if err != nil {
			fatal(err)
		}
	}
	if untracked {
		pcfg.Untracked = true
	}
	if statsEvery > 0 {
		pcfg.StatsEvery = statsEvery
	}

	h := hal.NewWithSize(width, height)
	h.Logger().WriteLineString("ember " + buildinfo.String())
	var a *app.App
	newApp := func(h hal.HAL) func() error {
		a = app.New(h, pcfg)
		return a.Step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, h, newApp, cfg)
	case term:
		err = hal.RunTerminal(ctx, h, newApp, hal.TerminalConfig{Hz: cfg.Hz})
	default:
		err = hal.RunWindow(h, newApp, scale)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}

	if dump != "" {
		if err := writePNG(dump, h); err != nil {
			fatal(err)
		}
	}
	if a != nil && a.Halted() != nil {
		fatal(a.Halted())
	}
}

func writePNG(path string, h hal.HAL) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hal.Snapshot(h.Display().Framebuffer())); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
