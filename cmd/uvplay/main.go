// Package main is the entry point for the uvplay preview tool: it plays a
// texture-atlas animation on a quad, using either per-vertex UV rewrites
// or the material's texture offset/scale.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/uvplay/internal/config"
	"github.com/Faultbox/uvplay/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Viewer.Atlas == "" || cfg.Viewer.Animation == "" {
		fmt.Fprintln(os.Stderr, "Usage: uvplay -atlas <image> -anim <description> [flags]")
		os.Exit(1)
	}

	v, err := newViewer(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
