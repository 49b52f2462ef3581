package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and tile diagnostics")
	flagAtlas   = flag.String("atlas", "", "Path to atlas texture (PNG)")
	flagAnim    = flag.String("anim", "", "Path to animation description file")
	flagIndex   = flag.Int("index", -1, "Animation selection index")
	flagFPS     = flag.Float64("fps", 0, "Playback rate in ticks per second")
	flagMode    = flag.String("mode", "", "Output mode: mesh or material")
	flagSwapXY  = flag.Bool("swap-xy", false, "Swap U/V axes")
	flagInvertU = flag.Bool("invert-u", false, "Invert the U axis")
	flagInvertV = flag.Bool("invert-v", false, "Invert the V axis")
	flagShrink  = flag.Float64("shrink", -1, "Epsilon inset per frame rect")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Playback.DebugTiles = true
	}
	if *flagAtlas != "" {
		cfg.Viewer.Atlas = *flagAtlas
	}
	if *flagAnim != "" {
		cfg.Viewer.Animation = *flagAnim
	}
	if *flagIndex >= 0 {
		cfg.Playback.Animation = *flagIndex
	}
	if *flagFPS > 0 {
		cfg.Playback.FPS = float32(*flagFPS)
	}
	if *flagMode != "" {
		cfg.Playback.Mode = *flagMode
	}
	if *flagSwapXY {
		cfg.Playback.SwapXY = true
	}
	if *flagInvertU {
		cfg.Playback.InvertU = true
	}
	if *flagInvertV {
		cfg.Playback.InvertV = true
	}
	if *flagShrink >= 0 {
		cfg.Playback.Shrink = float32(*flagShrink)
	}
}
