// Package config handles playback and viewer configuration loading.
package config

// Config holds all settings for the playback engine and the preview tool.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PlaybackConfig is the per-instance tuning surface of the animation player.
type PlaybackConfig struct {
	Animation  int     `yaml:"animation"`   // animation selection index, clamped into range
	FPS        float32 `yaml:"fps"`         // playback rate in ticks per second
	Mode       string  `yaml:"mode"`        // "mesh" or "material"
	SwapXY     bool    `yaml:"swap_xy"`     // exchange U/V before inversion
	InvertU    bool    `yaml:"invert_u"`    // u' = 1-u after swap
	InvertV    bool    `yaml:"invert_v"`    // v' = 1-v after swap
	Shrink     float32 `yaml:"shrink"`      // epsilon inset per frame rect
	DebugTiles bool    `yaml:"debug_tiles"` // log implied atlas tile per applied rect
}

// ViewerConfig holds preview window settings and asset paths.
type ViewerConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	VSync     bool   `yaml:"vsync"`
	Atlas     string `yaml:"atlas"`     // path to the atlas texture (PNG)
	Animation string `yaml:"animation"` // path to the animation description file
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Animation: 0,
			FPS:       8,
			Mode:      "mesh",
		},
		Viewer: ViewerConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
