package main

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/uvplay/internal/config"
	"github.com/Faultbox/uvplay/internal/engine/player"
	"github.com/Faultbox/uvplay/internal/engine/texture"
	"github.com/Faultbox/uvplay/internal/engine/window"
	"github.com/Faultbox/uvplay/internal/logger"
	"github.com/Faultbox/uvplay/pkg/tileanim"
)

// viewer owns the preview window, the quad surface, and the player.
type viewer struct {
	cfg    *config.Config
	win    *window.Window
	quad   *quadSurface
	play   *player.Player
	texID  uint32
	paused bool
}

func newViewer(cfg *config.Config) (*viewer, error) {
	anims, err := tileanim.ParseFile(cfg.Viewer.Animation)
	if err != nil {
		return nil, fmt.Errorf("loading animation description: %w", err)
	}

	img, err := texture.LoadFile(cfg.Viewer.Atlas)
	if err != nil {
		return nil, fmt.Errorf("loading atlas: %w", err)
	}

	win, err := window.New(window.Config{
		Title:  "uvplay",
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	quad, err := newQuadSurface()
	if err != nil {
		win.Close()
		return nil, err
	}

	v := &viewer{
		cfg:   cfg,
		win:   win,
		quad:  quad,
		texID: texture.Upload(img, true),
	}

	v.play = player.New(quad, playerConfig(cfg.Playback))
	v.play.SetAnimations(anims)

	logger.Info("playback ready",
		zap.Int("animations", len(anims)),
		zap.Int("timeline_ticks", v.play.TimelineLen()),
		zap.Stringer("mode", v.play.Mode()),
	)

	return v, nil
}

// playerConfig maps the yaml/flag configuration onto the player.
func playerConfig(pc config.PlaybackConfig) player.Config {
	mode := player.ModeMeshUV
	if pc.Mode == "material" {
		mode = player.ModeMaterialOffset
	}
	return player.Config{
		Animation:  pc.Animation,
		FPS:        pc.FPS,
		Mode:       mode,
		SwapXY:     pc.SwapXY,
		InvertU:    pc.InvertU,
		InvertV:    pc.InvertV,
		Shrink:     pc.Shrink,
		DebugTiles: pc.DebugTiles,
	}
}

// Run drives the event/render loop until the window closes.
func (v *viewer) Run() error {
	last := time.Now()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && !v.handleKey(e.Keysym.Sym) {
					return nil
				}
			}
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if !v.paused {
			v.play.Advance(dt)
		}

		width, height := v.win.Size()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.12, 0.12, 0.14, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		v.quad.Draw(v.texID)
		v.win.SwapBuffers()
	}
}

// handleKey processes a key press; returns false to quit.
func (v *viewer) handleKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		return false
	case sdl.K_SPACE:
		v.paused = !v.paused
	case sdl.K_m:
		v.toggleMode()
	case sdl.K_LEFT:
		v.selectAnimation(-1)
	case sdl.K_RIGHT:
		v.selectAnimation(1)
	case sdl.K_d:
		v.cfg.Playback.DebugTiles = !v.cfg.Playback.DebugTiles
		v.reconfigure()
	}
	return true
}

// toggleMode flips the preferred output mode and reconfigures. The quad is
// reset first so leftovers of the previous strategy don't stack with the
// new one.
func (v *viewer) toggleMode() {
	if v.cfg.Playback.Mode == "material" {
		v.cfg.Playback.Mode = "mesh"
	} else {
		v.cfg.Playback.Mode = "material"
	}
	v.reconfigure()
	logger.Info("output mode changed", zap.Stringer("mode", v.play.Mode()))
}

// selectAnimation moves the animation selection by delta, clamped.
func (v *viewer) selectAnimation(delta int) {
	n := len(v.play.Animations())
	v.cfg.Playback.Animation = tileanim.ClampIndex(n, v.cfg.Playback.Animation+delta)
	v.reconfigure()

	anims := v.play.Animations()
	if i := v.cfg.Playback.Animation; i < len(anims) {
		v.win.SetTitle("uvplay - " + anims[i].Name)
	}
}

func (v *viewer) reconfigure() {
	v.quad.ResetUVs()
	v.play.Configure(playerConfig(v.cfg.Playback))
}

// Close releases the window and GL resources.
func (v *viewer) Close() {
	if v.win != nil {
		v.win.Close()
	}
}
