// Package player drives texture-atlas animation playback onto a renderable
// surface, either by rewriting the mesh's vertex UVs or by offsetting the
// material's texture transform.
package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/uvplay/internal/engine/atlas"
	"github.com/Faultbox/uvplay/internal/engine/quad"
	"github.com/Faultbox/uvplay/internal/logger"
	"github.com/Faultbox/uvplay/pkg/tileanim"
	"github.com/Faultbox/uvplay/pkg/uv"
)

// Mesh exposes a mesh's writable UV layout. The buffer returned by UVs is
// the player's private working copy, never the shared asset, so per-frame
// rewrites cannot corrupt other users of the mesh.
type Mesh interface {
	// UVs returns the current UV layout, one point per vertex.
	UVs() []uv.Point
	// SetUVs commits a full UV layout back to the mesh in one batched write.
	SetUVs(uvs []uv.Point)
}

// Surface is a renderable surface the host resolved for this player: a
// material that can take a texture offset/scale, and optionally the mesh
// behind it.
type Surface interface {
	// HasTextureProperty reports whether the bound material supports the
	// named texture property.
	HasTextureProperty(name string) bool
	// SetTextureTransform sets the offset and scale of a texture property.
	SetTextureTransform(property string, offset, scale uv.Point)
	// Mesh returns the surface's mesh data, or nil if it has none.
	Mesh() Mesh
}

// texturePropertyNames is the probe order for the material's main texture
// slot. Differing render pipelines name the slot differently.
var texturePropertyNames = []string{"_BaseMap", "_MainTex", "_BaseColorMap", "_BaseColorTexture"}

// TexturePropertyName returns the first texture property the surface's
// material supports, defaulting to "_MainTex" when none match.
func TexturePropertyName(s Surface) string {
	for _, name := range texturePropertyNames {
		if s.HasTextureProperty(name) {
			return name
		}
	}
	return "_MainTex"
}

// Mode selects how a frame rect is applied to the surface.
type Mode int

const (
	// ModeMeshUV rewrites the mesh's per-vertex UVs each frame.
	ModeMeshUV Mode = iota
	// ModeMaterialOffset sets the material's texture offset and scale.
	ModeMaterialOffset
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeMeshUV {
		return "mesh-uv"
	}
	return "material-offset"
}

// Config is the per-instance tuning surface.
type Config struct {
	Animation  int     // animation selection index, clamped into range
	FPS        float32 // playback rate in ticks per second, floored to 1
	Mode       Mode    // preferred output mode
	SwapXY     bool
	InvertU    bool
	InvertV    bool
	Shrink     float32 // epsilon inset per frame rect
	DebugTiles bool    // log the implied atlas tile of each applied rect
}

// Player owns one animation playback: the parsed animations, the expanded
// timeline for the selected animation, the corner buckets of the bound
// mesh, and the tick/time accumulator state.
type Player struct {
	cfg     Config
	surface Surface

	anims    []tileanim.Animation
	timeline []uv.Rect
	buckets  quad.Buckets
	property string
	mode     Mode

	tick int
	acc  float64
}

// New creates a player for a surface. A nil surface is allowed; material
// application is then an explicit no-op. Call SetSource and Configure
// before ticking.
func New(surface Surface, cfg Config) *Player {
	p := &Player{cfg: cfg, surface: surface, mode: cfg.Mode}
	if surface == nil && cfg.Mode == ModeMeshUV {
		p.downgrade("no renderable surface")
	}
	return p
}

// SetSource parses a raw animation description and rebuilds the timeline.
// Empty or unparseable input leaves the player with an empty timeline and
// is reported once; it never aborts the caller.
func (p *Player) SetSource(data []byte) error {
	anims, err := tileanim.Parse(data)
	if err != nil {
		p.anims = nil
		p.Rebuild()
		logger.Warn("animation description unusable, playback disabled", zap.Error(err))
		return err
	}
	p.anims = anims
	p.Rebuild()
	return nil
}

// SetAnimations installs already-parsed animations and rebuilds the timeline.
func (p *Player) SetAnimations(anims []tileanim.Animation) {
	p.anims = anims
	p.Rebuild()
}

// Configure replaces the player configuration and rebuilds. Rebuilding with
// identical settings yields an identical timeline and applied rect.
func (p *Player) Configure(cfg Config) {
	p.cfg = cfg
	p.mode = cfg.Mode
	p.Rebuild()
}

// Rebuild re-expands the timeline for the current selection and settings,
// resets playback to the first tick, re-evaluates the output mode
// preconditions, and applies the first rect immediately so the visible
// state never lags a period behind a configuration change.
func (p *Player) Rebuild() {
	p.tick = 0
	p.acc = 0
	p.timeline = nil

	if len(p.anims) > 0 {
		anim := p.anims[tileanim.ClampIndex(len(p.anims), p.cfg.Animation)]
		p.timeline = atlas.BuildTimeline(anim, atlas.Options{
			SwapXY:  p.cfg.SwapXY,
			InvertU: p.cfg.InvertU,
			InvertV: p.cfg.InvertV,
			Shrink:  p.cfg.Shrink,
		})
	}

	p.bind()

	if len(p.timeline) > 0 {
		p.apply(p.timeline[0])
	}
}

// bind re-derives the corner buckets for mesh-UV playback and downgrades
// the mode when any precondition fails. All downgrade triggers live here
// and in apply; nowhere else.
func (p *Player) bind() {
	p.buckets = quad.Buckets{}
	if p.surface != nil {
		p.property = TexturePropertyName(p.surface)
	}
	if p.mode != ModeMeshUV {
		return
	}

	if p.surface == nil {
		p.downgrade("no renderable surface")
		return
	}
	mesh := p.surface.Mesh()
	if mesh == nil {
		p.downgrade("mesh-uv mode requested but surface has no mesh")
		return
	}

	buckets, err := quad.Bind(mesh.UVs())
	if err != nil {
		p.downgrade(err.Error())
		return
	}
	p.buckets = buckets
}

// Advance accumulates elapsed time and applies one rect per elapsed
// playback period. dt is in seconds. With an empty timeline it does
// nothing. It never panics; degrade conditions observed mid-tick switch
// the mode and still apply the frame in the same step.
func (p *Player) Advance(dt float64) {
	if len(p.timeline) == 0 {
		return
	}

	fps := p.cfg.FPS
	if fps < 1 {
		fps = 1
	}
	period := 1 / float64(fps)

	p.acc += dt
	for p.acc >= period {
		p.acc -= period
		p.tick = (p.tick + 1) % len(p.timeline)
		p.apply(p.timeline[p.tick])
	}
}

// apply writes one frame rect to the surface using the active mode.
func (p *Player) apply(rect uv.Rect) {
	if p.mode == ModeMeshUV {
		if !p.applyMeshUV(rect) {
			// Downgraded mid-apply; the frame still goes out below.
			p.applyMaterial(rect)
		}
	} else {
		p.applyMaterial(rect)
	}

	if p.cfg.DebugTiles {
		col, rowBottom, rowTop := atlas.TileIndex(rect, atlas.GridFor(rect))
		logger.Debug("applied atlas tile",
			zap.Int("col", col),
			zap.Int("row_bottom", rowBottom),
			zap.Int("row_top", rowTop),
			zap.Int("tick", p.tick),
		)
	}
}

// applyMeshUV writes the rect corners into the bound corner buckets and
// commits the buffer in one batched write. Returns false when the mesh is
// unusable, after downgrading the mode.
func (p *Player) applyMeshUV(rect uv.Rect) bool {
	if p.surface == nil {
		p.downgrade("no renderable surface")
		return false
	}
	mesh := p.surface.Mesh()
	if mesh == nil {
		p.downgrade("mesh reference lost")
		return false
	}
	uvs := mesh.UVs()
	if len(uvs) == 0 || p.buckets.Total() == 0 {
		p.downgrade("mesh UV buffer empty or no bound corners")
		return false
	}

	for _, c := range uv.Corners {
		point := rect.Corner(c)
		for _, i := range p.buckets.Bucket(c) {
			if i < len(uvs) {
				uvs[i] = point
			}
		}
	}
	mesh.SetUVs(uvs)
	return true
}

// applyMaterial sets the surface texture offset and scale from the rect.
// Explicitly a no-op when no surface is bound.
func (p *Player) applyMaterial(rect uv.Rect) {
	if p.surface == nil {
		return
	}
	p.surface.SetTextureTransform(p.property, rect.Min(), rect.Size())
}

// downgrade forces material-offset output. The transition is one-way:
// nothing promotes the player back to mesh-UV while it runs.
func (p *Player) downgrade(reason string) {
	if p.mode == ModeMaterialOffset {
		return
	}
	p.mode = ModeMaterialOffset
	logger.Warn("falling back to material-offset playback", zap.String("reason", reason))
}

// Mode returns the active output mode.
func (p *Player) Mode() Mode { return p.mode }

// Tick returns the current timeline position.
func (p *Player) Tick() int { return p.tick }

// TimelineLen returns the expanded timeline length in ticks.
func (p *Player) TimelineLen() int { return len(p.timeline) }

// Rect returns the rect at the current tick, or false with an empty timeline.
func (p *Player) Rect() (uv.Rect, bool) {
	if len(p.timeline) == 0 {
		return uv.Rect{}, false
	}
	return p.timeline[p.tick], true
}

// Animations returns the parsed animations.
func (p *Player) Animations() []tileanim.Animation { return p.anims }

// Config returns the current configuration.
func (p *Player) Config() Config { return p.cfg }
