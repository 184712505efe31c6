package actors

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const framesPerSecond = 60

type particle struct {
	x, y   float64
	vx, vy float64
	alpha  float32
	fade   *gween.Tween
	done   bool
}

// Burst is a ring of fading particles, shown where a player dies.
type Burst struct {
	particles []particle
	color     color.RGBA
	radius    float32
	killed    bool
}

// BurstConfig describes a burst.
type BurstConfig struct {
	Particles int
	Speed     float64 // pixels per frame
	Lifetime  time.Duration
	Color     color.RGBA
	Radius    float32
}

// NewBurst creates a burst centered on (x, y). Particle lifetimes vary
// between half and all of cfg.Lifetime.
func NewBurst(x, y float64, cfg BurstConfig, rng *rand.Rand) *Burst {
	b := &Burst{
		particles: make([]particle, cfg.Particles),
		color:     cfg.Color,
		radius:    cfg.Radius,
	}
	life := float32(cfg.Lifetime.Seconds())
	for i := range b.particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Speed * framesPerSecond
		b.particles[i] = particle{
			x:     x,
			y:     y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			alpha: 1,
			fade:  gween.New(1, 0, life*(0.5+0.5*rng.Float32()), ease.OutQuad),
		}
	}
	return b
}

func (b *Burst) Update(dt float64) {
	for i := range b.particles {
		p := &b.particles[i]
		if p.done {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.alpha, p.done = p.fade.Update(float32(dt))
	}
}

func (b *Burst) Draw(screen *ebiten.Image) {
	for _, p := range b.particles {
		if p.done {
			continue
		}
		c := b.color
		c.A = uint8(float32(c.A) * p.alpha)
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), b.radius, c, true)
	}
}

// CanReap reports whether every particle has faded out.
func (b *Burst) CanReap() bool {
	if b.killed {
		return true
	}
	for _, p := range b.particles {
		if !p.done {
			return false
		}
	}
	return true
}

func (b *Burst) Kill() {
	b.killed = true
}
