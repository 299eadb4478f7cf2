package world

import (
	"math"
	"math/rand"
	"time"
)

// Spawner produces one enemy per interval, for as long as it is ticked.
// The interval is counted in frames so the spawn cadence does not drift
// with the rounding of a frame duration. It is independent of the game
// phase and survives resets.
type Spawner struct {
	tps      int
	interval int // frames between two enemies
	elapsed  int
	rng      *rand.Rand
	spawned  int
}

// NewSpawner creates a spawner firing every interval at tps frames per second
func NewSpawner(interval time.Duration, tps int, rng *rand.Rand) *Spawner {
	if interval <= 0 {
		interval = time.Second
	}
	if tps <= 0 {
		tps = 60
	}
	frames := int(math.Round(interval.Seconds() * float64(tps)))
	if frames < 1 {
		frames = 1
	}
	return &Spawner{
		tps:      tps,
		interval: frames,
		rng:      rng,
	}
}

// Tick advances the timer by one frame and returns how many enemies are due
func (s *Spawner) Tick() int {
	s.elapsed++
	if s.elapsed < s.interval {
		return 0
	}
	s.elapsed = 0
	return 1
}

// Until returns the time left before the next enemy
func (s *Spawner) Until() time.Duration {
	return time.Duration(s.interval-s.elapsed) * time.Second / time.Duration(s.tps)
}

// Spawned returns the number of enemies created since startup
func (s *Spawner) Spawned() int {
	return s.spawned
}

// NewEnemy creates an enemy just outside a random canvas edge
func (s *Spawner) NewEnemy(c Config) *Enemy {
	radius := s.rng.Float64()*(c.EnemyMaxRadius-c.EnemyMinRadius) + c.EnemyMinRadius

	var x, y float64
	if s.rng.Float64() < 0.5 {
		// Left or right edge
		if s.rng.Float64() < 0.5 {
			x = -radius
		} else {
			x = c.Width + radius
		}
		y = s.rng.Float64() * c.Height
	} else {
		// Top or bottom edge
		x = s.rng.Float64() * c.Width
		if s.rng.Float64() < 0.5 {
			y = -radius
		} else {
			y = c.Height + radius
		}
	}

	s.spawned++
	return NewEnemy(x, y, radius, c.EnemySpeed, c.EnemyImage)
}
