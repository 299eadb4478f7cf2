package world

import "time"

// Config holds the gameplay constants of the simulation
type Config struct {
	// Width and Height are the canvas size in pixels
	Width  float64
	Height float64

	PlayerRadius float64
	PlayerSpeed  float64 // pixels per frame while a key is held

	ProjectileRadius float64
	ProjectileSpeed  float64 // pixels per frame

	EnemySpeed     float64 // pixels per frame, always toward the player
	EnemyMinRadius float64
	EnemyMaxRadius float64 // exclusive
	EnemyImage     string

	// SpawnInterval is the time between two spawned enemies
	SpawnInterval time.Duration

	// TPS is the number of frames per simulated second; the spawner counts
	// its interval in frames at this rate
	TPS int

	// ScorePerKill is added for every enemy destroyed by a projectile
	ScorePerKill int

	// CollisionSlack is the gap below which two circles count as touching
	CollisionSlack float64

	// RecenterPlayer snaps the player back to the canvas center every frame
	// before applying the current velocity. Disable for cumulative movement.
	RecenterPlayer bool

	// Seed for the spawner's random source; 0 picks a time based seed
	Seed int64
}

// DefaultConfig returns a default configuration for a canvas of the given size
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:            width,
		Height:           height,
		PlayerRadius:     30,
		PlayerSpeed:      10,
		ProjectileRadius: 5,
		ProjectileSpeed:  50,
		EnemySpeed:       2,
		EnemyMinRadius:   10,
		EnemyMaxRadius:   30,
		EnemyImage:       "enemy.png",
		SpawnInterval:    time.Second,
		TPS:              60,
		ScorePerKill:     10,
		CollisionSlack:   1,
		RecenterPlayer:   true,
	}
}

// Center returns the middle of the canvas
func (c Config) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}
