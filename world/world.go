// Package world holds the simulation of the circle shooter: entities, the
// enemy spawner, collision checks, scoring and the running/game-over cycle.
// It has no graphics dependencies; the game package drives it once per tick.
package world

import (
	"math/rand"
	"time"
)

// Phase is the lifecycle state of a round
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "running"
}

// StepResult summarizes what happened during one frame
type StepResult struct {
	Hits     int  // touching projectile/enemy pairs, each worth a kill
	Culled   int  // projectiles that left the canvas
	GameOver bool // the player was touched this frame
}

// World owns all mutable game state
type World struct {
	config Config

	player      *Player
	projectiles []*Projectile
	enemies     []*Enemy

	score      int
	finalScore int
	phase      Phase

	spawner *Spawner
	frame   uint64
}

// New creates a world with the player at the center of the canvas
func New(config Config) *World {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cx, cy := config.Center()

	return &World{
		config:      config,
		player:      NewPlayer(cx, cy, config.PlayerRadius, config.PlayerSpeed, config.RecenterPlayer),
		projectiles: make([]*Projectile, 0, 64),
		enemies:     make([]*Enemy, 0, 64),
		phase:       PhaseRunning,
		spawner:     NewSpawner(config.SpawnInterval, config.TPS, rand.New(rand.NewSource(seed))),
	}
}

func (w *World) Config() Config             { return w.config }
func (w *World) Player() *Player            { return w.player }
func (w *World) Projectiles() []*Projectile { return w.projectiles }
func (w *World) Enemies() []*Enemy          { return w.enemies }
func (w *World) Score() int                 { return w.score }
func (w *World) Phase() Phase               { return w.phase }
func (w *World) Spawner() *Spawner          { return w.spawner }
func (w *World) Frame() uint64              { return w.frame }

// FinalScore is the score the last round ended with
func (w *World) FinalScore() int { return w.finalScore }

// Entities returns every live entity in draw order: player, projectiles, enemies
func (w *World) Entities() []Entity {
	entities := make([]Entity, 0, 1+len(w.projectiles)+len(w.enemies))
	entities = append(entities, w.player)
	for _, p := range w.projectiles {
		entities = append(entities, p)
	}
	for _, e := range w.enemies {
		entities = append(entities, e)
	}
	return entities
}

// Fire launches a projectile from the player toward (x, y)
func (w *World) Fire(x, y float64) *Projectile {
	projectile := NewProjectile(w.player.X, w.player.Y, x, y, w.config.ProjectileRadius, w.config.ProjectileSpeed)
	w.projectiles = append(w.projectiles, projectile)
	return projectile
}

// Tick advances the spawner by one frame and adds the enemies that came due.
// It runs in every phase.
func (w *World) Tick() int {
	due := w.spawner.Tick()
	for i := 0; i < due; i++ {
		w.enemies = append(w.enemies, w.spawner.NewEnemy(w.config))
	}
	return due
}

// Step runs one frame of the simulation. Removals are collected during the
// pass and applied once it completes. Nothing happens outside PhaseRunning.
func (w *World) Step() StepResult {
	var result StepResult
	if w.phase != PhaseRunning {
		return result
	}
	w.frame++
	// Kills of this frame are not part of the score the round ends with
	startScore := w.score

	w.player.Update(w.config.Width, w.config.Height)

	for _, projectile := range w.projectiles {
		projectile.Update()
		if projectile.OffScreen(w.config.Width, w.config.Height) {
			projectile.MarkDestroyed()
			result.Culled++
		}
	}

	for _, enemy := range w.enemies {
		enemy.Update(w.player.X, w.player.Y)

		if w.config.collides(w.player, enemy) {
			w.phase = PhaseGameOver
			w.finalScore = startScore
			result.GameOver = true
			break
		}

		if pairs := w.checkProjectileHits(enemy); pairs > 0 {
			w.score += pairs * w.config.ScorePerKill
			result.Hits += pairs
		}
	}

	w.projectiles = compactProjectiles(w.projectiles)
	w.enemies = compactEnemies(w.enemies)

	return result
}

// Reset starts a new round: the player goes back to the center, both
// collections are emptied and the score is zeroed. The spawner and the
// player's held velocity are left alone.
func (w *World) Reset() {
	w.player.X, w.player.Y = w.config.Center()
	for i := range w.projectiles {
		w.projectiles[i] = nil
	}
	for i := range w.enemies {
		w.enemies[i] = nil
	}
	w.projectiles = w.projectiles[:0]
	w.enemies = w.enemies[:0]
	w.score = 0
	w.phase = PhaseRunning
}
