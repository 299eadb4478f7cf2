// Package game runs the world inside ebiten: it polls input, steps the
// simulation at the fixed tick rate and draws the canvas, score and
// game-over dialog.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"circleshooter/world"
)

// Game represents the main game state
type Game struct {
	config   Config
	world    *world.World
	input    *Input
	renderer *Renderer
	profiler *Profiler
	stats    frameStats

	// Game start time to ignore slow ticks during startup
	gameStartTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config) *Game {
	return &Game{
		config:        config,
		world:         world.New(config.World),
		input:         NewInput(),
		renderer:      NewRenderer(config.ScreenWidth, config.ScreenHeight, config.TrailAlpha, NewImageLoader(config.AssetDir)),
		profiler:      NewProfiler(config.ProfilesDir, config.ProfileDuration),
		gameStartTime: time.Now(),
	}
}

// Update updates the game state
func (g *Game) Update() error {
	g.handleDebugKeys()

	for _, cmd := range g.input.Poll() {
		if g.world.Apply(cmd) {
			log.Printf("New round started")
		}
	}

	result := g.world.Step()
	g.stats.add(result)
	if result.Hits > 0 {
		log.Printf("%s", scoreText(g.world.Score()))
	}
	if result.GameOver {
		log.Printf("%s", gameOverText(g.world.FinalScore()))
	}

	// The spawner runs regardless of the phase
	g.world.Tick()

	return nil
}

// handleDebugKeys toggles the overlay (F1) and captures a profile (F2 or a
// sustained slowdown)
func (g *Game) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := g.profiler.CaptureProfile("manual"); err != nil {
			log.Printf("Failed to capture profile: %v", err)
		}
	}

	// Skip detection in the first 3 seconds after launch
	if g.config.ProfileBelowTPS > 0 && time.Since(g.gameStartTime) >= 3*time.Second &&
		ebiten.ActualTPS() < g.config.ProfileBelowTPS && !g.profiler.IsProfiling() {
		log.Printf("TPS drop detected (%.0f TPS), capturing profile", ebiten.ActualTPS())
		// Errors here are only the cooldown
		_ = g.profiler.CaptureProfile("slow")
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world)
	drawScore(screen, g.world.Score())

	if GetDebugState().ShowOverlay {
		drawDebug(screen, g.world, g.stats)
	}
	if g.world.Phase() == world.PhaseGameOver {
		drawGameOver(screen, g.world.FinalScore())
	}
}

// Layout returns the game's screen size, fixed at startup
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
