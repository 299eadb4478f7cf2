package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"circleshooter/world"
)

// Config holds game configuration
type Config struct {
	// World holds the gameplay constants
	World world.Config

	// ScreenWidth is the canvas width in pixels, fixed at startup
	ScreenWidth int

	// ScreenHeight is the canvas height in pixels, fixed at startup
	ScreenHeight int

	// Title is the window (or browser tab) title
	Title string

	// AssetDir is where enemy images are loaded from; empty means the
	// embedded defaults
	AssetDir string

	// TrailAlpha is the opacity of the black fill laid over the previous
	// frame; lower values leave longer trails
	TrailAlpha uint8

	// ProfilesDir receives CPU profiles and traces captured with F2
	ProfilesDir string

	// ProfileDuration is the length of one capture
	ProfileDuration time.Duration

	// ProfileBelowTPS triggers a capture when the measured TPS falls below
	// it; 0 disables automatic captures
	ProfileBelowTPS float64
}

// DefaultConfig returns a default configuration for a screen of the given size
func DefaultConfig(screenWidth, screenHeight int) Config {
	worldConfig := world.DefaultConfig(float64(screenWidth), float64(screenHeight))
	// The game never changes the tick rate
	worldConfig.TPS = ebiten.DefaultTPS

	return Config{
		World:           worldConfig,
		ScreenWidth:     screenWidth,
		ScreenHeight:    screenHeight,
		Title:           "Circle Shooter",
		TrailAlpha:      26, // 0.1 of full opacity
		ProfilesDir:     "profiles",
		ProfileDuration: 5 * time.Second,
	}
}
