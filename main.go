package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"circleshooter/game"
)

// windowedSizeRatio sizes the desktop window relative to the monitor
const windowedSizeRatio = 0.9

// getEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	width := flag.Int("width", 0, "canvas width in pixels (0 = viewport)")
	height := flag.Int("height", 0, "canvas height in pixels (0 = viewport)")
	assetDir := flag.String("assets", getEnv("SHOOTER_ASSETS", ""), "directory holding enemy.png (empty = embedded)")
	seedFlag := flag.Int64("seed", 0, "spawner random seed (0 = time based, or SHOOTER_SEED)")
	freeMove := flag.Bool("free-move", false, "keep the player where it moves instead of recentering each frame")
	profileTPS := flag.Float64("profile-below-tps", 0, "capture a profile when TPS drops below this (0 = off)")
	flag.Parse()

	// The canvas is sized once; later window or viewport resizes are not followed
	if *width <= 0 || *height <= 0 {
		ratio := windowedSizeRatio
		if runtime.GOOS == "js" {
			// In the browser this is the viewport; fill it
			ratio = 1
		}
		monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
		*width = int(float64(monitorWidth) * ratio)
		*height = int(float64(monitorHeight) * ratio)
	}

	seed := *seedFlag
	if seed == 0 {
		if env := getEnv("SHOOTER_SEED", ""); env != "" {
			parsed, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				log.Fatalf("invalid SHOOTER_SEED %q: %v", env, err)
			}
			seed = parsed
		}
	}

	config := game.DefaultConfig(*width, *height)
	config.AssetDir = *assetDir
	config.ProfileBelowTPS = *profileTPS
	config.World.Seed = seed
	config.World.RecenterPlayer = !*freeMove

	log.Printf("Starting %s: canvas=%dx%d assets=%q seed=%d recenter=%t",
		config.Title, config.ScreenWidth, config.ScreenHeight, config.AssetDir, seed, config.World.RecenterPlayer)

	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
