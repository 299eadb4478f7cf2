package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"circleshooter/world"
)

func TestDefaultConfigMatchesScreen(t *testing.T) {
	config := DefaultConfig(800, 600)
	if config.World.Width != 800 || config.World.Height != 600 {
		t.Fatalf("world size = %vx%v, want 800x600", config.World.Width, config.World.Height)
	}
	if config.TrailAlpha != 26 {
		t.Fatalf("TrailAlpha = %d, want 26", config.TrailAlpha)
	}
	if config.World.EnemyImage != "enemy.png" {
		t.Fatalf("EnemyImage = %q, want enemy.png", config.World.EnemyImage)
	}
	if config.World.TPS != 60 {
		t.Fatalf("TPS = %d, want 60", config.World.TPS)
	}
}

func TestArrowKeysCoverEveryDirection(t *testing.T) {
	want := []world.Direction{world.DirectionUp, world.DirectionDown, world.DirectionLeft, world.DirectionRight}
	if len(arrowKeys) != len(want) {
		t.Fatalf("arrowKeys = %d entries, want %d", len(arrowKeys), len(want))
	}
	for i, arrow := range arrowKeys {
		if arrow.dir != want[i] {
			t.Errorf("arrowKeys[%d] = %v for key %v, want %v", i, arrow.dir, arrow.key, want[i])
		}
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := NewGame(DefaultConfig(640, 480))
	for _, size := range [][2]int{{100, 100}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		if w != 640 || h != 480 {
			t.Fatalf("Layout(%v) = %dx%d, want 640x480", size, w, h)
		}
	}
}

func TestHUDText(t *testing.T) {
	if got := scoreText(40); got != "Score: 40" {
		t.Fatalf("scoreText = %q", got)
	}
	if got := gameOverText(70); got != "Game Over! Your score: 70" {
		t.Fatalf("gameOverText = %q", got)
	}

	config := world.DefaultConfig(300, 300)
	config.Seed = 7
	w := world.New(config)
	for i := 0; i < 60; i++ {
		w.Tick()
	}
	w.Fire(0, 0)

	var stats frameStats
	stats.add(world.StepResult{Hits: 2, Culled: 1})
	stats.add(world.StepResult{Hits: 1})

	got := debugText(w, stats, 60, 59.5)
	for _, want := range []string{
		"TPS: 60.0", "FPS: 59.5",
		"player: 1  projectile: 1  enemy: 1",
		"Hits: 3  Culled: 1",
		"Spawned: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("debugText missing %q:\n%s", want, got)
		}
	}
}

func TestImageLoaderRemembersMisses(t *testing.T) {
	loader := NewImageLoader(t.TempDir())
	_, err1 := loader.Load("enemy.png")
	if err1 == nil {
		t.Fatalf("Load from empty dir succeeded")
	}
	_, err2 := loader.Load("enemy.png")
	if err2 != err1 {
		t.Fatalf("second Load returned %v, want the cached %v", err2, err1)
	}
}

func TestProfilerCooldown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p := NewProfiler(dir, 10*time.Millisecond)

	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("CaptureProfile: %v", err)
	}
	if err := p.CaptureProfile("test"); err == nil {
		t.Fatalf("second CaptureProfile succeeded, want busy or cooldown error")
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() {
		if time.Now().After(deadline) {
			t.Fatalf("capture did not finish")
		}
		time.Sleep(10 * time.Millisecond)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("profiles dir has %d files, want 2", len(entries))
	}
	for i, suffix := range []string{".cpu.prof", ".trace"} {
		name := entries[i].Name()
		if !strings.HasPrefix(name, "test-") || !strings.HasSuffix(name, suffix) {
			t.Errorf("profile file %q, want test-<timestamp>%s", name, suffix)
		}
	}
	if err := p.CaptureProfile("test"); err == nil {
		t.Fatalf("capture within cooldown succeeded")
	}
}
