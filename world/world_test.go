package world

import (
	"testing"
	"time"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	config := DefaultConfig(1000, 1000)
	config.Seed = 42
	return New(config)
}

// tickFrames runs the spawner for n frames and returns the enemies it added
func tickFrames(w *World, n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		spawned += w.Tick()
	}
	return spawned
}

func TestTouchingThreshold(t *testing.T) {
	// Player at (0,0) r=30 against enemy at (25,0) r=10.
	dist := Distance(0, 0, 25, 0)
	if dist != 25 {
		t.Fatalf("Distance = %v, want 25", dist)
	}
	if !Touching(dist, 10, 30, 1) {
		t.Fatalf("Touching(25, 10, 30) = false, want true")
	}
	if Touching(41, 10, 30, 1) {
		t.Fatalf("Touching(41, 10, 30) = true, want false")
	}
	if !Touching(40.9, 10, 30, 1) {
		t.Fatalf("Touching(40.9, 10, 30) = false, want true")
	}
}

func TestEnemyOnPlayerEndsGame(t *testing.T) {
	config := DefaultConfig(200, 200)
	config.Seed = 1
	w := New(config)
	w.score = 30
	w.enemies = append(w.enemies, NewEnemy(125, 100, 10, 2, "enemy.png"))

	result := w.Step()
	if !result.GameOver {
		t.Fatalf("GameOver = false, want true")
	}
	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", w.Phase())
	}
	if w.FinalScore() != 30 {
		t.Fatalf("final score = %d, want 30", w.FinalScore())
	}

	// Frozen until reset.
	frame := w.Frame()
	w.Step()
	if w.Frame() != frame {
		t.Fatalf("world stepped while game over")
	}
}

func TestProjectileHitScoresAndRemovesBoth(t *testing.T) {
	w := newTestWorld(t)
	survivor := NewEnemy(900, 900, 10, 2, "enemy.png")
	w.enemies = append(w.enemies, NewEnemy(100, 500, 10, 2, "enemy.png"), survivor)
	w.projectiles = append(w.projectiles, &Projectile{X: 110, Y: 500, Radius: 5})

	result := w.Step()
	if result.GameOver {
		t.Fatalf("unexpected game over")
	}
	if result.Hits != 1 {
		t.Fatalf("hits = %d, want 1", result.Hits)
	}
	if w.Score() != 10 {
		t.Fatalf("score = %d, want 10", w.Score())
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(w.Projectiles()))
	}
	if len(w.Enemies()) != 1 || w.Enemies()[0] != survivor {
		t.Fatalf("enemies = %v, want only the survivor", w.Enemies())
	}
}

func TestProjectileCrossingTwoEnemiesScoresBoth(t *testing.T) {
	w := newTestWorld(t)
	w.enemies = append(w.enemies,
		&Enemy{X: 100, Y: 100, Radius: 20},
		&Enemy{X: 110, Y: 100, Radius: 20},
	)
	w.projectiles = append(w.projectiles, &Projectile{X: 105, Y: 100, Radius: 5})

	result := w.Step()
	if result.Hits != 2 {
		t.Fatalf("hits = %d, want 2", result.Hits)
	}
	if w.Score() != 20 {
		t.Fatalf("score = %d, want 20", w.Score())
	}
	if len(w.Enemies()) != 0 {
		t.Fatalf("enemies = %d, want 0", len(w.Enemies()))
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(w.Projectiles()))
	}
}

func TestTwoProjectilesOnOneEnemyAreBothSpent(t *testing.T) {
	w := newTestWorld(t)
	w.enemies = append(w.enemies, &Enemy{X: 100, Y: 100, Radius: 20})
	w.projectiles = append(w.projectiles,
		&Projectile{X: 95, Y: 100, Radius: 5},
		&Projectile{X: 105, Y: 100, Radius: 5},
	)

	result := w.Step()
	if result.Hits != 2 {
		t.Fatalf("hits = %d, want 2", result.Hits)
	}
	if w.Score() != 20 {
		t.Fatalf("score = %d, want 20", w.Score())
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(w.Projectiles()))
	}
	if len(w.Enemies()) != 0 {
		t.Fatalf("enemies = %d, want 0", len(w.Enemies()))
	}
}

func TestFinalScoreExcludesKillsOfLosingFrame(t *testing.T) {
	w := newTestWorld(t)
	w.score = 50
	// The first enemy is shot, the second reaches the player in the same frame.
	w.enemies = append(w.enemies,
		&Enemy{X: 100, Y: 100, Radius: 20},
		&Enemy{X: 520, Y: 500, Radius: 10},
	)
	w.projectiles = append(w.projectiles, &Projectile{X: 105, Y: 100, Radius: 5})

	result := w.Step()
	if !result.GameOver {
		t.Fatalf("GameOver = false, want true")
	}
	if result.Hits != 1 {
		t.Fatalf("hits = %d, want 1", result.Hits)
	}
	if w.FinalScore() != 50 {
		t.Fatalf("final score = %d, want 50", w.FinalScore())
	}
}

func TestOffScreenProjectilesAreCulled(t *testing.T) {
	w := newTestWorld(t)
	w.Fire(2000, w.Player().Y)
	w.projectiles = append(w.projectiles, &Projectile{X: 990, Y: 500, Radius: 5, VX: 50})

	for i := 0; i < 3; i++ {
		w.Step()
	}
	if len(w.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.Projectiles()))
	}

	for i := 0; i < 20; i++ {
		w.Step()
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(w.Projectiles()))
	}
}

func TestFireFromPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := w.Fire(500, 0)
	if p.X != 500 || p.Y != 500 {
		t.Fatalf("projectile at (%v, %v), want (500, 500)", p.X, p.Y)
	}
	if p.VY > -49.999 {
		t.Fatalf("VY = %v, want -50", p.VY)
	}
	if len(w.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.Projectiles()))
	}
}

func TestTickSpawnsOnInterval(t *testing.T) {
	w := newTestWorld(t)
	if n := tickFrames(w, 59); n != 0 {
		t.Fatalf("spawned %d after 59 frames, want 0", n)
	}
	if n := w.Tick(); n != 1 {
		t.Fatalf("spawned %d on frame 60, want 1", n)
	}
	if n := tickFrames(w, 150); n != 2 {
		t.Fatalf("spawned %d in the next 150 frames, want 2", n)
	}
	if len(w.Enemies()) != 3 {
		t.Fatalf("enemies = %d, want 3", len(w.Enemies()))
	}
	if w.Spawner().Spawned() != 3 {
		t.Fatalf("Spawned() = %d, want 3", w.Spawner().Spawned())
	}
	if got := w.Spawner().Until(); got != 500*time.Millisecond {
		t.Fatalf("Until() = %v, want 500ms", got)
	}
}

func TestSpawnIntervalRoundsToFrames(t *testing.T) {
	s := NewSpawner(time.Second, 60, nil)
	for frame := 1; frame <= 600; frame++ {
		due := s.Tick()
		if want := frame%60 == 0; (due == 1) != want {
			t.Fatalf("frame %d: due = %d", frame, due)
		}
	}
	if got := NewSpawner(time.Millisecond, 60, nil).interval; got != 1 {
		t.Fatalf("interval for 1ms = %d frames, want 1", got)
	}
}

func TestResetAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	w.Fire(0, 0)
	w.score = 120
	w.enemies = append(w.enemies, NewEnemy(520, 500, 10, 2, "enemy.png"))
	w.Player().Move(DirectionLeft)

	if !w.Step().GameOver {
		t.Fatalf("expected game over")
	}
	tickFrames(w, 60) // spawner keeps running behind the dialog
	w.Reset()

	if w.Score() != 0 {
		t.Fatalf("score = %d, want 0", w.Score())
	}
	if x, y := w.Player().Position(); x != 500 || y != 500 {
		t.Fatalf("player at (%v, %v), want (500, 500)", x, y)
	}
	if len(w.Projectiles()) != 0 || len(w.Enemies()) != 0 {
		t.Fatalf("collections not empty: %d projectiles, %d enemies", len(w.Projectiles()), len(w.Enemies()))
	}
	if w.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", w.Phase())
	}
	if w.FinalScore() != 120 {
		t.Fatalf("final score = %d, want 120", w.FinalScore())
	}

	if n := tickFrames(w, 60); n != 1 {
		t.Fatalf("spawner produced %d after reset, want 1", n)
	}
	if len(w.Enemies()) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies()))
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	a, b, c, d := &Enemy{}, &Enemy{}, &Enemy{}, &Enemy{}
	b.MarkDestroyed()
	d.MarkDestroyed()
	got := compactEnemies([]*Enemy{a, b, c, d})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("compactEnemies kept %v, want [a c]", got)
	}
}

func TestEntitiesDrawOrder(t *testing.T) {
	w := newTestWorld(t)
	w.Fire(0, 0)
	tickFrames(w, 60)

	entities := w.Entities()
	want := []Kind{KindPlayer, KindProjectile, KindEnemy}
	if len(entities) != len(want) {
		t.Fatalf("entities = %d, want %d", len(entities), len(want))
	}
	for i, e := range entities {
		if e.Kind() != want[i] {
			t.Errorf("entity %d kind = %v, want %v", i, e.Kind(), want[i])
		}
	}
}
