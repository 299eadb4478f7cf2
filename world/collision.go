package world

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Touching reports whether two circles whose centers are dist apart are
// closer than slack at their edges
func Touching(dist, r1, r2, slack float64) bool {
	return dist-r1-r2 < slack
}

// collides checks two entities against the slack of the config
func (c Config) collides(a, b Entity) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return Touching(Distance(ax, ay, bx, by), a.CollisionRadius(), b.CollisionRadius(), c.CollisionSlack)
}

// checkProjectileHits matches one enemy against every projectile of the
// frame and marks both sides of each touching pair. It returns the number of
// pairs; an enemy caught by two shots, or a shot crossing two enemies, counts
// once per pair. Marks are only applied at compaction, so matching an
// already marked entity again is safe.
func (w *World) checkProjectileHits(enemy *Enemy) int {
	pairs := 0
	for _, projectile := range w.projectiles {
		if w.config.collides(enemy, projectile) {
			enemy.MarkDestroyed()
			projectile.MarkDestroyed()
			pairs++
		}
	}
	return pairs
}

// compactProjectiles drops marked projectiles keeping the order of the rest
func compactProjectiles(projectiles []*Projectile) []*Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return kept
}

// compactEnemies drops marked enemies keeping the order of the rest
func compactEnemies(enemies []*Enemy) []*Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if !e.IsDestroyed() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
