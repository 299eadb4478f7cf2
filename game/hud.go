package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"circleshooter/world"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const (
	hudMargin      = 12.0
	hudLineSpacing = 16.0
	dialogPadding  = 24.0
)

var (
	colorHUDText       = color.White
	colorDialogShade   = color.RGBA{A: 140}
	colorDialogBox     = color.RGBA{R: 24, G: 24, B: 32, A: 240}
	colorDialogBorder  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorDebugText     = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	colorGameOverTitle = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

// scoreText is the label shown in the corner
func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// gameOverText is the message of the game-over dialog
func gameOverText(score int) string {
	return fmt.Sprintf("Game Over! Your score: %d", score)
}

// frameStats accumulates StepResult counters since startup
type frameStats struct {
	hits   int
	culled int
}

func (s *frameStats) add(result world.StepResult) {
	s.hits += result.Hits
	s.culled += result.Culled
}

// kindCounts returns "<kind>: <n>" for every entity kind, in draw order
func kindCounts(entities []world.Entity) string {
	counts := make(map[world.Kind]int, 3)
	for _, e := range entities {
		counts[e.Kind()]++
	}
	parts := make([]string, 0, 3)
	for _, kind := range []world.Kind{world.KindPlayer, world.KindProjectile, world.KindEnemy} {
		parts = append(parts, fmt.Sprintf("%v: %d", kind, counts[kind]))
	}
	return strings.Join(parts, "  ")
}

// debugText lists the numbers shown by the F1 overlay
func debugText(w *world.World, stats frameStats, tps, fps float64) string {
	lines := []string{
		fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", tps, fps),
		fmt.Sprintf("Phase: %v  Frame: %d", w.Phase(), w.Frame()),
		kindCounts(w.Entities()),
		fmt.Sprintf("Hits: %d  Culled: %d", stats.hits, stats.culled),
		fmt.Sprintf("Spawned: %d  Next in: %v", w.Spawner().Spawned(), w.Spawner().Until().Round(10*time.Millisecond)),
	}
	return strings.Join(lines, "\n")
}

// drawText draws s with its top-left corner at (x, y)
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineSpacing
	op.PrimaryAlign = align
	text.Draw(dst, s, hudFace, op)
}

// drawScore draws the score label
func drawScore(screen *ebiten.Image, score int) {
	drawText(screen, scoreText(score), hudMargin, hudMargin, colorHUDText, text.AlignStart)
}

// drawDebug draws the debug overlay below the score
func drawDebug(screen *ebiten.Image, w *world.World, stats frameStats) {
	s := debugText(w, stats, ebiten.ActualTPS(), ebiten.ActualFPS())
	drawText(screen, s, hudMargin, hudMargin+hudLineSpacing*2, colorDebugText, text.AlignStart)
}

// drawGameOver shades the screen and draws the dialog with the final score
func drawGameOver(screen *ebiten.Image, score int) {
	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), colorDialogShade, false)

	title := gameOverText(score)
	hint := "Click or press Enter to play again"
	tw, _ := text.Measure(title, hudFace, hudLineSpacing)
	hw, _ := text.Measure(hint, hudFace, hudLineSpacing)

	boxW := max(tw, hw) + dialogPadding*2
	boxH := hudLineSpacing*3 + dialogPadding*2
	boxX := (sw - boxW) / 2
	boxY := (sh - boxH) / 2

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), colorDialogBox, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 2, colorDialogBorder, false)

	drawText(screen, title, sw/2, boxY+dialogPadding, colorGameOverTitle, text.AlignCenter)
	drawText(screen, hint, sw/2, boxY+dialogPadding+hudLineSpacing*2, colorHUDText, text.AlignCenter)
}
