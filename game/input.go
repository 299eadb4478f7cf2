package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"circleshooter/world"
)

type arrowKey struct {
	key ebiten.Key
	dir world.Direction
}

// arrowKeys maps the movement keys to their directions, in polling order.
// ebiten names the arrow keys with the browser identifiers the world parses.
var arrowKeys = newArrowKeys(ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight)

func newArrowKeys(keys ...ebiten.Key) []arrowKey {
	arrows := make([]arrowKey, 0, len(keys))
	for _, key := range keys {
		if dir := world.ParseDirection(key.String()); dir != world.DirectionNone {
			arrows = append(arrows, arrowKey{key: key, dir: dir})
		}
	}
	return arrows
}

// dismissKeys close the game-over dialog
var dismissKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}

// Input turns this tick's keyboard, mouse and touch events into commands
type Input struct {
	commands []world.Command
	touchIDs []ebiten.TouchID
}

// NewInput creates a new input reader
func NewInput() *Input {
	return &Input{
		commands: make([]world.Command, 0, 8),
		touchIDs: make([]ebiten.TouchID, 0, 4),
	}
}

// Poll returns the commands for the current tick. The slice is reused by
// the next call.
func (in *Input) Poll() []world.Command {
	in.commands = in.commands[:0]

	// Key down / key up
	for _, arrow := range arrowKeys {
		if inpututil.IsKeyJustPressed(arrow.key) {
			in.commands = append(in.commands, world.Move(arrow.dir))
		}
		if inpututil.IsKeyJustReleased(arrow.key) {
			in.commands = append(in.commands, world.Stop(arrow.dir))
		}
	}

	for _, key := range dismissKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.commands = append(in.commands, world.Dismiss())
			break
		}
	}

	// Click
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.commands = append(in.commands, world.Fire(float64(x), float64(y)))
	}

	// Tap
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.commands = append(in.commands, world.Fire(float64(x), float64(y)))
	}

	return in.commands
}
