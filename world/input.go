package world

// CommandType identifies a player action
type CommandType int

const (
	CommandMove CommandType = iota
	CommandStop
	CommandFire
	CommandDismiss
)

// Command is one input event translated out of the front end
type Command struct {
	Type      CommandType
	Direction Direction // Move and Stop
	X, Y      float64   // Fire target
}

// Move returns the command for a pressed arrow key
func Move(d Direction) Command { return Command{Type: CommandMove, Direction: d} }

// Stop returns the command for a released arrow key
func Stop(d Direction) Command { return Command{Type: CommandStop, Direction: d} }

// Fire returns the command for a click or tap at (x, y)
func Fire(x, y float64) Command { return Command{Type: CommandFire, X: x, Y: y} }

// Dismiss returns the command that closes the game-over dialog
func Dismiss() Command { return Command{Type: CommandDismiss} }

// Apply mutates the world for one command and reports whether it started a
// new round. Movement keys are tracked in every phase so a key released
// behind the dialog does not stay held. While the game is over a click or
// a dismiss restarts instead of firing.
func (w *World) Apply(cmd Command) bool {
	switch cmd.Type {
	case CommandMove:
		w.player.Move(cmd.Direction)
	case CommandStop:
		w.player.Stop(cmd.Direction)
	case CommandFire:
		if w.phase == PhaseRunning {
			w.Fire(cmd.X, cmd.Y)
			return false
		}
		w.Reset()
		return true
	case CommandDismiss:
		if w.phase == PhaseGameOver {
			w.Reset()
			return true
		}
	}
	return false
}
