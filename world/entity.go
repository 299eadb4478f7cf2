package world

import (
	"image/color"
	"math"
)

// Kind identifies the type of entity
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the drawing contract shared by every game object
type Entity interface {
	Kind() Kind
	Position() (float64, float64)
	CollisionRadius() float64
}

// Direction is one of the four arrow keys
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionKeys = map[Direction]string{
	DirectionUp:    "ArrowUp",
	DirectionDown:  "ArrowDown",
	DirectionLeft:  "ArrowLeft",
	DirectionRight: "ArrowRight",
}

// String returns the browser key identifier of the direction
func (d Direction) String() string {
	if key, ok := directionKeys[d]; ok {
		return key
	}
	return "None"
}

// ParseDirection maps a browser key identifier to a Direction.
// Any other key yields DirectionNone.
func ParseDirection(key string) Direction {
	for d := DirectionUp; d <= DirectionRight; d++ {
		if d.String() == key {
			return d
		}
	}
	return DirectionNone
}

// Player is the circle controlled by the keyboard
type Player struct {
	X, Y   float64
	Radius float64
	Color  color.Color
	Speed  float64

	// Velocity in pixels per frame
	DX, DY float64

	recenter bool
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y, radius, speed float64, recenter bool) *Player {
	return &Player{
		X:        x,
		Y:        y,
		Radius:   radius,
		Color:    color.White,
		Speed:    speed,
		recenter: recenter,
	}
}

func (p *Player) Kind() Kind                   { return KindPlayer }
func (p *Player) Position() (float64, float64) { return p.X, p.Y }
func (p *Player) CollisionRadius() float64     { return p.Radius }

// Move sets the velocity component of the direction to ±speed
func (p *Player) Move(d Direction) {
	switch d {
	case DirectionUp:
		p.DY = -p.Speed
	case DirectionDown:
		p.DY = p.Speed
	case DirectionLeft:
		p.DX = -p.Speed
	case DirectionRight:
		p.DX = p.Speed
	}
}

// Stop zeroes the velocity component on the axis of the direction
func (p *Player) Stop(d Direction) {
	switch d {
	case DirectionUp, DirectionDown:
		p.DY = 0
	case DirectionLeft, DirectionRight:
		p.DX = 0
	}
}

// Update advances the player one frame and keeps the circle on the canvas.
//
// With recentering on, the accumulated position is discarded each frame: the
// player sits at the center offset by a single frame of velocity.
func (p *Player) Update(width, height float64) {
	p.X += p.DX
	p.Y += p.DY

	if p.recenter {
		p.X = width / 2
		p.Y = height / 2
		if p.DX != 0 {
			p.X += p.DX
		}
		if p.DY != 0 {
			p.Y += p.DY
		}
	}

	if p.X-p.Radius < 0 {
		p.X = p.Radius
	}
	if p.X+p.Radius > width {
		p.X = width - p.Radius
	}
	if p.Y-p.Radius < 0 {
		p.Y = p.Radius
	}
	if p.Y+p.Radius > height {
		p.Y = height - p.Radius
	}
}

// Projectile is a shot fired from the player toward a click
type Projectile struct {
	X, Y   float64
	Radius float64
	Color  color.Color

	// Velocity in pixels per frame, fixed at creation
	VX, VY float64

	dead bool
}

// NewProjectile creates a projectile at (x, y) heading to (targetX, targetY)
func NewProjectile(x, y, targetX, targetY, radius, speed float64) *Projectile {
	angle := math.Atan2(targetY-y, targetX-x)
	return &Projectile{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  color.RGBA{R: 255, A: 255},
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
	}
}

func (p *Projectile) Kind() Kind                   { return KindProjectile }
func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }
func (p *Projectile) CollisionRadius() float64     { return p.Radius }

// Update moves the projectile along its velocity
func (p *Projectile) Update() {
	p.X += p.VX
	p.Y += p.VY
}

// OffScreen reports whether the whole circle has left the canvas
func (p *Projectile) OffScreen(width, height float64) bool {
	return p.X+p.Radius < 0 ||
		p.X-p.Radius > width ||
		p.Y+p.Radius < 0 ||
		p.Y-p.Radius > height
}

// MarkDestroyed schedules the projectile for removal at the end of the frame
func (p *Projectile) MarkDestroyed() { p.dead = true }

// IsDestroyed returns true if the projectile is marked for removal
func (p *Projectile) IsDestroyed() bool { return p.dead }

// Enemy chases the player and is drawn with an image
type Enemy struct {
	X, Y   float64
	Radius float64
	Image  string
	Speed  float64

	// Velocity of the last frame; recomputed on every update
	VX, VY float64

	dead bool
}

// NewEnemy creates a stationary enemy at (x, y)
func NewEnemy(x, y, radius, speed float64, image string) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Radius: radius,
		Image:  image,
		Speed:  speed,
	}
}

func (e *Enemy) Kind() Kind                   { return KindEnemy }
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }
func (e *Enemy) CollisionRadius() float64     { return e.Radius }

// Update points the velocity at (targetX, targetY) and moves one step
func (e *Enemy) Update(targetX, targetY float64) {
	angle := math.Atan2(targetY-e.Y, targetX-e.X)
	e.VX = math.Cos(angle) * e.Speed
	e.VY = math.Sin(angle) * e.Speed
	e.X += e.VX
	e.Y += e.VY
}

// MarkDestroyed schedules the enemy for removal at the end of the frame
func (e *Enemy) MarkDestroyed() { e.dead = true }

// IsDestroyed returns true if the enemy is marked for removal
func (e *Enemy) IsDestroyed() bool { return e.dead }
