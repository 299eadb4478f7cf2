package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circleshooter/world"
)

// Renderer draws the world onto a persistent canvas. The canvas is never
// cleared; each frame lays a translucent black fill over the previous one,
// which leaves fading trails behind moving entities.
type Renderer struct {
	canvas        *ebiten.Image
	width, height int
	loader        *ImageLoader
	trail         color.Color
}

// NewRenderer creates a renderer for a canvas of the given size
func NewRenderer(width, height int, trailAlpha uint8, loader *ImageLoader) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		loader: loader,
		trail:  color.RGBA{A: trailAlpha},
	}
}

// Render advances the canvas by one frame and copies it to the screen
func (r *Renderer) Render(screen *ebiten.Image, w *world.World) {
	// Created on first draw, once the graphics driver is up
	if r.canvas == nil {
		r.canvas = ebiten.NewImage(r.width, r.height)
		r.canvas.Fill(color.Black)
	}

	bounds := r.canvas.Bounds()
	vector.FillRect(r.canvas, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), r.trail, false)

	for _, entity := range w.Entities() {
		r.RenderEntity(r.canvas, entity)
	}

	screen.DrawImage(r.canvas, nil)
}

// RenderEntity renders a single entity
func (r *Renderer) RenderEntity(dst *ebiten.Image, entity world.Entity) {
	switch e := entity.(type) {
	case *world.Player:
		vector.FillCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius), e.Color, true)
	case *world.Projectile:
		vector.FillCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius), e.Color, true)
	case *world.Enemy:
		r.renderEnemy(dst, e)
	}
}

// renderEnemy draws the enemy image centered on it, sized to its diameter.
// Nothing is drawn if the image could not be loaded.
func (r *Renderer) renderEnemy(dst *ebiten.Image, e *world.Enemy) {
	img, err := r.loader.Load(e.Image)
	if err != nil {
		return
	}

	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	diameter := e.Radius * 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(diameter/float64(size.X), diameter/float64(size.Y))
	op.GeoM.Translate(e.X-e.Radius, e.Y-e.Radius)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
