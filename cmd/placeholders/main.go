package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

// createEnemyImage draws a filled circle with a dark rim and two eyes
func createEnemyImage(filename string, size int, clr color.Color) error {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	rim := color.NRGBA{R: 90, G: 10, B: 10, A: 255}
	eye := color.NRGBA{R: 255, G: 230, B: 90, A: 255}
	center := float64(size) / 2
	radius := center - 1
	eyeOffset := float64(size) / 8
	eyeSize := float64(size) / 13

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d := math.Hypot(dx, dy)

			switch {
			case d > radius:
				continue
			case d > radius-3:
				img.Set(x, y, rim)
			case math.Abs(math.Abs(dx)-eyeOffset) < eyeSize && math.Abs(dy+eyeOffset*0.75) < eyeSize:
				img.Set(x, y, eye)
			default:
				img.Set(x, y, clr)
			}
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func main() {
	dir := flag.String("dir", "assets", "directory to write the sprites to")
	size := flag.Int("size", 64, "sprite size in pixels")
	flag.Parse()

	path := filepath.Join(*dir, "enemy.png")
	if err := createEnemyImage(path, *size, color.NRGBA{R: 220, G: 60, B: 60, A: 255}); err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	fmt.Printf("wrote %s\n", path)
}
