// Package escape computes escape-time grids over a rectangle of the complex plane.
package escape

import (
	"github.com/willbeason/mandelbrot-bench/pkg/transforms"
)

const (
	Width  = 1000
	Height = 1000

	MaxIterations = 256

	MinX = -2.0
	MaxX = 1.0
	MinY = -1.5
	MaxY = 1.5
)

// Bounds is the region of the complex plane mapped onto the pixel grid.
// X is the real axis and Y the imaginary axis.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Plane pairs a region of the complex plane with the iteration used to
// colour each point in it.
type Plane struct {
	Bounds
	Iterations transforms.Mandelbrot
}

// Default is the benchmark configuration.
var Default = Plane{
	Bounds: Bounds{
		MinX: MinX,
		MaxX: MaxX,
		MinY: MinY,
		MaxY: MaxY,
	},
	Iterations: transforms.Mandelbrot{MaxIterations: MaxIterations},
}

func (p Plane) steps(width, height int) (float64, float64) {
	return (p.MaxX - p.MinX) / float64(width), (p.MaxY - p.MinY) / float64(height)
}

// Point returns the complex coordinate of pixel (col, row) in a width by height grid.
// Pixel (0, 0) is exactly (MinX, MinY); there is no half-pixel offset.
func (p Plane) Point(col, row, width, height int) (float64, float64) {
	xStep, yStep := p.steps(width, height)
	return p.MinX + float64(col)*xStep, p.MinY + float64(row)*yStep
}

// Grid returns height rows of width escape counts.
//
// A new grid is allocated on every call, row by row, and handed to the caller.
func (p Plane) Grid(width, height int) [][]int {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	result := make([][]int, height)
	xStep, yStep := p.steps(width, height)

	for y := 0; y < height; y++ {
		result[y] = make([]int, width)
		cy := p.MinY + float64(y)*yStep

		for x := 0; x < width; x++ {
			cx := p.MinX + float64(x)*xStep
			result[y][x] = p.Iterations.Escape(cx, cy)
		}
	}

	return result
}

// Grid computes the escape grid for the Default plane.
func Grid(width, height int) [][]int {
	return Default.Grid(width, height)
}
