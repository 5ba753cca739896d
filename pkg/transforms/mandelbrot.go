package transforms

// Mandelbrot is the map z -> z*z + c, iterated from z = 0.
type Mandelbrot struct {
	// MaxIterations caps the number of iterations for points which never escape.
	MaxIterations int
}

// Next applies the map once.
func (m Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

// Escape returns the number of iterations before the orbit of c leaves the
// circle of radius 2, or MaxIterations if it stays inside.
//
// The loop works on float64 components and compares the squared magnitude
// against 4 rather than calling cmplx.Abs. There are no cardioid or bulb
// shortcuts: every point pays for its full orbit.
func (m Mandelbrot) Escape(cx, cy float64) int {
	var zx, zy float64
	count := 0

	for zx*zx+zy*zy <= 4.0 && count < m.MaxIterations {
		next := zx*zx - zy*zy + cx
		zy = 2.0*zx*zy + cy
		zx = next
		count++
	}

	return count
}
