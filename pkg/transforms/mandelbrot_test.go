package transforms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// escapeComplex iterates Next instead of the float64 components.
func escapeComplex(m Mandelbrot, c complex128) int {
	var z complex128
	count := 0
	for real(z)*real(z)+imag(z)*imag(z) <= 4.0 && count < m.MaxIterations {
		z = m.Next(z, c)
		count++
	}
	return count
}

func TestMandelbrot_Escape(t *testing.T) {
	m := Mandelbrot{MaxIterations: 256}

	tcs := []struct {
		name   string
		cx, cy float64
		want   int
	}{
		{name: "origin never escapes", cx: 0, cy: 0, want: 256},
		{name: "period two cycle", cx: -1, cy: 0, want: 256},
		// The orbit of -2 sits on the radius 2 circle, which counts as inside.
		{name: "tip of the set", cx: -2, cy: 0, want: 256},
		{name: "escapes after one step", cx: 2, cy: 2, want: 1},
		{name: "real axis outside", cx: 0.5, cy: 0, want: 5},
		{name: "corner of the default plane", cx: -2, cy: -1.5, want: 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Escape(tc.cx, tc.cy)
			require.Equal(t, tc.want, got)
			require.Equal(t, escapeComplex(m, complex(tc.cx, tc.cy)), got)
		})
	}
}

func TestMandelbrot_Escape_Cap(t *testing.T) {
	for _, maxIterations := range []int{0, 1, 50, 1000} {
		m := Mandelbrot{MaxIterations: maxIterations}
		require.Equal(t, maxIterations, m.Escape(0, 0))
		require.LessOrEqual(t, m.Escape(1, 1.5), maxIterations)
	}
}

func TestMandelbrot_Escape_FarOutside(t *testing.T) {
	m := Mandelbrot{MaxIterations: 256}

	for _, c := range []complex128{complex(1, 1.5), complex(-2, 1.5), complex(1, -1.5), complex(3, 0)} {
		require.LessOrEqual(t, m.Escape(real(c), imag(c)), 5, "c = %v", c)
	}
}

func TestMandelbrot_Next(t *testing.T) {
	m := Mandelbrot{}
	require.Equal(t, complex(0.5, 0), m.Next(0, complex(0.5, 0)))
	require.Equal(t, complex(-1, 2), m.Next(complex(1, 1), complex(-1, 0)))
}
