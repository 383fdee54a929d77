package pattern

import (
	"image"
	"image/color"
	"math/rand"
)

// The checkerboard, gradient and noise variants write pixels directly
// so that their per-pixel properties (cell parity, truncated ramp,
// seeded reproducibility) hold exactly.

func newCanvas(w, h int, bg uint8) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = bg
	}
	return m
}

func checkerboard(w, h, square int) *image.Gray {
	m := newCanvas(w, h, white)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ((x/square)+(y/square))%2 == 0 {
				m.SetGray(x, y, color.Gray{Y: black})
			}
		}
	}
	return m
}

func gradient(w, h int, axis Direction) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var f float64
			switch axis {
			case Horizontal:
				f = float64(x) / float64(w)
			case Vertical:
				f = float64(y) / float64(h)
			default:
				f = float64(x+y) / float64(w+h)
			}
			m.SetGray(x, y, color.Gray{Y: uint8(f * 255)})
		}
	}
	return m
}

const (
	markerSize   = 12
	markerStroke = 2
)

func noise(size int, seed int64, cell int) *image.Gray {
	m := newCanvas(size, size, white)

	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			if rng.Float64() > 0.5 {
				fillRect(m, x, y, cell, cell, black)
			}
		}
	}

	corners := []image.Point{
		{0, 0},
		{size - markerSize, 0},
		{0, size - markerSize},
	}
	for _, p := range corners {
		strokeRect(m, p.X, p.Y, markerSize, markerSize, markerStroke, black)
	}

	return m
}

func fillRect(m *image.Gray, x, y, w, h int, v uint8) {
	r := image.Rect(x, y, x+w, y+h).Intersect(m.Rect)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			m.SetGray(xx, yy, color.Gray{Y: v})
		}
	}
}

func strokeRect(m *image.Gray, x, y, w, h, stroke int, v uint8) {
	fillRect(m, x, y, w, stroke, v)
	fillRect(m, x, y+h-stroke, w, stroke, v)
	fillRect(m, x, y, stroke, h, v)
	fillRect(m, x+w-stroke, y, stroke, h, v)
}
