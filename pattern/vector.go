package pattern

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// The shape-heavy variants render through a vector context and are
// flattened to grayscale afterwards.

func newContext(w, h, bg int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetRGB255(bg, bg, bg)
	dc.Clear()
	dc.SetRGB255(black, black, black)
	return dc
}

func flatten(dc *gg.Context) *image.Gray {
	src := dc.Image()
	b := src.Bounds()
	m := image.NewGray(b)
	draw.Draw(m, b, src, b.Min, draw.Src)
	return m
}

func circles(size int) *image.Gray {
	dc := newContext(size, size, white)
	c := float64(size) / 2
	dc.SetLineWidth(3)
	for r := 5; r < size/2; r += 10 {
		dc.DrawCircle(c, c, float64(r))
		dc.Stroke()
	}
	return flatten(dc)
}

// logo draws "EP" from filled bars and a stroked bowl. Coordinates
// are laid out on an 80 pixel grid and scaled to the requested size.
func logo(size int) *image.Gray {
	dc := newContext(size, size, white)
	s := float64(size) / 80
	m := 10 * s

	// E
	dc.DrawRectangle(m, m, 16*s, 61*s)
	dc.Fill()
	dc.DrawRectangle(m, m, 26*s, 11*s)
	dc.Fill()
	dc.DrawRectangle(m, m+25*s, 21*s, 11*s)
	dc.Fill()
	dc.DrawRectangle(m, m+50*s, 26*s, 11*s)
	dc.Fill()

	// P
	p := m + 35*s
	dc.DrawRectangle(p, m, 11*s, 61*s)
	dc.Fill()
	dc.DrawEllipse(p+22.5*s, m+15*s, 12.5*s, 15*s)
	dc.SetLineWidth(3 * s)
	dc.Stroke()

	return flatten(dc)
}

func icon(g Icon) *image.Gray {
	switch g {
	case Battery:
		return battery()
	case Wifi:
		return wifi()
	case Clock:
		return clock()
	default:
		return warning()
	}
}

func battery() *image.Gray {
	dc := newContext(32, 16, white)
	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 3, 27, 10)
	dc.Stroke()
	// terminal
	dc.DrawRectangle(28, 5, 4, 6)
	dc.Fill()
	// charge level
	dc.DrawRectangle(3, 5, 10, 6)
	dc.Fill()
	return flatten(dc)
}

func wifi() *image.Gray {
	dc := newContext(24, 24, white)
	cx, cy := 12.0, 20.0
	dc.SetLineWidth(2)
	for _, r := range []float64{4, 8, 12} {
		dc.DrawArc(cx, cy, r, gg.Radians(225), gg.Radians(315))
		dc.Stroke()
	}
	dc.DrawCircle(cx, cy, 2)
	dc.Fill()
	return flatten(dc)
}

func clock() *image.Gray {
	dc := newContext(32, 32, white)
	dc.SetLineWidth(2)
	dc.DrawCircle(16, 16, 14)
	dc.Stroke()
	// hour and minute hands
	dc.DrawLine(16, 16, 16, 8)
	dc.Stroke()
	dc.DrawLine(16, 16, 22, 16)
	dc.Stroke()
	return flatten(dc)
}

func warning() *image.Gray {
	dc := newContext(32, 32, white)
	dc.SetLineWidth(2)
	dc.MoveTo(16, 2)
	dc.LineTo(30, 30)
	dc.LineTo(2, 30)
	dc.ClosePath()
	dc.Stroke()
	dc.DrawLine(16, 10, 16, 20)
	dc.Stroke()
	dc.DrawCircle(16, 25, 2)
	dc.Fill()
	return flatten(dc)
}

// Scene tones, light to dark.
const (
	toneSky    = 200
	toneWindow = 150
	toneGround = 100
	toneHouse  = 50
	toneRoof   = 30
)

func photo(size int) *image.Gray {
	dc := newContext(size, size, 128)
	f := float64(size)
	half := f / 2

	dc.SetRGB255(toneSky, toneSky, toneSky)
	dc.DrawRectangle(0, 0, f, half)
	dc.Fill()

	dc.SetRGB255(toneGround, toneGround, toneGround)
	dc.DrawRectangle(0, half, f, f-half)
	dc.Fill()

	houseX := f / 3
	houseY := half - 30
	houseW := f / 3
	houseH := 40.0

	dc.SetRGB255(toneHouse, toneHouse, toneHouse)
	dc.DrawRectangle(houseX, houseY, houseW, houseH)
	dc.Fill()

	dc.SetRGB255(toneRoof, toneRoof, toneRoof)
	dc.MoveTo(houseX-10, houseY)
	dc.LineTo(houseX+houseW/2, houseY-20)
	dc.LineTo(houseX+houseW+10, houseY)
	dc.ClosePath()
	dc.Fill()

	const win = 10
	dc.SetRGB255(toneWindow, toneWindow, toneWindow)
	dc.DrawRectangle(houseX+10, houseY+10, win, win)
	dc.Fill()
	dc.DrawRectangle(houseX+houseW-20, houseY+10, win, win)
	dc.Fill()

	return flatten(dc)
}
