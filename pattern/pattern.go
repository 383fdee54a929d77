/*
Package pattern procedurally generates grayscale test images.

Each generator is a pure function of its Descriptor: the same
descriptor always produces the bit-identical pixel buffer. The noise
grid derives all of its randomness from the descriptor seed rather
than any process-wide source.
*/
package pattern

import (
	"fmt"
	"image"
)

// Intensity values; 0 is black, 255 is white.
const (
	black = 0x00
	white = 0xff
)

// Kind selects which synthetic image a Descriptor produces.
type Kind int

const (
	KindCheckerboard Kind = iota
	KindGradient
	KindCircles
	KindLogo
	KindIcon
	KindPhoto
	KindText
	KindNoise
)

func (k Kind) String() string {
	switch k {
	case KindCheckerboard:
		return "checkerboard"
	case KindGradient:
		return "gradient"
	case KindCircles:
		return "circles"
	case KindLogo:
		return "logo"
	case KindIcon:
		return "icon"
	case KindPhoto:
		return "photo"
	case KindText:
		return "text"
	case KindNoise:
		return "noise"
	}
	return "unknown"
}

// Direction is the axis of a gradient ramp.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal
)

// Icon selects one of the fixed status glyphs.
type Icon int

const (
	Battery Icon = iota
	Wifi
	Clock
	Warning
)

func (i Icon) String() string {
	switch i {
	case Battery:
		return "battery"
	case Wifi:
		return "wifi"
	case Clock:
		return "clock"
	case Warning:
		return "warning"
	}
	return "unknown"
}

// Descriptor identifies one synthetic image and carries the
// parameters relevant to its Kind. The constructor functions populate
// sensible defaults; a zero Descriptor is not valid.
type Descriptor struct {
	Kind   Kind
	Width  int
	Height int

	// Square is the checkerboard cell side in pixels.
	Square int

	// Axis is the gradient ramp direction.
	Axis Direction

	Icon Icon

	// Text label parameters. FontPath optionally names a TrueType
	// file tried before the built-in fallback chain.
	Text     string
	FontPath string
	FontSize float64

	// Noise grid parameters.
	Seed int64
	Cell int
}

// NewCheckerboard describes a size by size board of square-sided
// cells, black where the cell coordinate sum is even.
func NewCheckerboard(size, square int) Descriptor {
	return Descriptor{Kind: KindCheckerboard, Width: size, Height: size, Square: square}
}

// NewGradient describes a linear intensity ramp along the given axis.
func NewGradient(width, height int, axis Direction) Descriptor {
	return Descriptor{Kind: KindGradient, Width: width, Height: height, Axis: axis}
}

// NewCircles describes concentric stroked circles centred on a square
// canvas.
func NewCircles(size int) Descriptor {
	return Descriptor{Kind: KindCircles, Width: size, Height: size}
}

// NewLogo describes the "EP" glyph logo. The drawing is laid out on
// an 80 pixel grid and scales with size.
func NewLogo(size int) Descriptor {
	return Descriptor{Kind: KindLogo, Width: size, Height: size}
}

// NewIcon describes one of the status glyphs. Icons have fixed
// intrinsic dimensions which the descriptor reports.
func NewIcon(icon Icon) Descriptor {
	d := Descriptor{Kind: KindIcon, Icon: icon, Width: 32, Height: 32}
	switch icon {
	case Battery:
		d.Width, d.Height = 32, 16
	case Wifi:
		d.Width, d.Height = 24, 24
	}
	return d
}

// NewPhoto describes the flat-toned sky/ground/house scene.
func NewPhoto(size int) Descriptor {
	return Descriptor{Kind: KindPhoto, Width: size, Height: size}
}

// NewText describes a centred text label.
func NewText(text string, width, height int) Descriptor {
	return Descriptor{Kind: KindText, Width: width, Height: height, Text: text, FontSize: 24}
}

// NewNoise describes the QR-like random cell grid with corner
// markers.
func NewNoise(size int, seed int64) Descriptor {
	return Descriptor{Kind: KindNoise, Width: size, Height: size, Seed: seed, Cell: 4}
}

// Generate renders the image described by d. It is deterministic and
// has no side effects; the caller owns the returned buffer.
func Generate(d Descriptor) (*image.Gray, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("pattern: invalid dimensions %dx%d", d.Width, d.Height)
	}

	switch d.Kind {
	case KindCheckerboard:
		if d.Square <= 0 {
			return nil, fmt.Errorf("pattern: invalid square size %d", d.Square)
		}
		return checkerboard(d.Width, d.Height, d.Square), nil
	case KindGradient:
		return gradient(d.Width, d.Height, d.Axis), nil
	case KindCircles:
		return circles(d.Width), nil
	case KindLogo:
		return logo(d.Width), nil
	case KindIcon:
		return icon(d.Icon), nil
	case KindPhoto:
		return photo(d.Width), nil
	case KindText:
		return textLabel(d), nil
	case KindNoise:
		if d.Cell <= 0 {
			return nil, fmt.Errorf("pattern: invalid cell size %d", d.Cell)
		}
		return noise(d.Width, d.Seed, d.Cell), nil
	}

	return nil, fmt.Errorf("pattern: unknown kind %d", d.Kind)
}
