package pattern

import (
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Well-known font locations tried before the embedded face.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
}

func newFace(data []byte, points float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// resolveFace returns the best available face for a label. A missing
// or unreadable font file is not an error; the chain ends at the
// fixed-size basicfont face which always exists.
func resolveFace(path string, points float64) font.Face {
	paths := fontPaths
	if path != "" {
		paths = append([]string{path}, paths...)
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if face, err := newFace(data, points); err == nil {
			return face
		}
	}

	if face, err := newFace(goregular.TTF, points); err == nil {
		return face
	}

	return basicfont.Face7x13
}

func textLabel(d Descriptor) *image.Gray {
	points := d.FontSize
	if points <= 0 {
		points = 24
	}

	dc := newContext(d.Width, d.Height, white)
	dc.SetFontFace(resolveFace(d.FontPath, points))
	dc.DrawStringAnchored(d.Text, float64(d.Width)/2, float64(d.Height)/2, 0.5, 0.5)

	return flatten(dc)
}
