/*
Package rasterfmt encodes images into the raster file formats the
generator emits, selected by file extension.

PNG and BMP are lossless and carry the grayscale buffer unchanged.
JPEG takes a quality option. GIF is palette-bound, so the image is
quantized with a median-cut quantizer before encoding.
*/
package rasterfmt

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

// Format identifies an output encoding.
type Format int

const (
	PNG Format = iota
	BMP
	JPEG
	GIF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	}
	return "unknown"
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + f.String()
}

// ParsePath maps the extension of path to its Format.
func ParsePath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	}
	return 0, fmt.Errorf("rasterfmt: no encoder for %q", filepath.Ext(path))
}

// Options adjusts encoder behaviour where the format allows it.
type Options struct {
	// Quality is the JPEG quality, 1-100. Zero selects the encoder
	// default.
	Quality int
}

const maxColors = 256

// Encode writes m to w in the given format.
func Encode(w io.Writer, m image.Image, f Format, o *Options) error {
	switch f {
	case PNG:
		return png.Encode(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case JPEG:
		var jo *jpeg.Options
		if o != nil && o.Quality > 0 {
			jo = &jpeg.Options{Quality: o.Quality}
		}
		return jpeg.Encode(w, m, jo)
	case GIF:
		q := quantize.MedianCutQuantizer{}
		p := q.Quantize(make(color.Palette, 0, maxColors), m)
		pm := image.NewPaletted(m.Bounds(), p)
		draw.Draw(pm, pm.Bounds(), m, m.Bounds().Min, draw.Src)
		return gif.Encode(w, pm, nil)
	}
	return fmt.Errorf("rasterfmt: unknown format %d", f)
}
