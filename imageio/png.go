// Package imageio writes a rendered image buffer out as an 8-bit RGB PNG.
// This is a thin adapter over the standard library's image/png encoder —
// PNG encoding is an explicit out-of-scope collaborator (it takes a width,
// height, and packed 8-bit RGB buffer and is not part of the intersection
// pipeline), so no third-party codec is warranted here.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gazed/tracer/render"
)

// WritePNG encodes img as an 8-bit RGB PNG (no alpha) to path, row-major,
// left-to-right top-to-bottom. Each linear [0,1] channel value is converted
// with min(255, floor(linear*255)); the integrator has already baked gamma
// correction into img's values.
func WritePNG(path string, img *render.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for c := 0; c < img.Width; c++ {
		for r := 0; r < img.Height; r++ {
			p := img.Pixels[c][r]
			out.SetNRGBA(c, r, color.NRGBA{
				R: toByte(p.R),
				G: toByte(p.G),
				B: toByte(p.B),
				A: 255,
			})
		}
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("imageio: flush %s: %w", path, err)
	}
	return nil
}

// toByte converts a linear [0,1] channel value to an 8-bit sample.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
