package schwarz

import (
	"fmt"
	"image"
	"os"

	xdraw "golang.org/x/image/draw"

	// Register the decoders for the texture formats we expect on disk.
	_ "image/jpeg"
	_ "image/png"
)

// Texture is a read-only RGBA image sampled with normalized, wrap-around
// coordinates and bilinear filtering. Used for the equirectangular sky and
// event-horizon sphere maps.
type Texture struct {
	pix    []uint8 // RGBA, 4 bytes per texel
	width  int
	height int
}

// NewTextureFromImage converts any image.Image into a Texture.
func NewTextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return &Texture{pix: rgba.Pix, width: b.Dx(), height: b.Dy()}
}

// NewSolidTexture returns a 1x1 texture of the given color. Sampling it
// yields that color at every coordinate. The viewer uses a black one when no
// event-horizon texture is supplied.
func NewSolidTexture(p Pixel) *Texture {
	return &Texture{pix: []uint8{p.R, p.G, p.B, p.A}, width: 1, height: 1}
}

// LoadTexture decodes a PNG or JPEG file into a Texture.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schwarz: open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("schwarz: decode texture %s: %w", path, err)
	}
	return NewTextureFromImage(img), nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Sample returns the bilinearly filtered texel at normalized coordinates
// (u, v). Coordinates outside [0, 1) wrap, so every finite coordinate
// resolves to a valid sample; sampling never fails. Channel values are
// scaled from [0, 1] by 255 and truncated to bytes.
func (t *Texture) Sample(u, v float32) Pixel {
	if t.width == 1 && t.height == 1 {
		// Filtering a single texel always yields that texel.
		return Pixel{R: t.pix[0], G: t.pix[1], B: t.pix[2], A: t.pix[3]}
	}

	// Texel centers sit at (i+0.5)/width, matching a linear REPEAT sampler.
	fu := u*float32(t.width) - 0.5
	fv := v*float32(t.height) - 0.5

	iu := floor32(fu)
	iv := floor32(fv)
	fx := fu - iu
	fy := fv - iv

	x0 := wrapIndex(int(iu), t.width)
	x1 := wrapIndex(int(iu)+1, t.width)
	y0 := wrapIndex(int(iv), t.height)
	y1 := wrapIndex(int(iv)+1, t.height)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	var out Pixel
	for c := 0; c < 4; c++ {
		s := w00*t.texel(x0, y0, c) +
			w10*t.texel(x1, y0, c) +
			w01*t.texel(x0, y1, c) +
			w11*t.texel(x1, y1, c)
		b := clampByte(s * 255)
		switch c {
		case 0:
			out.R = b
		case 1:
			out.G = b
		case 2:
			out.B = b
		case 3:
			out.A = b
		}
	}
	return out
}

// texel returns channel c of texel (x, y) as a [0, 1] float.
func (t *Texture) texel(x, y, c int) float32 {
	return float32(t.pix[(y*t.width+x)*4+c]) / 255
}

// wrapIndex brings i into [0, n) with wrap-around addressing.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
