package schwarz

import "fmt"

// Framebuffer is a bounds-checked 2D view over a linear pixel buffer.
// The pixel at (x, y) lives at index x + y*stride; the stride may exceed the
// width when the caller's buffer has row padding.
type Framebuffer struct {
	pix    []Pixel
	width  int
	height int
	stride int
}

// NewFramebuffer allocates a framebuffer with no row padding.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("schwarz: invalid framebuffer size %dx%d", width, height))
	}
	return &Framebuffer{
		pix:    make([]Pixel, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// WrapFramebuffer views an existing pixel buffer as a framebuffer, preserving
// the caller's row stride. The buffer must be large enough to hold every
// addressable pixel.
func WrapFramebuffer(pix []Pixel, width, height, stride int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("schwarz: invalid framebuffer size %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("schwarz: framebuffer stride %d is less than width %d", stride, width)
	}
	if need := stride*(height-1) + width; len(pix) < need {
		return nil, fmt.Errorf("schwarz: framebuffer needs %d pixels, buffer has %d", need, len(pix))
	}
	return &Framebuffer{pix: pix, width: width, height: height, stride: stride}, nil
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Stride returns the row stride in pixels.
func (f *Framebuffer) Stride() int { return f.stride }

// Pix returns the backing pixel slice. Padding pixels (between width and
// stride) belong to the caller and are never written by the renderer.
func (f *Framebuffer) Pix() []Pixel { return f.pix }

// At returns the pixel at (x, y).
func (f *Framebuffer) At(x, y int) Pixel {
	f.check(x, y)
	return f.pix[x+y*f.stride]
}

// Set writes the pixel at (x, y).
func (f *Framebuffer) Set(x, y int, p Pixel) {
	f.check(x, y)
	f.pix[x+y*f.stride] = p
}

// row returns the addressable pixels of row y, excluding padding.
func (f *Framebuffer) row(y int) []Pixel {
	return f.pix[y*f.stride : y*f.stride+f.width]
}

func (f *Framebuffer) check(x, y int) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("schwarz: pixel (%d, %d) out of framebuffer bounds %dx%d",
			x, y, f.width, f.height))
	}
}
