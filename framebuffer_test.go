package schwarz

import "testing"

func TestFramebufferAddressing(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	p := Pixel{A: 1, R: 2, G: 3, B: 4}
	fb.Set(2, 1, p)

	if got := fb.At(2, 1); got != p {
		t.Errorf("At(2,1) = %+v, want %+v", got, p)
	}
	// Flat layout: (x, y) lives at x + y*stride.
	if got := fb.Pix()[2+1*fb.Stride()]; got != p {
		t.Errorf("Pix()[2+stride] = %+v, want %+v", got, p)
	}
}

func TestFramebufferStridePadding(t *testing.T) {
	const width, height, stride = 4, 3, 6

	pix := make([]Pixel, stride*height)
	sentinel := Pixel{A: 9, R: 9, G: 9, B: 9}
	for i := range pix {
		pix[i] = sentinel
	}

	fb, err := WrapFramebuffer(pix, width, height, stride)
	if err != nil {
		t.Fatalf("WrapFramebuffer: %v", err)
	}

	p := Pixel{R: 7}
	fb.Set(3, 2, p)
	if got := pix[3+2*stride]; got != p {
		t.Errorf("pix[3+2*stride] = %+v, want %+v", got, p)
	}
	// Padding cells between width and stride stay the caller's.
	if got := pix[width+2*stride]; got != sentinel {
		t.Errorf("padding cell overwritten: %+v", got)
	}
}

func TestWrapFramebufferValidation(t *testing.T) {
	pix := make([]Pixel, 10)

	if _, err := WrapFramebuffer(pix, 4, 3, 2); err == nil {
		t.Error("stride < width: want error")
	}
	if _, err := WrapFramebuffer(pix, 4, 3, 4); err == nil {
		t.Error("short buffer: want error")
	}
	if _, err := WrapFramebuffer(pix, 0, 3, 4); err == nil {
		t.Error("zero width: want error")
	}
}

func TestFramebufferBoundsPanic(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	cases := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) did not panic", c[0], c[1])
				}
			}()
			fb.At(c[0], c[1])
		}()
	}
}
