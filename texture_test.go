package schwarz

import (
	"image"
	"image/color"
	"testing"
)

// checker2x1 returns a 2x1 texture: texel 0 opaque red, texel 1 opaque blue.
func checker2x1() *Texture {
	return &Texture{
		pix: []uint8{
			255, 0, 0, 255,
			0, 0, 255, 255,
		},
		width:  2,
		height: 1,
	}
}

func TestSolidTextureSamplesEverywhere(t *testing.T) {
	c := Pixel{A: 255, R: 10, G: 20, B: 30}
	tex := NewSolidTexture(c)

	coords := [][2]float32{{0, 0}, {0.5, 0.5}, {-0.7, 3.2}, {1000, -1000}}
	for _, uv := range coords {
		if got := tex.Sample(uv[0], uv[1]); got != c {
			t.Errorf("Sample(%f, %f) = %+v, want %+v", uv[0], uv[1], got, c)
		}
	}
}

func TestSampleTexelCenterIsExact(t *testing.T) {
	tex := checker2x1()

	// Texel centers: u = (i+0.5)/width, so the filter weights collapse to
	// a single texel.
	red := tex.Sample(0.25, 0.5)
	if red.R != 255 || red.G != 0 || red.B != 0 || red.A != 255 {
		t.Errorf("texel 0 = %+v, want pure red", red)
	}
	blue := tex.Sample(0.75, 0.5)
	if blue.B != 255 || blue.R != 0 {
		t.Errorf("texel 1 = %+v, want pure blue", blue)
	}
}

func TestSampleWrapsAround(t *testing.T) {
	tex := checker2x1()

	base := tex.Sample(0.25, 0.5)
	for _, u := range []float32{1.25, 2.25, -0.75, -1.75} {
		if got := tex.Sample(u, 0.5); got != base {
			t.Errorf("Sample(%f) = %+v, want %+v (wrap of 0.25)", u, got, base)
		}
	}
}

func TestSampleBilinearMidpoint(t *testing.T) {
	tex := checker2x1()

	// Halfway between the red and blue texel centers: both weighted 0.5,
	// and 255*0.5 truncates to 127.
	got := tex.Sample(0.5, 0.5)
	want := Pixel{A: 255, R: 127, G: 0, B: 127}
	if got != want {
		t.Errorf("Sample(0.5) = %+v, want %+v", got, want)
	}
}

func TestNewTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 4, G: 5, B: 6, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	tex := NewTextureFromImage(img)
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tex.Width(), tex.Height())
	}

	got := tex.Sample(0.25, 0.25)
	want := Pixel{A: 255, R: 200, G: 100, B: 50}
	if got != want {
		t.Errorf("texel (0,0) = %+v, want %+v", got, want)
	}
	got = tex.Sample(0.75, 0.75)
	want = Pixel{A: 255, R: 7, G: 8, B: 9}
	if got != want {
		t.Errorf("texel (1,1) = %+v, want %+v", got, want)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	if _, err := LoadTexture(t.TempDir() + "/nope.png"); err == nil {
		t.Error("LoadTexture on a missing file: want error")
	}
}

func TestClampByte(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{0.9, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%f) = %d, want %d", c.in, got, c.want)
		}
	}
}
