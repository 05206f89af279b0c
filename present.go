package schwarz

// RGBA flattens the framebuffer into straight RGBA bytes with alpha forced
// opaque, the layout WritePixels and image/png expect. The renderer's
// channel assignment (R holds the blue accumulator and B the red one, see
// [Renderer.Render]) is undone here.
//
// dst is reused when it has enough capacity; the returned slice is always
// exactly width*height*4 bytes with no row padding.
func (f *Framebuffer) RGBA(dst []byte) []byte {
	need := f.width * f.height * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]

	i := 0
	for y := 0; y < f.height; y++ {
		for _, p := range f.row(y) {
			dst[i+0] = p.B
			dst[i+1] = p.G
			dst[i+2] = p.R
			dst[i+3] = 0xff
			i += 4
		}
	}
	return dst
}
