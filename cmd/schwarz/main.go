// Command schwarz is an interactive Schwarzschild black hole visualizer.
//
// It precomputes an outcome table for a fan of light rays, then renders the
// lensed view of an equirectangular skybox (and optional event-horizon
// surface texture) every frame. Move the mouse to look around; press S to
// save a screenshot; press Escape to quit.
//
// Usage:
//
//	schwarz -sky sky.png [-surface surface.png] [-width 1600] [-height 1200]
//	        [-aa 4] [-outcomes 8192] [-fps]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/schwarz"
)

const windowTitle = "Schwarzschild black hole visualizer"

// pointDuration is how long the smoothed pointer takes to reach the
// physical cursor. Retargeted every time the cursor moves.
const pointDuration = 0.25

type game struct {
	renderer *schwarz.Renderer
	cam      *schwarz.Camera
	fb       *schwarz.Framebuffer
	rgba     []byte

	width, height int

	showFPS bool
	frames  int
	since   time.Time

	lastMX, lastMY int
	shotHeld       bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.lastMX || my != g.lastMY {
		g.cam.PointTo(float32(mx), float32(my), pointDuration, ease.OutQuad)
		g.lastMX, g.lastMY = mx, my
	}
	g.cam.Update(1.0 / float32(ebiten.TPS()))

	held := ebiten.IsKeyPressed(ebiten.KeyS)
	if held && !g.shotHeld {
		g.screenshot()
	}
	g.shotHeld = held

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.fb, g.cam.X, g.cam.Y)
	g.rgba = g.fb.RGBA(g.rgba)
	screen.WritePixels(g.rgba)

	g.frames++
	if g.showFPS {
		if g.frames%100 == 0 {
			elapsed := time.Since(g.since)
			fmt.Printf("100 frames in %dms = %.1f fps\n",
				elapsed.Milliseconds(), 100/elapsed.Seconds())
			g.since = time.Now()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// screenshot writes the current frame to a timestamped PNG in the working
// directory.
func (g *game) screenshot() {
	img := &image.RGBA{
		Pix:    g.fb.RGBA(nil),
		Stride: g.width * 4,
		Rect:   image.Rect(0, 0, g.width, g.height),
	}
	name := fmt.Sprintf("schwarz_%s.png", time.Now().Format("20060102_150405"))

	f, err := os.Create(name)
	if err != nil {
		log.Printf("schwarz: screenshot: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("schwarz: screenshot: %v", err)
		return
	}
	log.Printf("schwarz: wrote %s", name)
}

func main() {
	width := flag.Int("width", 1600, "width of the window")
	height := flag.Int("height", 1200, "height of the window")
	aa := flag.Int("aa", 4, "antialiasing factor; rays per pixel is the square of this")
	outcomes := flag.Int("outcomes", 8192, "length of the precomputed ray outcome table")
	skyFile := flag.String("sky", "", "filename for the skybox (required)")
	surfaceFile := flag.String("surface", "", "filename for the event horizon texture (defaults to solid black)")
	showFPS := flag.Bool("fps", false, "periodically print the frame rate")
	flag.Parse()

	if *skyFile == "" {
		fmt.Fprintln(os.Stderr, "schwarz: -sky is required")
		flag.Usage()
		os.Exit(2)
	}
	if *outcomes < 2 {
		fmt.Fprintln(os.Stderr, "schwarz: -outcomes must be at least 2")
		os.Exit(2)
	}

	cfg := schwarz.DefaultConfig()

	log.Printf("schwarz: loading textures...")
	var sky, sphere *schwarz.Texture
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		sky, err = schwarz.LoadTexture(*skyFile)
		return err
	})
	eg.Go(func() error {
		if *surfaceFile == "" {
			sphere = schwarz.NewSolidTexture(schwarz.Pixel{})
			return nil
		}
		var err error
		sphere, err = schwarz.LoadTexture(*surfaceFile)
		return err
	})
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	log.Printf("schwarz: generating %d ray outcomes...", *outcomes)
	start := time.Now()
	table := schwarz.ComputeOutcomes(cfg, 0, cfg.TableMaxRay, *outcomes, 100)
	log.Printf("schwarz: done in %v", time.Since(start))

	g := &game{
		renderer: &schwarz.Renderer{
			Config: cfg,
			Table:  table,
			Sky:    sky,
			Sphere: sphere,
			AA:     *aa,
		},
		cam:     schwarz.NewCamera(float32(*width)/2, float32(*height)/2),
		fb:      schwarz.NewFramebuffer(*width, *height),
		width:   *width,
		height:  *height,
		showFPS: *showFPS,
		since:   time.Now(),
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
