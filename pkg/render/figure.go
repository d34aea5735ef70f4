// Package render draws the three-track well-log figure as a PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
	"github.com/ccollicutt/wellplot/pkg/tops"
)

// titleBand is the height in pixels reserved above the tracks for the title.
const titleBand = 32

// Input is the data drawn on one figure.
type Input struct {
	// Title overrides the configured figure title when set.
	Title string

	Depth     []float64
	DepthUnit string

	// Top and Base bound the plotted depth window.
	Top, Base float64

	// Curves are resolution results; unresolved categories are skipped.
	Curves []mnemonic.Result

	Tops []tops.Top
}

// Renderer draws figures with a fixed set of track and figure settings.
type Renderer struct {
	tracks config.TracksConfig
	figure config.FigureConfig
	logger *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer from cfg.
func New(cfg *config.Config, opts ...Option) *Renderer {
	r := &Renderer{
		tracks: cfg.Tracks,
		figure: cfg.Figure,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FigureTitle joins a title with the well name and UWI, skipping empty parts.
func FigureTitle(title, well, uwi string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{title, well, uwi} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}

// Render draws the figure and writes it to w as PNG.
func (r *Renderer) Render(in Input, w io.Writer) error {
	img, err := r.Image(in)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderFile draws the figure to a PNG file at path.
func (r *Renderer) RenderFile(in Input, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create figure: %w", err)
	}
	if err := r.Render(in, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	r.logger.Info("figure written", zap.String("path", path))
	return nil
}

// Image draws the figure.
func (r *Renderer) Image(in Input) (*image.RGBA, error) {
	if math.IsNaN(in.Top) || math.IsNaN(in.Base) || in.Top >= in.Base {
		return nil, fmt.Errorf("invalid depth window [%g, %g]", in.Top, in.Base)
	}
	win := window{top: in.Top, base: in.Base}

	width, height := r.figure.Width, r.figure.Height
	if width < config.MinFigureSize || height < config.MinFigureSize {
		return nil, fmt.Errorf("figure size %dx%d is below the %d pixel minimum", width, height, config.MinFigureSize)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	title := in.Title
	if title == "" {
		title = r.figure.Title
	}
	drawTitle(canvas, title)

	specs := []trackSpec{
		r.gammaTrack(in.Curves),
		r.resistivityTrack(in.Curves),
		r.porosityTrack(in.Curves),
	}
	ratios := make([]float64, len(specs))
	for i, s := range specs {
		ratios[i] = s.ratio
	}

	x := 0
	for i, w := range splitWidths(width, ratios) {
		spec := specs[i]
		r.logger.Debug("rendering track",
			zap.String("track", spec.name),
			zap.Int("curves", len(spec.curves)),
			zap.Int("width", w),
		)

		c := spec.build(in, win, w, height-titleBand)
		var buf bytes.Buffer
		if err := c.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("failed to render %s track: %w", spec.name, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s track: %w", spec.name, err)
		}
		draw.Draw(canvas, image.Rect(x, titleBand, x+w, height), img, img.Bounds().Min, draw.Src)
		x += w
	}
	return canvas, nil
}

// splitWidths divides total pixels by ratio; the last track takes the rest.
func splitWidths(total int, ratios []float64) []int {
	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	widths := make([]int, len(ratios))
	used := 0
	for i, r := range ratios {
		if i == len(ratios)-1 {
			widths[i] = total - used
			break
		}
		widths[i] = int(math.Round(float64(total) * r / sum))
		used += widths[i]
	}
	return widths
}

// drawTitle centers text in the title band.
func drawTitle(dst *image.RGBA, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(color.Black), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (dst.Bounds().Dx() - tw) / 2
	if x < 4 {
		x = 4
	}
	y := (titleBand + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}

func visibleTops(in Input, win window) []tops.Top {
	var out []tops.Top
	for _, t := range in.Tops {
		if win.contains(t.Depth) {
			out = append(out, t)
		}
	}
	return out
}
