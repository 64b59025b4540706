// Package boundary: PNG rendering of an evaluated grid with its sample
// overlay, built on gonum.org/v1/plot.

package boundary

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/bayesline/gaussian"
)

// scatterRadius is the glyph radius of overlay points, in points.
const scatterRadius = 2

// labelGrid adapts a Grid to plotter.GridXYZ so the label field can be
// drawn as a heat map of decision regions.
type labelGrid struct {
	g *Grid
}

func (lg labelGrid) Dims() (int, int)   { return lg.g.Cols(), lg.g.Rows() }
func (lg labelGrid) Z(c, r int) float64 { return float64(lg.g.Labels[r][c]) }
func (lg labelGrid) X(c int) float64    { return lg.g.X(c) }
func (lg labelGrid) Y(r int) float64    { return lg.g.Y(r) }

// regionPalette colors decision regions with washed-out versions of the
// scatter colors, so overlaid samples stay visible on their own region.
type regionPalette struct {
	colors []color.Color
}

func (p regionPalette) Colors() []color.Color { return p.colors }

// fade blends c toward white to produce a background-region tint.
func fade(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	const mix = 3 // white parts per one part of color
	blend := func(v uint32) uint8 {
		return uint8(((v >> 8) + mix*0xff) / (mix + 1))
	}

	return color.RGBA{R: blend(r), G: blend(g), B: blend(b), A: 0xff}
}

// Render draws the decision regions of grid as a heat map, overlays the
// sample set as one scatter series per class, and PNG-encodes the result
// to w.
//
// Implementation:
//   - Stage 1: validate grid and set; count classes from both (regions
//     may contain labels no sample carries, and vice versa).
//   - Stage 2: heat map over the label field with a faded per-class
//     palette, then one plotter.Scatter per class in plotutil colors,
//     legend included; finally draw onto a vgimg PNG canvas.
//
// Errors: ErrNilGrid, ErrEmptySampleSet, ErrNotPlanar; scatter/encoding
// failures propagate wrapped.
// Determinism: classes are drawn in ascending index order.
// Complexity: Time O(R·C + n), dominated by rasterization.
func Render(grid *Grid, set *gaussian.SampleSet, w io.Writer, opts RenderOptions) error {
	if grid == nil || grid.Rows() == 0 || grid.Cols() == 0 {
		return ErrNilGrid
	}
	if set.Len() == 0 {
		return ErrEmptySampleSet
	}
	if set.Dim() != planarDim {
		return fmt.Errorf("Render: dim %d: %w", set.Dim(), ErrNotPlanar)
	}

	// Number of classes = 1 + max label seen anywhere.
	numClasses := 0
	for _, row := range grid.Labels {
		for _, label := range row {
			if label >= numClasses {
				numClasses = label + 1
			}
		}
	}
	for _, label := range set.Labels {
		if label >= numClasses {
			numClasses = label + 1
		}
	}

	if opts.Width <= 0 {
		opts.Width = DefaultCanvasSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultCanvasSize
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x₁"
	p.Y.Label.Text = "x₂"

	// Decision regions: one faded palette entry per class.
	tints := make([]color.Color, numClasses)
	for k := 0; k < numClasses; k++ {
		tints[k] = fade(plotutil.Color(k))
	}
	heat := plotter.NewHeatMap(labelGrid{g: grid}, regionPalette{colors: tints})
	p.Add(heat)

	// Sample overlay: one scatter series per class, ascending order.
	for k := 0; k < numClasses; k++ {
		points := set.ClassPoints(k)
		if len(points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = pt[0]
			xys[i].Y = pt[1]
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("Render: class %d scatter: %w", k, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(k)
		scatter.GlyphStyle.Radius = scatterRadius
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("class %d", k), scatter)
	}

	canvas := vgimg.PngCanvas{Canvas: vgimg.New(opts.Width, opts.Height)}
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("Render: encode: %w", err)
	}

	return nil
}
