// Package plotting renders the Plot Renderer outputs (spec.md §4.10): simple
// SVG charts over windowed search results and canonical-estimate rankings,
// built on the teacher's own plotting stack.
package plotting

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/biogo/tidk/internal/estimate"
	"github.com/biogo/tidk/internal/tidkerr"
	"github.com/biogo/tidk/internal/window"
)

const (
	defaultWidth  = 8 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// WindowTable renders one panel per distinct record ID, each a line per
// motif of forward+reverse occurrence counts against window_end, one color
// per motif, stacked into a single SVG.
func WindowTable(rows []window.Count, out io.Writer) error {
	if len(rows) == 0 {
		return tidkerr.New(tidkerr.BadInput, "no window rows to plot")
	}

	byID := make(map[string][]window.Count)
	var ids []string
	for _, r := range rows {
		if _, ok := byID[r.ID]; !ok {
			ids = append(ids, r.ID)
		}
		byID[r.ID] = append(byID[r.ID], r)
	}

	panels := make([][]*plot.Plot, len(ids))
	for i, id := range ids {
		p, err := windowPanel(id, byID[id])
		if err != nil {
			return err
		}
		panels[i] = []*plot.Plot{p}
	}

	img := vgsvg.New(defaultWidth, defaultHeight*vg.Length(len(ids)))
	canvases := plot.Align(panels, draw.Tiles{Rows: len(ids), Cols: 1}, draw.New(img))
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}
	if _, err := img.WriteTo(out); err != nil {
		return tidkerr.Wrap(tidkerr.IO, "writing svg plot", err)
	}
	return nil
}

// windowPanel builds the single-record panel plotted by WindowTable: one
// line per motif, colored from a qualitative palette, titled with the
// record's mean/max repeat count.
func windowPanel(id string, rows []window.Count) (*plot.Plot, error) {
	byMotif := make(map[string][]window.Count)
	var order []string
	for _, r := range rows {
		if _, ok := byMotif[r.Motif]; !ok {
			order = append(order, r.Motif)
		}
		byMotif[r.Motif] = append(byMotif[r.Motif], r)
	}

	p := plot.New()
	p.X.Label.Text = "window end (bp)"
	p.Y.Label.Text = "repeat count"

	var counts []float64
	for _, r := range rows {
		counts = append(counts, float64(r.Fwd+r.Rev))
	}
	p.Title.Text = titleWithStats(id, counts)

	colors, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", max(3, len(order)))
	if err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "loading plot palette", err)
	}
	palette := colors.Colors()

	for i, motif := range order {
		motifRows := byMotif[motif]
		pts := make(plotter.XYs, len(motifRows))
		for j, r := range motifRows {
			pts[j].X = float64(r.WindowEnd)
			pts[j].Y = float64(r.Fwd + r.Rev)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, tidkerr.Wrap(tidkerr.IO, "building plot line", err)
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(motif, line)
	}

	return p, nil
}

// CanonicalBar renders a bar chart of the top n canonical repeats by count.
func CanonicalBar(rows []estimate.CanonicalRepeat, n int, out io.Writer) error {
	if len(rows) == 0 {
		return tidkerr.New(tidkerr.BadInput, "no canonical repeats to plot")
	}

	top := append([]estimate.CanonicalRepeat{}, rows...)
	sort.Slice(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if n > 0 && n < len(top) {
		top = top[:n]
	}

	values := make(plotter.Values, len(top))
	var counts []float64
	for i, r := range top {
		values[i] = float64(r.Count)
		counts = append(counts, float64(r.Count))
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return tidkerr.Wrap(tidkerr.IO, "building bar chart", err)
	}

	p := plot.New()
	p.Title.Text = titleWithStats("canonical repeat estimates", counts)
	p.Y.Label.Text = "count"
	p.Add(bars)

	names := make([]string, len(top))
	for i, r := range top {
		names[i] = string(r.Unit)
	}
	p.NominalX(names...)

	return writeSVG(p, out)
}

func titleWithStats(label string, counts []float64) string {
	if len(counts) == 0 {
		return label
	}
	mean := stat.Mean(counts, nil)
	peak := floats.Max(counts)
	return fmt.Sprintf("%s (mean %.1f, max %.0f)", label, mean, peak)
}

func writeSVG(p *plot.Plot, out io.Writer) error {
	c := vgsvg.New(defaultWidth, defaultHeight)
	p.Draw(draw.New(c))
	_, err := c.WriteTo(out)
	if err != nil {
		return tidkerr.Wrap(tidkerr.IO, "writing svg plot", err)
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
