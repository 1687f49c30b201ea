package chartkit

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Rendering constants shared by every figure. The resolution matches the
// fixed 300 dpi output contract; cell size is the pixel footprint of one
// grid cell at that resolution.
const (
	RenderDPI  = 300
	CellWidth  = 1200
	CellHeight = 900

	titleBandHeight   = 70
	captionLineHeight = 44
	captionPadding    = 28
)

var (
	colorWhite = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	colorText  = drawing.Color{R: 51, G: 51, B: 51, A: 255}
)

// chartRenderer is satisfied by chart.Chart, chart.BarChart and
// chart.PieChart.
type chartRenderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Panel is one cell-aligned region of a figure. Either Chart or Label is
// set: a nil Chart renders the Label lines as static centered text (the
// dashboard's reserved correlation area uses this).
type Panel struct {
	Chart chartRenderer
	Label []string

	Col     int
	Row     int
	ColSpan int
	RowSpan int
}

// Figure is a composed multi-panel chart. It is owned by the single report
// call that created it and is never shared across reports.
type Figure struct {
	Title   string
	Caption []string
	Cols    int
	Rows    int
	Panels  []Panel
}

// Width returns the total pixel width of the rendered figure.
func (f *Figure) Width() int {
	return f.Cols * CellWidth
}

// Height returns the total pixel height of the rendered figure.
func (f *Figure) Height() int {
	h := f.Rows * CellHeight
	if f.Title != "" {
		h += titleBandHeight
	}
	if len(f.Caption) > 0 {
		h += len(f.Caption)*captionLineHeight + captionPadding
	}
	return h
}

func (f *Figure) topOffset() int {
	if f.Title != "" {
		return titleBandHeight
	}
	return 0
}

func (p Panel) spans() (cols, rows int) {
	cols, rows = p.ColSpan, p.RowSpan
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// RenderPNG renders the full figure as a raster image.
func (f *Figure) RenderPNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	if f.Title != "" {
		if err := f.drawTextBandPNG(img, 0, titleBandHeight, []string{f.Title}, 13); err != nil {
			return fmt.Errorf("render title: %w", err)
		}
	}

	top := f.topOffset()
	for i, p := range f.Panels {
		cols, rows := p.spans()
		pw, ph := cols*CellWidth, rows*CellHeight
		x, y := p.Col*CellWidth, top+p.Row*CellHeight

		var buf bytes.Buffer
		if p.Chart != nil {
			if err := p.Chart.Render(chart.PNG, &buf); err != nil {
				return fmt.Errorf("render panel %d: %w", i, err)
			}
		} else {
			if err := renderTextPanel(chart.PNG, pw, ph, p.Label, 9, &buf); err != nil {
				return fmt.Errorf("render panel %d: %w", i, err)
			}
		}

		panelImg, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode panel %d: %w", i, err)
		}
		draw.Draw(img, image.Rect(x, y, x+pw, y+ph), panelImg, image.Point{}, draw.Over)
	}

	if len(f.Caption) > 0 {
		capTop := top + f.Rows*CellHeight
		capHeight := f.Height() - capTop
		if err := f.drawTextBandPNG(img, capTop, capHeight, f.Caption, 8); err != nil {
			return fmt.Errorf("render caption: %w", err)
		}
	}

	return png.Encode(w, img)
}

// drawTextBandPNG rasterizes centered text lines into a horizontal band of
// the composite image.
func (f *Figure) drawTextBandPNG(dst *image.RGBA, top, height int, lines []string, fontSize float64) error {
	var buf bytes.Buffer
	if err := renderTextPanel(chart.PNG, f.Width(), height, lines, fontSize, &buf); err != nil {
		return err
	}
	band, err := png.Decode(&buf)
	if err != nil {
		return err
	}
	draw.Draw(dst, image.Rect(0, top, f.Width(), top+height), band, image.Point{}, draw.Over)
	return nil
}

// RenderSVG renders the full figure as a vector image. Each panel is an
// independently rendered nested <svg> positioned by a translate transform.
func (f *Figure) RenderSVG(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		f.Width(), f.Height())
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="white"/>`, f.Width(), f.Height())

	if f.Title != "" {
		writeSVGTextLines(&sb, f.Width()/2, 0, titleBandHeight, []string{f.Title}, 48)
	}

	top := f.topOffset()
	for i, p := range f.Panels {
		cols, rows := p.spans()
		pw, ph := cols*CellWidth, rows*CellHeight
		x, y := p.Col*CellWidth, top+p.Row*CellHeight

		var buf bytes.Buffer
		if p.Chart != nil {
			if err := p.Chart.Render(chart.SVG, &buf); err != nil {
				return fmt.Errorf("render panel %d: %w", i, err)
			}
		} else {
			if err := renderTextPanel(chart.SVG, pw, ph, p.Label, 9, &buf); err != nil {
				return fmt.Errorf("render panel %d: %w", i, err)
			}
		}

		fmt.Fprintf(&sb, `<g transform="translate(%d,%d)">`, x, y)
		sb.WriteString(stripXMLProlog(buf.String()))
		sb.WriteString(`</g>`)
	}

	if len(f.Caption) > 0 {
		capTop := top + f.Rows*CellHeight
		writeSVGTextLines(&sb, f.Width()/2, capTop, f.Height()-capTop, f.Caption, 32)
	}

	sb.WriteString(`</svg>`)
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSVGTextLines emits centered text lines within a horizontal band.
func writeSVGTextLines(sb *strings.Builder, centerX, top, height int, lines []string, px int) {
	lineHeight := height / (len(lines) + 1)
	for i, line := range lines {
		y := top + lineHeight*(i+1) + px/3
		fmt.Fprintf(sb,
			`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="%d" fill="#333333">%s</text>`,
			centerX, y, px, html.EscapeString(line))
	}
}

// stripXMLProlog drops an <?xml ...?> declaration if the renderer emitted
// one, so panel markup can be nested inside the composite document.
func stripXMLProlog(s string) string {
	if strings.HasPrefix(s, "<?xml") {
		if end := strings.Index(s, "?>"); end >= 0 {
			return strings.TrimSpace(s[end+2:])
		}
	}
	return s
}

// renderTextPanel draws centered text lines onto a white canvas using the
// chart renderer, so text panels and bands match the chart typography in
// both output formats.
func renderTextPanel(rp chart.RendererProvider, width, height int, lines []string, fontSize float64, w io.Writer) error {
	r, err := rp(width, height)
	if err != nil {
		return err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetDPI(RenderDPI)

	// White background.
	r.SetFillColor(colorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(colorText)
	r.SetFontSize(fontSize)

	lineHeight := height / (len(lines) + 1)
	for i, line := range lines {
		box := r.MeasureText(line)
		x := (width - box.Width()) / 2
		y := lineHeight*(i+1) + box.Height()/3
		r.Text(line, x, y)
	}

	return r.Save(w)
}
