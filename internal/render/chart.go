// Package render draws ledger charts as PNG images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyLedger is returned when there are no days to chart.
var ErrEmptyLedger = errors.New("ledger has no days")

// Style defines the canvas size and palette of every chart.
type Style struct {
	Width   int
	Height  int
	Padding int

	Background string
	Text       string
	Muted      string
	Grid       string
	Accent     string
	Planned    string
	Actual     string
	Gain       string
	Loss       string
	Empty      string
	BiasColors map[model.Bias]string
}

// DefaultStyle is the cream-and-red dashboard look.
func DefaultStyle() Style {
	return Style{
		Width:      800,
		Height:     420,
		Padding:    24,
		Background: "#FFF8F0",
		Text:       "#1C1B1A",
		Muted:      "#6F6E69",
		Grid:       "#E6DDD2",
		Accent:     "#D32F2F",
		Planned:    "#D32F2F",
		Actual:     "#2E7D32",
		Gain:       "#2E7D32",
		Loss:       "#D32F2F",
		Empty:      "#EFE6DB",
		BiasColors: map[model.Bias]string{
			model.ImpulseSpending: "#BC5215",
			model.PresentBias:     "#5E409D",
			model.LossAversion:    "#205EA6",
		},
	}
}

// Generator renders ledger charts with a fixed style.
type Generator struct {
	style Style
}

// NewGenerator creates a generator with the default style.
func NewGenerator() *Generator {
	return &Generator{style: DefaultStyle()}
}

// NewGeneratorWithStyle creates a generator with a custom style.
func NewGeneratorWithStyle(s Style) *Generator {
	return &Generator{style: s}
}

// plotArea is the inner rectangle charts draw into.
type plotArea struct {
	left, top, right, bottom float64
}

func (p plotArea) width() float64  { return p.right - p.left }
func (p plotArea) height() float64 { return p.bottom - p.top }

// canvas creates a context with background and title drawn.
func (g *Generator) canvas(title string) (*gg.Context, plotArea, error) {
	s := g.style
	dc := gg.NewContext(s.Width, s.Height)

	dc.SetHexColor(s.Background)
	dc.Clear()

	bold, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, plotArea{}, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(bold)
	dc.SetHexColor(s.Accent)
	dc.DrawStringAnchored(title, float64(s.Width)/2, float64(s.Padding), 0.5, 0.5)

	regular, err := loadFont(goregular.TTF, 11)
	if err != nil {
		return nil, plotArea{}, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(regular)

	pad := float64(s.Padding)
	area := plotArea{
		left:   pad + 48,
		top:    pad + 28,
		right:  float64(s.Width) - pad,
		bottom: float64(s.Height) - pad - 28,
	}
	return dc, area, nil
}

func encode(dc *gg.Context, chart string, start time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.WithFields(log.Fields{
		"chart":       chart,
		"bytes":       buf.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("chart rendered")
	return buf.Bytes(), nil
}

// Spending draws planned and actual spend per day as two lines.
func (g *Generator) Spending(l pipeline.Ledger, currency string) ([]byte, error) {
	start := time.Now()
	planned, actual := pipeline.SpendSeries(l)
	if len(planned) == 0 {
		return nil, ErrEmptyLedger
	}
	s := g.style

	dc, area, err := g.canvas("Spending vs Planned")
	if err != nil {
		return nil, err
	}

	peak := 0.0
	for i := range planned {
		peak = max(peak, planned[i], actual[i])
	}
	step, ceiling := niceScale(peak)
	yFor := func(v float64) float64 {
		return area.bottom - v/ceiling*area.height()
	}
	g.drawYGrid(dc, area, 0, ceiling, step, yFor, currency)

	n := len(planned)
	xFor := func(i int) float64 {
		if n == 1 {
			return area.left + area.width()/2
		}
		return area.left + float64(i)*area.width()/float64(n-1)
	}

	for _, series := range []struct {
		values []float64
		color  string
	}{{planned, s.Planned}, {actual, s.Actual}} {
		dc.SetHexColor(series.color)
		dc.SetLineWidth(2.5)
		for i, v := range series.values {
			if i == 0 {
				dc.MoveTo(xFor(i), yFor(v))
			} else {
				dc.LineTo(xFor(i), yFor(v))
			}
		}
		dc.Stroke()
		for i, v := range series.values {
			dc.DrawCircle(xFor(i), yFor(v), 3.5)
			dc.Fill()
		}
	}

	g.drawXLabels(dc, area, l.Days(), xFor)
	g.drawLegend(dc, []legendItem{{"Planned", s.Planned}, {"Actual", s.Actual}})
	return encode(dc, "spending", start)
}

// Savings draws the cumulative savings series as bars diverging from zero.
func (g *Generator) Savings(l pipeline.Ledger, currency string) ([]byte, error) {
	start := time.Now()
	values := pipeline.SavingsSeries(l)
	if len(values) == 0 {
		return nil, ErrEmptyLedger
	}
	s := g.style

	dc, area, err := g.canvas("Cumulative Savings")
	if err != nil {
		return nil, err
	}

	hi, lo := 0.0, 0.0
	for _, v := range values {
		hi = max(hi, v)
		lo = min(lo, v)
	}
	step, ceiling := niceScale(max(hi, -lo))
	floor := 0.0
	if lo < 0 {
		floor = -ceiling
	}
	top := ceiling
	if hi <= 0 && lo < 0 {
		top = 0
	}
	yFor := func(v float64) float64 {
		return area.bottom - (v-floor)/(top-floor)*area.height()
	}
	g.drawYGrid(dc, area, floor, top, step, yFor, currency)

	n := len(values)
	slot := area.width() / float64(n)
	barW := math.Min(slot*0.7, 60)
	xFor := func(i int) float64 {
		return area.left + slot*(float64(i)+0.5)
	}

	zero := yFor(0)
	for i, v := range values {
		color := s.Gain
		if v < 0 {
			color = s.Loss
		}
		dc.SetHexColor(color)
		y := yFor(v)
		dc.DrawRectangle(xFor(i)-barW/2, math.Min(y, zero), barW, math.Abs(zero-y))
		dc.Fill()
	}

	dc.SetHexColor(s.Text)
	dc.SetLineWidth(1.5)
	dc.DrawLine(area.left, zero, area.right, zero)
	dc.Stroke()

	g.drawXLabels(dc, area, l.Days(), xFor)
	return encode(dc, "savings", start)
}

// Heatmap draws the label-by-day bias grid.
func (g *Generator) Heatmap(l pipeline.Ledger) ([]byte, error) {
	start := time.Now()
	m := pipeline.BiasMatrix(l)
	if len(m.Days) == 0 {
		return nil, ErrEmptyLedger
	}
	s := g.style

	dc, area, err := g.canvas("Bias Heatmap")
	if err != nil {
		return nil, err
	}
	area.left += 72 // room for row labels

	rows, cols := len(m.Rows), len(m.Days)
	cellW := area.width() / float64(cols)
	cellH := area.height() / float64(rows)
	gap := math.Min(math.Min(cellW, cellH)*0.08, 3)

	for r, label := range m.Rows {
		color := s.Gain
		if r < len(model.AllBiases) {
			color = s.BiasColors[model.AllBiases[r]]
		}
		y := area.top + float64(r)*cellH

		dc.SetHexColor(s.Text)
		dc.DrawStringAnchored(label, area.left-8, y+cellH/2, 1, 0.35)

		for c, v := range m.Cells[r] {
			if v > 0 {
				dc.SetHexColor(color)
			} else {
				dc.SetHexColor(s.Empty)
			}
			dc.DrawRectangle(area.left+float64(c)*cellW+gap, y+gap, cellW-2*gap, cellH-2*gap)
			dc.Fill()
		}
	}

	g.drawXLabels(dc, area, l.Days(), func(i int) float64 {
		return area.left + cellW*(float64(i)+0.5)
	})
	return encode(dc, "heatmap", start)
}

func (g *Generator) drawYGrid(dc *gg.Context, area plotArea, lo, hi, step float64, yFor func(float64) float64, currency string) {
	s := g.style
	dc.SetLineWidth(1)
	for v := lo; v <= hi+step/2; v += step {
		y := yFor(v)
		dc.SetHexColor(s.Grid)
		dc.DrawLine(area.left, y, area.right, y)
		dc.Stroke()

		dc.SetHexColor(s.Muted)
		dc.DrawStringAnchored(axisLabel(currency, v), area.left-6, y, 1, 0.35)
	}
}

func (g *Generator) drawXLabels(dc *gg.Context, area plotArea, days []model.DayRecord, xFor func(int) float64) {
	dc.SetHexColor(g.style.Muted)
	every := max(1, int(math.Ceil(float64(len(days))*40/area.width())))
	for i, d := range days {
		if i%every != 0 && i != len(days)-1 {
			continue
		}
		dc.DrawStringAnchored(fmt.Sprintf("D%d", d.Day), xFor(i), area.bottom+14, 0.5, 0.5)
	}
}

type legendItem struct {
	label string
	color string
}

func (g *Generator) drawLegend(dc *gg.Context, items []legendItem) {
	s := g.style
	x := float64(s.Width - s.Padding)
	y := float64(s.Height - s.Padding/2 - 4)
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		w, _ := dc.MeasureString(it.label)
		x -= w
		dc.SetHexColor(s.Text)
		dc.DrawStringAnchored(it.label, x, y, 0, 0.35)
		x -= 16
		dc.SetHexColor(it.color)
		dc.DrawRectangle(x, y-5, 10, 10)
		dc.Fill()
		x -= 16
	}
}

// niceScale returns a tick step and a ceiling that is a whole number of
// steps at or above peak, targeting about five ticks.
func niceScale(peak float64) (step, ceiling float64) {
	if peak <= 0 {
		return 1, 1
	}
	rough := peak / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		step = base
	case frac < 3.5:
		step = 2 * base
	default:
		step = 5 * base
	}
	return step, math.Ceil(peak/step) * step
}

func axisLabel(currency string, v float64) string {
	if v < 0 {
		return fmt.Sprintf("-%s%.0f", currency, -v)
	}
	return fmt.Sprintf("%s%.0f", currency, v)
}

func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
