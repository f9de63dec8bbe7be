// Package report renders a printable PDF of a wheel: a pie chart of the
// slices, a legend with each option's share and the most recent outcomes.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	radius    = 150.0
	arcStep   = 2.0 // degrees per polygon edge along a sector arc
	fontSize  = 10
	titleSize = 18
	rowH      = 16
)

// Labels holds the localized headings printed on the page.
type Labels struct {
	Heading string
	Option  string
	Weight  string
	Share   string
	History string
	Empty   string
}

// DefaultLabels are used when the caller passes none.
var DefaultLabels = Labels{
	Heading: "Wheel",
	Option:  "Option",
	Weight:  "Weight",
	Share:   "Share",
	History: "Recent results",
	Empty:   "No options",
}

// Input is everything printed on the report.
type Input struct {
	Title   string
	State   wheel.State
	Palette []string
	Labels  Labels
}

// Generate returns PDF bytes for the wheel described by in.
func Generate(in Input) ([]byte, error) {
	labels := in.Labels
	if labels == (Labels{}) {
		labels = DefaultLabels
	}
	palette := in.Palette
	if len(palette) == 0 {
		palette = wheel.DefaultPalette
	}
	tr := newTranslator()

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetTextColor(30, 30, 40)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	title := in.Title
	if title == "" {
		title = labels.Heading
	}
	pdf.CellFormat(pageW-2*margin, 22, tr(title), "", 0, "C", false, 0, "")

	cx, cy := float64(pageW)/2, float64(margin)+60+radius
	slices := in.State.Slices()
	if len(slices) == 0 {
		pdf.SetDrawColor(120, 120, 130)
		pdf.Circle(cx, cy, radius, "D")
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.SetXY(cx-radius, cy-6)
		pdf.CellFormat(2*radius, 12, tr(labels.Empty), "", 0, "C", false, 0, "")
	} else {
		drawPie(pdf, tr, cx, cy, slices, palette)
		drawPointer(pdf, cx, cy-radius)
	}

	y := cy + radius + 30
	y = drawLegend(pdf, tr, y, slices, palette, in.State.TotalWeight(), labels)
	drawHistory(pdf, tr, y+20, in.State.History, labels)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawPie fills one polygon per slice. Angles run clockwise from the top,
// matching the on-screen wheel at rest.
func drawPie(pdf *gofpdf.Fpdf, tr func(string) string, cx, cy float64, slices []wheel.Slice, palette []string) {
	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(1)
	for _, s := range slices {
		r, g, b := hexRGB(palette[s.Index%len(palette)])
		pdf.SetFillColor(r, g, b)
		pdf.Polygon(sectorPoints(cx, cy, radius, s.Start, s.End), "FD")
	}
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetTextColor(255, 255, 255)
	for _, s := range slices {
		x, y := polar(cx, cy, radius*0.65, s.Mid())
		label := []rune(s.Option.Label)
		if len(label) > 14 {
			label = append(label[:11], []rune("...")...)
		}
		pdf.SetXY(x-40, y-6)
		pdf.CellFormat(80, 12, tr(string(label)), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(30, 30, 40)
}

// drawPointer draws the fixed pointer triangle above the wheel.
func drawPointer(pdf *gofpdf.Fpdf, x, y float64) {
	pdf.SetFillColor(30, 30, 40)
	pdf.Polygon([]gofpdf.PointType{
		{X: x - 10, Y: y - 16},
		{X: x + 10, Y: y - 16},
		{X: x, Y: y + 4},
	}, "F")
}

func drawLegend(pdf *gofpdf.Fpdf, tr func(string) string, y float64, slices []wheel.Slice, palette []string, total float64, labels Labels) float64 {
	x := float64(margin)
	w := float64(pageW - 2*margin)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetXY(x+20, y)
	pdf.CellFormat(w*0.5, rowH, tr(labels.Option), "B", 0, "L", false, 0, "")
	pdf.CellFormat(w*0.2, rowH, tr(labels.Weight), "B", 0, "R", false, 0, "")
	pdf.CellFormat(w*0.2, rowH, tr(labels.Share), "B", 0, "R", false, 0, "")
	y += rowH + 2

	pdf.SetFont("Helvetica", "", fontSize)
	for _, s := range slices {
		if y > pageH-margin-rowH {
			break
		}
		r, g, b := hexRGB(palette[s.Index%len(palette)])
		pdf.SetFillColor(r, g, b)
		pdf.Rect(x+4, y+3, 10, 10, "F")
		pdf.SetXY(x+20, y)
		pdf.CellFormat(w*0.5, rowH, tr(s.Option.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(w*0.2, rowH, strconv.FormatFloat(s.Option.Weight, 'g', -1, 64), "", 0, "R", false, 0, "")
		pdf.CellFormat(w*0.2, rowH, fmt.Sprintf("%.1f%%", s.Option.Weight/total*100), "", 0, "R", false, 0, "")
		y += rowH
	}
	return y
}

func drawHistory(pdf *gofpdf.Fpdf, tr func(string) string, y float64, history []wheel.Outcome, labels Labels) {
	if len(history) == 0 || y > pageH-margin-2*rowH {
		return
	}
	pdf.SetFont("Helvetica", "B", fontSize+2)
	pdf.SetXY(margin, y)
	pdf.CellFormat(pageW-2*margin, rowH, tr(labels.History), "", 0, "L", false, 0, "")
	y += rowH + 4
	pdf.SetFont("Helvetica", "", fontSize)
	// Newest first.
	for i := len(history) - 1; i >= 0; i-- {
		if y > pageH-margin-rowH {
			break
		}
		o := history[i]
		line := fmt.Sprintf("#%d  %s  (%s)", o.Seq, o.Option.Label, o.ResolvedAt.Format("02/01/2006 15:04:05"))
		pdf.SetXY(margin+4, y)
		pdf.CellFormat(pageW-2*margin, rowH, tr(line), "", 0, "L", false, 0, "")
		y += rowH
	}
}

// sectorPoints approximates the sector [start, end) as a polygon.
func sectorPoints(cx, cy, r, start, end float64) []gofpdf.PointType {
	pts := []gofpdf.PointType{{X: cx, Y: cy}}
	for a := start; a < end; a += arcStep {
		x, y := polar(cx, cy, r, a)
		pts = append(pts, gofpdf.PointType{X: x, Y: y})
	}
	x, y := polar(cx, cy, r, end)
	return append(pts, gofpdf.PointType{X: x, Y: y})
}

// polar converts a clockwise-from-top angle in degrees to page coordinates.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// hexRGB parses "#rrggbb". Anything else is drawn grey.
func hexRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return 128, 128, 128
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// newTranslator returns a function that converts UTF-8 text to the cp1252
// bytes the core PDF fonts expect. Unmappable runes become '?'.
func newTranslator() func(string) string {
	cm := charmap.Windows1252
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			c, ok := cm.EncodeRune(r)
			if !ok {
				c = '?'
			}
			b.WriteByte(c)
		}
		return b.String()
	}
}
