package diagram

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const svgNS = "http://www.w3.org/2000/svg"

// Style carries the presentation attributes shared by all shapes. Zero
// values are omitted from the markup.
type Style struct {
	Stroke      string
	StrokeWidth float64
	Dash        string
	Fill        string
	FontSize    float64
	FontWeight  string
	Anchor      string
	MarkerEnd   string
}

// Shape is one element of a diagram. Geometry lives in the record so it can
// be checked without parsing markup.
type Shape interface {
	writeSVG(buf *bytes.Buffer, indent string)
}

type Circle struct {
	CX, CY, R float64
	Style
}

type Ellipse struct {
	CX, CY, RX, RY float64
	Style
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Style
}

type Point struct{ X, Y float64 }

type Polygon struct {
	Points []Point
	Style
}

type Rect struct {
	X, Y, W, H float64
	Style
}

// Path keeps its data verbatim; arcs and curves are assembled by the caller.
type Path struct {
	D string
	Style
}

type Text struct {
	X, Y  float64
	Label string
	Style
}

// Group applies one style to its children.
type Group struct {
	Shapes []Shape
	Style
}

// Marker is an arrowhead definition referenced through Style.MarkerEnd as
// "url(#ID)".
type Marker struct {
	ID               string
	W, H, RefX, RefY float64
	Head             Polygon
}

// Document is a standalone SVG with a fixed canvas.
type Document struct {
	Width, Height float64
	Shapes        []Shape
}

// Render serialises the document. The viewBox always matches the canvas.
func (d Document) Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="%s">`,
		num(d.Width), num(d.Height), num(d.Width), num(d.Height), svgNS)
	buf.WriteString("\n")
	for _, s := range d.Shapes {
		s.writeSVG(&buf, "  ")
	}
	buf.WriteString("</svg>")
	return buf.String()
}

func (c Circle) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<circle cx="%s" cy="%s" r="%s"%s/>`+"\n", indent, num(c.CX), num(c.CY), num(c.R), c.attrs())
}

func (e Ellipse) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`+"\n",
		indent, num(e.CX), num(e.CY), num(e.RX), num(e.RY), e.attrs())
}

func (l Line) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		indent, num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), l.attrs())
}

func (p Polygon) writeSVG(buf *bytes.Buffer, indent string) {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = num(pt.X) + "," + num(pt.Y)
	}
	fmt.Fprintf(buf, `%s<polygon points="%s"%s/>`+"\n", indent, strings.Join(pts, " "), p.attrs())
}

func (r Rect) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		indent, num(r.X), num(r.Y), num(r.W), num(r.H), r.attrs())
}

func (p Path) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<path d="%s"%s/>`+"\n", indent, escapeXML(p.D), p.attrs())
}

func (t Text) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<text x="%s" y="%s"%s>%s</text>`+"\n", indent, num(t.X), num(t.Y), t.attrs(), escapeXML(t.Label))
}

func (m Marker) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, "%s<defs>\n", indent)
	fmt.Fprintf(buf, `%s  <marker id="%s" markerWidth="%s" markerHeight="%s" refX="%s" refY="%s" orient="auto">`+"\n",
		indent, escapeXML(m.ID), num(m.W), num(m.H), num(m.RefX), num(m.RefY))
	m.Head.writeSVG(buf, indent+"    ")
	fmt.Fprintf(buf, "%s  </marker>\n%s</defs>\n", indent, indent)
}

func (g Group) writeSVG(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, "%s<g%s>\n", indent, g.attrs())
	for _, s := range g.Shapes {
		s.writeSVG(buf, indent+"  ")
	}
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

func (s Style) attrs() string {
	var b strings.Builder
	attr := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&b, ` %s="%s"`, k, escapeXML(v))
		}
	}
	attr("text-anchor", s.Anchor)
	if s.FontSize > 0 {
		attr("font-size", num(s.FontSize))
	}
	attr("font-weight", s.FontWeight)
	attr("fill", s.Fill)
	attr("stroke", s.Stroke)
	if s.StrokeWidth > 0 {
		attr("stroke-width", num(s.StrokeWidth))
	}
	attr("stroke-dasharray", s.Dash)
	attr("marker-end", s.MarkerEnd)
	return b.String()
}

// num prints a coordinate rounded to two decimals without trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
