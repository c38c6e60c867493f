package diagram

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	atlasWidth = 800
	atlasRow   = 350
)

var svgOpen = regexp.MustCompile(`<svg[^>]*>`)

// Atlas stacks every record into one SVG for review. Each entry's outer
// <svg> becomes a translated, scaled group; the rest of its markup is kept
// as is. source names the bank the records were built from.
func Atlas(source string, records []Record) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<!-- Diagram atlas -->\n")
	if source != "" {
		fmt.Fprintf(&b, "<!-- Generated from %s -->\n", source)
	}
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="%s">`+"\n", atlasWidth, len(records)*atlasRow, svgNS)
	b.WriteString("  <style>\n")
	b.WriteString("    .question-title { font: bold 16px sans-serif; fill: #333; }\n")
	b.WriteString("    .diagram-container { stroke: #ccc; stroke-width: 1; }\n")
	b.WriteString("  </style>\n")
	for i, rec := range records {
		y := i*atlasRow + 20
		fmt.Fprintf(&b, "  <!-- Question %s -->\n", rec.QuestionID)
		fmt.Fprintf(&b, `  <text x="20" y="%d" class="question-title">Question ID: %s</text>`+"\n", y, escapeXML(rec.QuestionID))
		if rec.SVG == "" {
			fmt.Fprintf(&b, `  <text x="20" y="%d" font-size="14" fill="red">No diagram available for question %s</text>`+"\n", y+50, escapeXML(rec.QuestionID))
		} else {
			b.WriteString(embed(rec.SVG, y) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}

// embed turns the first <svg ...> into a group positioned for row y and
// closes it at the first </svg>.
func embed(svg string, y int) string {
	group := fmt.Sprintf(`<g transform="translate(20, %d) scale(0.8)">`, y+20)
	if loc := svgOpen.FindStringIndex(svg); loc != nil {
		svg = svg[:loc[0]] + group + svg[loc[1]:]
	}
	return strings.Replace(svg, "</svg>", "</g>", 1)
}
