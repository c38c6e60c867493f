package diagram

// Physics and chemistry templates used by the subject augmenter.

func forceDoc() Document {
	return Document{Width: 300, Height: 200, Shapes: []Shape{
		Rect{X: 100, Y: 100, W: 100, H: 50, Style: solid},
		Line{X1: 200, Y1: 125, X2: 250, Y2: 125, Style: Style{Stroke: "red", StrokeWidth: 3, MarkerEnd: "url(#arrowhead)"}},
		Marker{ID: "arrowhead", W: 10, H: 7, RefX: 9, RefY: 3.5,
			Head: Polygon{Points: []Point{{0, 0}, {10, 3.5}, {0, 7}}, Style: Style{Fill: "red"}}},
		label(210, 115, "F", 14, "red"),
	}}
}

func circuitDoc() Document {
	wire := stroke("black", 2)
	return Document{Width: 300, Height: 200, Shapes: []Shape{
		Line{X1: 50, Y1: 100, X2: 80, Y2: 100, Style: wire},
		Line{X1: 65, Y1: 90, X2: 65, Y2: 110, Style: stroke("black", 4)},
		Line{X1: 75, Y1: 95, X2: 75, Y2: 105, Style: wire},
		Line{X1: 80, Y1: 100, X2: 150, Y2: 100, Style: wire},
		Line{X1: 150, Y1: 100, X2: 170, Y2: 80, Style: wire},
		Line{X1: 170, Y1: 80, X2: 190, Y2: 120, Style: wire},
		Line{X1: 190, Y1: 120, X2: 210, Y2: 80, Style: wire},
		Line{X1: 210, Y1: 80, X2: 230, Y2: 120, Style: wire},
		Line{X1: 230, Y1: 120, X2: 250, Y2: 100, Style: wire},
		Circle{CX: 260, CY: 100, R: 10, Style: solid},
		label(255, 105, "A", 12, ""),
	}}
}

func waveDoc() Document {
	return Document{Width: 300, Height: 100, Shapes: []Shape{
		Path{D: "M 0,50 Q 50,0 100,50 T 200,50 T 300,50", Style: Style{Fill: "none", Stroke: "blue", StrokeWidth: 2}},
		Line{X1: 50, Y1: 50, X2: 50, Y2: 0, Style: dash("red", 1)},
		label(55, 25, "Amplitude", 12, "red"),
		Line{X1: 0, Y1: 70, X2: 100, Y2: 70, Style: stroke("green", 2)},
		label(30, 85, "Wavelength", 12, "green"),
	}}
}

func atomicDoc() Document {
	electron := Style{Fill: "red"}
	return Document{Width: 200, Height: 200, Shapes: []Shape{
		Circle{CX: 100, CY: 100, R: 30, Style: Style{Fill: "#3498db", Stroke: "black", StrokeWidth: 2}},
		label(90, 105, "Nucleus", 14, "white"),
		Circle{CX: 100, CY: 100, R: 70, Style: Style{Fill: "none", Stroke: "#95a5a6", StrokeWidth: 1, Dash: "5,5"}},
		Circle{CX: 170, CY: 100, R: 5, Style: electron},
		Circle{CX: 30, CY: 100, R: 5, Style: electron},
		Circle{CX: 100, CY: 30, R: 5, Style: electron},
		Circle{CX: 100, CY: 170, R: 5, Style: electron},
		label(175, 95, "e⁻", 12, ""),
		label(20, 95, "e⁻", 12, ""),
	}}
}

func bondingDoc() Document {
	return Document{Width: 300, Height: 150, Shapes: []Shape{
		Circle{CX: 80, CY: 75, R: 25, Style: Style{Fill: "#e74c3c", Stroke: "black", StrokeWidth: 2}},
		Circle{CX: 220, CY: 75, R: 25, Style: Style{Fill: "#3498db", Stroke: "black", StrokeWidth: 2}},
		Circle{CX: 150, CY: 60, R: 5, Style: Style{Fill: "black"}},
		Circle{CX: 150, CY: 90, R: 5, Style: Style{Fill: "black"}},
		label(70, 80, "A", 14, "white"),
		label(210, 80, "B", 14, "white"),
		Line{X1: 105, Y1: 75, X2: 195, Y2: 75, Style: stroke("black", 2)},
	}}
}

func molecularDoc() Document {
	bond := stroke("black", 2)
	return Document{Width: 250, Height: 150, Shapes: []Shape{
		Circle{CX: 80, CY: 80, R: 15, Style: Style{Fill: "#3498db", Stroke: "black", StrokeWidth: 2}},
		Circle{CX: 130, CY: 50, R: 10, Style: Style{Fill: "#e74c3c", Stroke: "black", StrokeWidth: 2}},
		Circle{CX: 130, CY: 110, R: 10, Style: Style{Fill: "#e74c3c", Stroke: "black", StrokeWidth: 2}},
		Line{X1: 92, Y1: 72, X2: 120, Y2: 58, Style: bond},
		Line{X1: 92, Y1: 88, X2: 120, Y2: 102, Style: bond},
		label(75, 85, "O", 12, "white"),
		label(125, 55, "H", 10, "white"),
		label(125, 115, "H", 10, "white"),
	}}
}
