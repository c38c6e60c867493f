package diagram

import (
	"fmt"
	"strings"
)

// Params carries what little question data a template uses.
type Params struct {
	// BearingDegrees is only read by the bearing template; nil means
	// DefaultBearing.
	BearingDegrees *float64
	// QuestionID labels the generic and placeholder boxes.
	QuestionID string
	// Text is the lower-cased question text; shape3d uses it to pick a solid.
	Text string
}

// Bearing returns params for a bearing diagram at deg degrees.
func Bearing(deg float64) Params { return Params{BearingDegrees: &deg} }

// Generate renders the template for kind. Templates are illustrative: apart
// from the bearing angle they ignore the question's numbers.
func Generate(kind Kind, p Params) string {
	return Template(kind, p).Render()
}

// Template builds the shape records for kind without serialising them.
func Template(kind Kind, p Params) Document {
	switch kind {
	case KindBearing:
		b := DefaultBearing
		if p.BearingDegrees != nil {
			b = *p.BearingDegrees
		}
		return bearingDoc(b)
	case KindCircle:
		return circleDoc()
	case KindTriangle:
		return triangleDoc()
	case KindQuadrilateral:
		return quadrilateralDoc()
	case KindShape3D:
		switch {
		case strings.Contains(p.Text, "cone"):
			return coneDoc()
		case strings.Contains(p.Text, "cylinder"):
			return cylinderDoc()
		default:
			return sphereDoc()
		}
	case KindCoordinate:
		return coordinateDoc()
	case KindLineAngle:
		return lineAngleDoc()
	case KindGeneric:
		return labelBox(p.QuestionID, "Geometric Diagram")
	case KindForce:
		return forceDoc()
	case KindCircuit:
		return circuitDoc()
	case KindWave:
		return waveDoc()
	case KindAtomic:
		return atomicDoc()
	case KindBonding:
		return bondingDoc()
	case KindMolecular:
		return molecularDoc()
	default:
		return labelBox(p.QuestionID, "No diagram available")
	}
}

// Placeholder is served for ids without a stored diagram.
func Placeholder(questionID string) string {
	return labelBox(questionID, "No diagram available").Render()
}

func labelBox(questionID, caption string) Document {
	gray := Style{Fill: "gray", Anchor: "middle"}
	title, sub := gray, gray
	title.FontSize, sub.FontSize = 14, 12
	return Document{Width: 200, Height: 100, Shapes: []Shape{
		Rect{X: 10, Y: 10, W: 180, H: 80, Style: Style{Fill: "none", Stroke: "gray", StrokeWidth: 2}},
		Text{X: 100, Y: 55, Label: "Question " + questionID, Style: title},
		Text{X: 100, Y: 75, Label: caption, Style: sub},
	}}
}

var (
	solid  = Style{Fill: "none", Stroke: "black", StrokeWidth: 2}
	dashed = Style{Stroke: "gray", StrokeWidth: 1, Dash: "5,5"}
)

func stroke(color string, width float64) Style {
	return Style{Stroke: color, StrokeWidth: width}
}

func dash(color string, width float64) Style {
	return Style{Stroke: color, StrokeWidth: width, Dash: "5,5"}
}

func label(x, y float64, text string, size float64, fill string) Text {
	return Text{X: x, Y: y, Label: text, Style: Style{FontSize: size, Fill: fill}}
}

func bearingDoc(bearing float64) Document {
	cardinal := Style{Anchor: "middle", FontSize: 14, FontWeight: "bold"}
	end := BearingEndpoint(bearing)
	arc := BearingPoint(compassCX, compassCY, bearingArcR, bearing)
	lbl := BearingPoint(compassCX, compassCY, bearingLabelR, bearing/2)
	return Document{Width: 300, Height: 300, Shapes: []Shape{
		Circle{CX: compassCX, CY: compassCY, R: compassR, Style: Style{Stroke: "black", StrokeWidth: 2, Fill: "white"}},
		Text{X: 150, Y: 40, Label: "N", Style: cardinal},
		Text{X: 150, Y: 275, Label: "S", Style: cardinal},
		Text{X: 265, Y: 155, Label: "E", Style: cardinal},
		Text{X: 35, Y: 155, Label: "W", Style: cardinal},
		Line{X1: 150, Y1: 30, X2: 150, Y2: 270, Style: dashed},
		Line{X1: 30, Y1: 150, X2: 270, Y2: 150, Style: dashed},
		Line{X1: 60, Y1: 60, X2: 240, Y2: 240, Style: dashed},
		Line{X1: 240, Y1: 60, X2: 60, Y2: 240, Style: dashed},
		Line{X1: compassCX, Y1: compassCY, X2: end.X, Y2: end.Y, Style: stroke("red", 3)},
		Path{D: fmt.Sprintf("M160,140 A10 10 0 0 1 %s,%s", num(arc.X), num(arc.Y)), Style: Style{Fill: "none", Stroke: "blue", StrokeWidth: 2}},
		label(lbl.X, lbl.Y, num(bearing)+"°", 12, "blue"),
	}}
}

func circleDoc() Document {
	return Document{Width: 300, Height: 300, Shapes: []Shape{
		Circle{CX: 150, CY: 150, R: 100, Style: solid},
		Line{X1: 100, Y1: 200, X2: 200, Y2: 200, Style: stroke("red", 3)},
		Line{X1: 150, Y1: 150, X2: 150, Y2: 200, Style: dash("blue", 2)},
		Line{X1: 150, Y1: 150, X2: 200, Y2: 200, Style: stroke("green", 2)},
		label(155, 180, "8 cm", 12, "blue"),
		label(175, 205, "12 cm", 12, "red"),
		label(180, 180, "r = ?", 12, "green"),
		label(155, 145, "O", 12, "black"),
		label(195, 205, "A", 12, "black"),
		label(95, 205, "B", 12, "black"),
		label(155, 205, "M", 12, "black"),
	}}
}

func triangleDoc() Document {
	marker := stroke("black", 2)
	return Document{Width: 300, Height: 200, Shapes: []Shape{
		Polygon{Points: []Point{{100, 150}, {200, 150}, {150, 80}}, Style: solid},
		Line{X1: 145, Y1: 150, X2: 145, Y2: 145, Style: marker},
		Line{X1: 145, Y1: 145, X2: 150, Y2: 145, Style: marker},
		label(90, 155, "3", 14, ""),
		label(175, 155, "4", 14, ""),
		label(140, 100, "5", 14, ""),
		label(145, 165, "Adjacent", 14, ""),
		label(175, 125, "Hypotenuse", 14, ""),
		label(115, 125, "Opposite", 14, ""),
	}}
}

func quadrilateralDoc() Document {
	return Document{Width: 300, Height: 200, Shapes: []Shape{
		Polygon{Points: []Point{{50, 150}, {120, 80}, {220, 80}, {250, 150}}, Style: solid},
		label(60, 140, "2x", 12, ""),
		label(110, 90, "3x", 12, ""),
		label(210, 90, "4x", 12, ""),
		label(240, 140, "6x", 12, ""),
	}}
}

func coneDoc() Document {
	return Document{Width: 200, Height: 250, Shapes: []Shape{
		Path{D: "M100,50 L30,200 Q100,230 170,200 Z", Style: solid},
		Ellipse{CX: 100, CY: 200, RX: 70, RY: 15, Style: solid},
		Line{X1: 100, Y1: 50, X2: 100, Y2: 200, Style: dash("red", 2)},
		Line{X1: 100, Y1: 200, X2: 170, Y2: 200, Style: stroke("blue", 2)},
		label(105, 130, "h=12cm", 12, "red"),
		label(130, 215, "r=7cm", 12, "blue"),
	}}
}

func cylinderDoc() Document {
	side := stroke("black", 2)
	return Document{Width: 200, Height: 250, Shapes: []Shape{
		Ellipse{CX: 100, CY: 70, RX: 60, RY: 15, Style: solid},
		Ellipse{CX: 100, CY: 180, RX: 60, RY: 15, Style: solid},
		Line{X1: 40, Y1: 70, X2: 40, Y2: 180, Style: side},
		Line{X1: 160, Y1: 70, X2: 160, Y2: 180, Style: side},
		Line{X1: 170, Y1: 70, X2: 170, Y2: 180, Style: dash("red", 2)},
		Line{X1: 100, Y1: 70, X2: 160, Y2: 70, Style: stroke("blue", 2)},
		label(175, 125, "h", 12, "red"),
		label(130, 65, "r", 12, "blue"),
	}}
}

func sphereDoc() Document {
	return Document{Width: 200, Height: 200, Shapes: []Shape{
		Circle{CX: 100, CY: 100, R: 80, Style: solid},
		Ellipse{CX: 100, CY: 100, RX: 80, RY: 30, Style: Style{Fill: "none", Stroke: "black", StrokeWidth: 1, Dash: "5,5"}},
		Line{X1: 100, Y1: 20, X2: 100, Y2: 180, Style: dash("red", 2)},
		Line{X1: 20, Y1: 100, X2: 180, Y2: 100, Style: dash("blue", 2)},
		label(105, 100, "Diameter", 12, "red"),
		label(105, 40, "Radius", 12, "blue"),
	}}
}

func coordinateDoc() Document {
	axis := stroke("black", 2)
	var grid []Shape
	for _, v := range []float64{70, 90, 110, 130, 170, 190, 210, 230} {
		grid = append(grid, Line{X1: v, Y1: 50, X2: v, Y2: 250})
	}
	for _, v := range []float64{70, 90, 110, 130, 170, 190, 210, 230} {
		grid = append(grid, Line{X1: 50, Y1: v, X2: 250, Y2: v})
	}
	return Document{Width: 300, Height: 300, Shapes: []Shape{
		Line{X1: 50, Y1: 150, X2: 250, Y2: 150, Style: axis},
		Line{X1: 150, Y1: 50, X2: 150, Y2: 250, Style: axis},
		Polygon{Points: []Point{{245, 145}, {250, 150}, {245, 155}}, Style: Style{Fill: "black"}},
		Polygon{Points: []Point{{145, 55}, {150, 50}, {155, 55}}, Style: Style{Fill: "black"}},
		label(255, 155, "x", 12, ""),
		label(155, 45, "y", 12, ""),
		Group{Shapes: grid, Style: Style{Stroke: "lightgray", StrokeWidth: 1, Dash: "2,2"}},
		label(155, 145, "O", 12, ""),
		Circle{CX: 170, CY: 130, R: 3, Style: Style{Fill: "red"}},
		label(175, 125, "(2,2)", 12, "red"),
		Circle{CX: 190, CY: 110, R: 3, Style: Style{Fill: "blue"}},
		label(195, 105, "(4,4)", 12, "blue"),
	}}
}

func lineAngleDoc() Document {
	black := stroke("black", 2)
	blue := stroke("blue", 2)
	return Document{Width: 300, Height: 200, Shapes: []Shape{
		Line{X1: 50, Y1: 100, X2: 250, Y2: 100, Style: black},
		Line{X1: 150, Y1: 50, X2: 150, Y2: 150, Style: black},
		Path{D: "M150,100 A20 20 0 0 1 170,80", Style: Style{Fill: "none", Stroke: "red", StrokeWidth: 2}},
		label(165, 85, "90°", 12, "red"),
		Line{X1: 50, Y1: 170, X2: 250, Y2: 170, Style: blue},
		Line{X1: 50, Y1: 190, X2: 250, Y2: 190, Style: blue},
		label(255, 175, "Parallel", 12, "blue"),
	}}
}
