package diagram

import (
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

type rule struct {
	kind     Kind
	keywords []string
}

// rules are evaluated in order and the first match wins. The order is the
// tie-break: "sin" inside "using" still makes a triangle when nothing above
// it matched.
var rules = []rule{
	{KindBearing, []string{"bearing"}},
	{KindCircle, []string{"chord", "radius", "circle", "diameter"}},
	{KindTriangle, []string{"triangle", "sin", "cos", "tan", "pythagoras", "right-angled"}},
	{KindQuadrilateral, []string{"quadrilateral", "rectangle", "square", "parallelogram", "trapezium", "rhombus"}},
	{KindShape3D, []string{"cone", "cylinder", "sphere", "pyramid", "prism", "volume"}},
	{KindCoordinate, []string{"coordinates", "cartesian", "x-axis", "y-axis"}},
	{KindLineAngle, []string{"line", "angle", "parallel", "perpendicular"}},
}

// vocabulary decides whether a question is diagram-related at all.
var vocabulary = []string{
	// basic
	"circle", "line", "length", "distance", "angle", "triangle", "rectangle",
	"square", "polygon", "chord", "radius", "diameter", "arc", "tangent",
	"secant", "bearing", "coordinates", "graph", "plot", "perpendicular",
	"parallel", "intersect", "slope", "gradient", "area", "perimeter",
	"volume", "pythagoras", "trigonometry", "sine", "cosine",
	"sin", "cos", "tan", "segment", "sector", "cone", "cylinder",
	"sphere", "pyramid", "prism", "quadrilateral", "parallelogram",
	"trapezium", "rhombus", "kite", "ellipse", "parabola", "hyperbola",
	// figures
	"diagram", "figure", "construct", "draw", "sketch", "shape",
	"right-angled", "isosceles", "equilateral", "scalene", "circumference",
	"angle of elevation", "angle of depression", "line segment",
	"parallel lines", "bisector", "midpoint", "intersection",
	"area of", "perimeter of", "volume of", "surface area",
	// coordinate geometry
	"coordinate geometry", "cartesian", "x-axis", "y-axis", "origin",
	"quadrant", "ordinate", "abscissa", "distance formula", "midpoint formula",
	// transformations
	"similarity", "congruence", "transformation", "reflection", "rotation",
	"translation", "enlargement", "symmetry", "congruent", "similar",
	// mensuration
	"arc length", "sector area", "segment area",
	"lateral surface", "total surface area",
}

func normalize(question, explanation string) string {
	return strings.ToLower(question + " " + explanation)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Classify maps question and explanation text to a template kind. Text that
// only hits the broad vocabulary is generic; text that hits nothing has no
// kind.
func Classify(question, explanation string) Kind {
	text := normalize(question, explanation)
	if strings.TrimSpace(text) == "" {
		return KindNone
	}
	for _, r := range rules {
		if containsAny(text, r.keywords) {
			return r.kind
		}
	}
	if containsAny(text, vocabulary) {
		return KindGeneric
	}
	return KindNone
}

// Keywords returns the vocabulary terms present in the text, in vocabulary
// order.
func Keywords(question, explanation string) []string {
	text := normalize(question, explanation)
	var out []string
	for _, k := range vocabulary {
		if strings.Contains(text, k) {
			out = append(out, k)
		}
	}
	return out
}

// Classification is the classifier's view of one bank question.
type Classification struct {
	Kind            Kind
	Related         bool
	HasSVG          bool
	HasDiagramField bool
	Keywords        []string
}

// ClassifyQuestion also treats a question as diagram-related when it
// already carries markup or a diagram field, even if no keyword matched. In
// that case Kind stays KindNone and the existing content is used.
func ClassifyQuestion(q bank.Question) Classification {
	c := Classification{
		Kind:            Classify(q.Question, q.Explanation),
		HasSVG:          strings.Contains(q.Explanation, "<svg"),
		HasDiagramField: q.HasDiagram(),
		Keywords:        Keywords(q.Question, q.Explanation),
	}
	c.Related = c.Kind != KindNone || c.HasSVG || c.HasDiagramField
	return c
}
