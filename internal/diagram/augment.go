package diagram

import (
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

type augmentRule struct {
	kind  Kind
	match func(text string) bool
}

func anyOf(keywords ...string) func(string) bool {
	return func(text string) bool { return containsAny(text, keywords) }
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(text string) bool {
		for _, p := range preds {
			if !p(text) {
				return false
			}
		}
		return true
	}
}

// augmentRules are per subject and, like the classifier, first match wins.
// They look at the question text only.
var augmentRules = map[string][]augmentRule{
	"mathematics": {
		{KindBearing, anyOf("bearing")},
		{KindCircle, allOf(anyOf("chord"), anyOf("centre"))},
		{KindTriangle, anyOf("sin", "cos", "tan", "triangle")},
		{KindQuadrilateral, func(t string) bool {
			return strings.Contains(t, "quadrilateral") ||
				strings.Contains(t, "ratio") && strings.Contains(t, "angle")
		}},
		{KindShape3D, allOf(anyOf("cone"), anyOf("volume", "radius", "height"))},
	},
	"physics": {
		{KindForce, anyOf("force", "newton", "friction", "acceleration")},
		{KindCircuit, anyOf("circuit", "current", "resistance", "voltage", "ammeter", "voltmeter")},
		{KindWave, anyOf("wave", "frequency", "amplitude", "wavelength")},
	},
	"chemistry": {
		{KindAtomic, anyOf("atom", "electron", "proton", "neutron", "nucleus")},
		{KindBonding, anyOf("bond", "ionic", "covalent", "molecule")},
		{KindMolecular, anyOf("h2o", "water molecule", "molecular structure")},
	},
}

// AugmentKind reports the diagram the augmenter would attach to a question
// of the given subject, or KindNone.
func AugmentKind(subject, question string) Kind {
	text := strings.ToLower(question)
	for _, r := range augmentRules[strings.ToLower(subject)] {
		if r.match(text) {
			return r.kind
		}
	}
	return KindNone
}

// Augment attaches generated diagrams to a subject's questions: the diagram
// field gets an svg data URI and the explanation gets the markup appended
// in a diagram container. Subjects without rules come back unchanged. The
// input slice is not modified; n counts the questions that got a diagram.
func Augment(subject string, qs []bank.Question) (out []bank.Question, n int) {
	out = make([]bank.Question, len(qs))
	for i, q := range qs {
		out[i] = q
		kind := AugmentKind(subject, q.Question)
		if kind == KindNone {
			continue
		}
		p := Params{QuestionID: q.ID.String(), Text: strings.ToLower(q.Question)}
		if kind == KindBearing {
			if b, ok := ParseBearing(q.Question); ok {
				p.BearingDegrees = &b
			}
		}
		svg := Generate(kind, p)
		uri := DataURI(svg)
		out[i].Diagram = &uri
		out[i].Explanation = q.Explanation + " " + Container(svg)
		n++
	}
	return out, n
}

// Container wraps markup the way explanations embed diagrams.
func Container(svg string) string {
	return `<div class="diagram-container"><h5>Diagram:</h5>` + svg + `</div>`
}

// DataURI is the inverse of DecodeDataURI for the percent-encoded form.
func DataURI(svg string) string {
	return svgDataURI + ";utf8," + encodeURIComponent(svg)
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent escapes everything except A-Z a-z 0-9 and -_.!~*'().
// url.PathEscape and url.QueryEscape both use different sets.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
