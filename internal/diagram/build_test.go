package diagram

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

func strptr(s string) *string { return &s }

func TestBuildBearingQuestion(t *testing.T) {
	qs := []bank.Question{{ID: bank.IntID(6), Question: "A ship sails on a bearing of 135°. Find its distance east."}}
	m := Build(qs).Map()
	svg, ok := m["6"]
	if !ok {
		t.Fatalf("no entry for 6 in %v", m.Keys())
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "135") {
		t.Fatalf("entry 6:\n%s", svg)
	}
}

func TestBuildExtractsExplanationVerbatim(t *testing.T) {
	frag := `<svg width="120" height="80"><circle cx="40" cy="40" r="30" stroke="#000"/>
  <text x="5" y="75">AB = 7cm</text></svg>`
	q := bank.Question{
		ID:          bank.IntID(11),
		Question:    "Use the figure to find AB.",
		Explanation: "From the figure " + frag + " we get <svg><rect/></svg> too.",
	}
	rec, ok := Resolve(q)
	if !ok {
		t.Fatal("question not related")
	}
	if rec.SVG != frag || rec.Origin != FromExplanation {
		t.Fatalf("got %s %q", rec.Origin, rec.SVG)
	}
}

func TestBuildDecodesDiagramField(t *testing.T) {
	svg := `<svg width="10" height="10"><path d="M0,0 L10,10"/><text>50% & more</text></svg>`
	cases := map[string]string{
		"percent": DataURI(svg),
		"base64":  "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)),
	}
	for name, uri := range cases {
		t.Run(name, func(t *testing.T) {
			rec, ok := Resolve(bank.Question{ID: bank.StringID("q1"), Question: "Name the shape", Diagram: strptr(uri)})
			if !ok || rec.SVG != svg || rec.Origin != FromDataURI {
				t.Fatalf("got %v %+v", ok, rec)
			}
		})
	}
}

func TestBuildBadDataURIFallsThrough(t *testing.T) {
	q := bank.Question{
		ID:          bank.IntID(3),
		Question:    "Find the radius",
		Explanation: "see <svg><circle/></svg>",
		Diagram:     strptr("data:image/svg+xml;utf8,%E0%A4%A"),
	}
	rec, _ := Resolve(q)
	if rec.Origin != FromExplanation || rec.SVG != "<svg><circle/></svg>" {
		t.Fatalf("got %+v", rec)
	}

	q = bank.Question{ID: bank.IntID(4), Question: "Find the radius", Diagram: strptr("images/q4.png")}
	rec, _ = Resolve(q)
	if rec.Origin != Generated || rec.Kind != KindCircle {
		t.Fatalf("got %+v", rec)
	}
}

func TestBuildCounts(t *testing.T) {
	qs := []bank.Question{
		{ID: bank.IntID(1), Question: "Who wrote Things Fall Apart?"},
		{ID: bank.IntID(2), Question: "Find the perimeter"},
		{ID: bank.IntID(3), Question: "Evaluate tan 45"},
		{Question: "A chord of length 8"},
	}
	res := Build(qs)
	if res.Total != 4 || res.Related != 3 || len(res.Records) != 2 {
		t.Fatalf("total=%d related=%d records=%d", res.Total, res.Related, len(res.Records))
	}
	if res.Records[0].Kind != KindGeneric || res.Records[1].Kind != KindTriangle {
		t.Fatalf("kinds %s %s", res.Records[0].Kind, res.Records[1].Kind)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	qs := []bank.Question{
		{ID: bank.IntID(1), Question: "A bearing of 060°"},
		{ID: bank.IntID(2), Question: "Plot the points on the cartesian plane"},
	}
	a, _ := Build(qs).Map().Encode()
	b, _ := Build(qs).Map().Encode()
	if string(a) != string(b) {
		t.Fatal("two runs over the same input differ")
	}
}

func TestMapEncodeOrderAndEscaping(t *testing.T) {
	m := Map{"10": "<svg>b</svg>", "2": "<svg>a</svg>", "x1": "c", "01": "d"}
	if got := strings.Join(m.Keys(), ","); got != "2,10,01,x1" {
		t.Fatalf("keys = %s", got)
	}
	data, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"2\": \"<svg>a</svg>\",\n  \"10\": \"<svg>b</svg>\",\n  \"01\": \"d\",\n  \"x1\": \"c\"\n}"
	if string(data) != want {
		t.Fatalf("encoded:\n%s\nwant:\n%s", data, want)
	}
	back, err := ParseMap(data)
	if err != nil || len(back) != 4 || back["10"] != "<svg>b</svg>" {
		t.Fatalf("parse back: %v %v", back, err)
	}
}

func TestAtlas(t *testing.T) {
	recs := []Record{
		{QuestionID: "6", SVG: Generate(KindBearing, Params{})},
		{QuestionID: "9", SVG: Generate(KindCoordinate, Params{})},
		{QuestionID: "12"},
	}
	out := Atlas("mathematics_questions.json", recs)
	for _, want := range []string{
		`<svg width="800" height="1050"`,
		`<text x="20" y="20" class="question-title">Question ID: 6</text>`,
		`<g transform="translate(20, 40) scale(0.8)">`,
		`<text x="20" y="370" class="question-title">Question ID: 9</text>`,
		`<g transform="translate(20, 390) scale(0.8)">`,
		`No diagram available for question 12`,
		"Generated from mathematics_questions.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("atlas missing %q", want)
		}
	}
	if n := strings.Count(out, "<svg"); n != 1 {
		t.Errorf("atlas has %d svg elements, want 1", n)
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Error("atlas not closed")
	}
}
