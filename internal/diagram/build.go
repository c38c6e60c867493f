package diagram

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

const svgDataURI = "data:image/svg+xml"

// Origin records where a diagram's markup came from.
type Origin string

const (
	FromDataURI     Origin = "diagram"
	FromExplanation Origin = "explanation"
	Generated       Origin = "generated"
)

// Record is one entry of the diagram map.
type Record struct {
	QuestionID string
	SVG        string
	Kind       Kind
	Origin     Origin
}

// Result is the outcome of one builder pass over a subject.
type Result struct {
	Records []Record
	// Related counts the diagram-related questions, Total all questions.
	Related int
	Total   int
}

// Map returns the records keyed by question id.
func (r Result) Map() Map {
	m := make(Map, len(r.Records))
	for _, rec := range r.Records {
		m[rec.QuestionID] = rec.SVG
	}
	return m
}

var svgBlock = regexp.MustCompile(`(?s)<svg[^>]*>.*?</svg>`)

// ExtractSVG returns the first complete <svg> element embedded in text, or
// "" when there is none.
func ExtractSVG(text string) string {
	return svgBlock.FindString(text)
}

var errNotSVGURI = errors.New("diagram: not an svg data uri")

// DecodeDataURI decodes a data:image/svg+xml URI. Both the percent-encoded
// and base64 forms are accepted. Everything after the first comma is data.
func DecodeDataURI(uri string) (string, error) {
	if !strings.Contains(uri, svgDataURI) {
		return "", errNotSVGURI
	}
	meta, data, ok := strings.Cut(uri, ",")
	if !ok || data == "" {
		return "", fmt.Errorf("diagram: decode data uri: empty payload")
	}
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("diagram: decode data uri: %w", err)
		}
		return string(b), nil
	}
	s, err := url.PathUnescape(data)
	if err != nil {
		return "", fmt.Errorf("diagram: decode data uri: %w", err)
	}
	return s, nil
}

// Resolve produces the diagram for one question. The diagram field wins,
// then markup embedded in the explanation, then a generated template. ok is
// false for questions that are not diagram-related.
func Resolve(q bank.Question) (Record, bool) {
	c := ClassifyQuestion(q)
	if !c.Related {
		return Record{}, false
	}
	id := q.ID.String()
	if c.HasDiagramField {
		svg, err := DecodeDataURI(*q.Diagram)
		switch {
		case err == nil && svg != "":
			return Record{QuestionID: id, SVG: svg, Kind: c.Kind, Origin: FromDataURI}, true
		case err != nil && !errors.Is(err, errNotSVGURI):
			log.Printf("diagram: question %s: %v", id, err)
		}
	}
	if c.HasSVG {
		if svg := ExtractSVG(q.Explanation); svg != "" {
			return Record{QuestionID: id, SVG: svg, Kind: c.Kind, Origin: FromExplanation}, true
		}
	}
	kind := c.Kind
	if kind == KindNone {
		kind = KindGeneric
	}
	return Record{QuestionID: id, SVG: Generate(kind, paramsFor(q)), Kind: kind, Origin: Generated}, true
}

func paramsFor(q bank.Question) Params {
	p := Params{QuestionID: q.ID.String(), Text: normalize(q.Question, q.Explanation)}
	if b, ok := ParseBearing(q.Question + " " + q.Explanation); ok {
		p.BearingDegrees = &b
	}
	return p
}

// Build runs Resolve over a subject's questions in order. Questions without
// an id are skipped since they cannot be looked up.
func Build(qs []bank.Question) Result {
	res := Result{Total: len(qs)}
	for _, q := range qs {
		rec, ok := Resolve(q)
		if !ok {
			continue
		}
		res.Related++
		if rec.SVG == "" || rec.QuestionID == "" {
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// Map is the persisted question id -> SVG table.
type Map map[string]string

// Keys orders ids the way the map file lists them: integer ids ascending,
// then the rest lexicographically.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := indexKey(keys[i])
		b, bok := indexKey(keys[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func indexKey(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(k, 10, 32)
	return n, err == nil
}

func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(m[k]); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

// Encode renders the map file: two-space indent, markup left unescaped.
func (m Map) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("diagram: encode map: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseMap decodes a map file.
func ParseMap(data []byte) (Map, error) {
	m := Map{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("diagram: parse map: %w", err)
	}
	return m, nil
}
