package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ID is a question id as it appears in a subject file: either a JSON number
// or a JSON string. The original form is kept so a rewritten file matches
// its source.
type ID struct {
	raw     string
	numeric bool
}

func IntID(n int) ID { return ID{raw: strconv.Itoa(n), numeric: true} }

func StringID(s string) ID { return ID{raw: s} }

func (id ID) String() string { return id.raw }

func (id ID) IsZero() bool { return id.raw == "" }

// Int reports the numeric value when the id is an integer (stored either way).
func (id ID) Int() (int, bool) {
	n, err := strconv.Atoi(id.raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ID{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{raw: s}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.New("bank: id must be a number or a string")
		}
		*id = ID{raw: n.String(), numeric: true}
		return nil
	}
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID            ID       `json:"id"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	// Diagram is either absent, null, or a data URI / image reference.
	Diagram *string `json:"diagram,omitempty"`

	// SourceID is set on sampled exam sheets, where ID is renumbered.
	SourceID ID `json:"sourceId,omitzero"`
}

// HasDiagram mirrors the client check `diagram !== null && diagram !== undefined`.
func (q Question) HasDiagram() bool { return q.Diagram != nil }

// HasOption reports whether id names one of the question's options.
func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Bank is one subject file. Passages and instructions only appear in the
// English bank and are passed through untouched.
type Bank struct {
	Questions    []Question      `json:"questions"`
	Passages     json.RawMessage `json:"passages,omitempty"`
	Instructions json.RawMessage `json:"instructions,omitempty"`
}
