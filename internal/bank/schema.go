package bank

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// bankSchema is the shape every subject file must have. Answer keys are not
// checked here; Analyze reports those.
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "question"],
        "properties": {
          "id": {"type": ["integer", "string"]},
          "question": {"type": "string"},
          "options": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "text"],
              "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"}
              }
            }
          },
          "correctAnswer": {"type": ["string", "null"]},
          "explanation": {"type": ["string", "null"]},
          "diagram": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("bank.schema.json", bankSchema)

// validate checks data against the bank schema.
func validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("bank: parse json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("bank: schema: %w", err)
	}
	return nil
}
