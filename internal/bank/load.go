package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the bank file for a subject: "Financial_Account" ->
// "financial_account_questions.json".
func FileName(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject)) + "_questions.json"
}

// Parse validates a subject file against the bank schema and decodes it. A
// bank without a questions array is an error.
func Parse(data []byte) (Bank, error) {
	if err := validate(data); err != nil {
		return Bank{}, err
	}
	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return Bank{}, fmt.Errorf("bank: parse json: %w", err)
	}
	return b, nil
}

func LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("bank: read %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return Bank{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return b, nil
}

// LoadSubjects loads every subject's bank from dir. A missing or malformed
// file is logged and that subject skipped; the others still load.
func LoadSubjects(dir string, subjects []string) map[string]Bank {
	out := make(map[string]Bank, len(subjects))
	for _, s := range subjects {
		b, err := LoadFile(filepath.Join(dir, FileName(s)))
		if err != nil {
			log.Printf("bank: skip %s: %v", s, err)
			continue
		}
		out[s] = b
	}
	return out
}

// Marshal renders a bank the way the subject files are stored: two-space
// indent, markup left unescaped.
func Marshal(b Bank) ([]byte, error) {
	return encodeIndented(b)
}

func WriteFile(path string, b Bank) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func encodeIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
