// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Record is one decoded module metadata (*.meta.json) document.
type Record struct {
	// Summary is a one-line module summary.
	Summary string
	// Description holds description lines, joined with newlines on render.
	Description []string
	// Schema is the raw JSON value of "schema" field.
	Schema json.RawMessage
	// Schema2 is the raw JSON value of "schema_2" field.
	Schema2 json.RawMessage
}

// rawRecord keeps every known field undecoded so presence and type can be checked.
type rawRecord struct {
	Summary     json.RawMessage `json:"summary"`
	Description json.RawMessage `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	Schema2     json.RawMessage `json:"schema_2"`
}

// ReadRecordFile reads and decodes one module metadata file.
func ReadRecordFile(fs afero.Fs, path string) (Record, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrReadRecordFile, err)
	}

	return ParseRecord(data)
}

// ParseRecord decodes module metadata JSON object.
//
// All fields are optional. Missing summary yields empty text, missing
// description yields one empty line and missing schema values stay nil,
// which render as {}.
func ParseRecord(data []byte) (Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, fmt.Errorf("%w: root must be a JSON object", ErrDecodeRecord)
	}

	var raw rawRecord
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
	}

	record := Record{
		Description: []string{""},
		Schema:      raw.Schema,
		Schema2:     raw.Schema2,
	}

	// json.Unmarshal leaves RawMessage nil for absent keys and keeps
	// the literal "null" for explicit nulls.
	if raw.Summary != nil {
		if !isJSONString(raw.Summary) {
			return Record{}, fmt.Errorf("%w, got %s", ErrSummaryType, jsonKind(raw.Summary))
		}

		if err := json.Unmarshal(raw.Summary, &record.Summary); err != nil {
			return Record{}, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
		}
	}

	if raw.Description != nil {
		lines, err := decodeDescription(raw.Description)
		if err != nil {
			return Record{}, err
		}

		record.Description = lines
	}

	return record, nil
}

// decodeDescription decodes description value that must be an array of strings.
func decodeDescription(value json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if jsonKind(value) != "array" {
		return nil, fmt.Errorf("%w, got %s", ErrDescriptionType, jsonKind(value))
	}

	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
	}

	lines := make([]string, 0, len(items))
	for index, item := range items {
		if !isJSONString(item) {
			return nil, fmt.Errorf("%w, item %d is %s", ErrDescriptionType, index, jsonKind(item))
		}

		var line string
		if err := json.Unmarshal(item, &line); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// isJSONString reports whether raw value is a JSON string literal.
func isJSONString(value json.RawMessage) bool {
	return jsonKind(value) == "string"
}

// jsonKind names the JSON type of raw value by its first significant byte.
func jsonKind(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return "empty"
	}

	switch trimmed[0] {
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
