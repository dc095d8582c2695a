// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRecordAllFields(t *testing.T) {
	t.Parallel()

	record, err := ParseRecord([]byte(`{
  "summary": "Mount filesystems",
  "description": ["First line.", "Second <line>."],
  "schema": {"additionalProperties": false},
  "schema_2": {"options": {"type": "object"}},
  "capabilities": ["CAP_SYS_ADMIN"]
}`))
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}

	if record.Summary != "Mount filesystems" {
		t.Fatalf("summary = %q", record.Summary)
	}

	wantDescription := []string{"First line.", "Second <line>."}
	if !reflect.DeepEqual(record.Description, wantDescription) {
		t.Fatalf("description = %#v, want %#v", record.Description, wantDescription)
	}

	if string(record.Schema) != `{"additionalProperties": false}` {
		t.Fatalf("schema = %s", record.Schema)
	}

	if string(record.Schema2) != `{"options": {"type": "object"}}` {
		t.Fatalf("schema_2 = %s", record.Schema2)
	}
}

func TestParseRecordDefaults(t *testing.T) {
	t.Parallel()

	record, err := ParseRecord([]byte(" {} \n"))
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}

	if record.Summary != "" {
		t.Fatalf("summary = %q, want empty", record.Summary)
	}

	if !reflect.DeepEqual(record.Description, []string{""}) {
		t.Fatalf("description = %#v, want one empty line", record.Description)
	}

	if record.Schema != nil || record.Schema2 != nil {
		t.Fatalf("schemas should be absent: %s %s", record.Schema, record.Schema2)
	}
}

func TestParseRecordEmptyDescriptionArray(t *testing.T) {
	t.Parallel()

	record, err := ParseRecord([]byte(`{"description": []}`))
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}

	if len(record.Description) != 0 {
		t.Fatalf("description = %#v, want empty", record.Description)
	}
}

func TestParseRecordDescriptionType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"string":     `{"description": "not a list"}`,
		"null":       `{"description": null}`,
		"number":     `{"description": 3}`,
		"object":     `{"description": {"a": "b"}}`,
		"mixed list": `{"description": ["ok", 1]}`,
		"null item":  `{"description": [null]}`,
	}

	for name, input := range cases {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseRecord([]byte(input))
			if !errors.Is(err, ErrDescriptionType) {
				t.Fatalf("ParseRecord error = %v, want ErrDescriptionType", err)
			}
		})
	}
}

func TestParseRecordSummaryType(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`{"summary": null}`, `{"summary": ["a"]}`, `{"summary": true}`} {
		_, err := ParseRecord([]byte(input))
		if !errors.Is(err, ErrSummaryType) {
			t.Fatalf("ParseRecord(%s) error = %v, want ErrSummaryType", input, err)
		}
	}
}

func TestParseRecordInvalidRoot(t *testing.T) {
	t.Parallel()

	for _, input := range []string{``, `[]`, `"text"`, `{"summary": `, `null`} {
		_, err := ParseRecord([]byte(input))
		if !errors.Is(err, ErrDecodeRecord) {
			t.Fatalf("ParseRecord(%q) error = %v, want ErrDecodeRecord", input, err)
		}
	}
}

func TestJSONKind(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`"x"`:   "string",
		` [1]`:  "array",
		`{}`:    "object",
		`true`:  "boolean",
		`false`: "boolean",
		`null`:  "null",
		`-1.5`:  "number",
		``:      "empty",
	}

	for input, want := range cases {
		if got := jsonKind([]byte(input)); got != want {
			t.Fatalf("jsonKind(%q) = %q, want %q", input, got, want)
		}
	}
}
