// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// schemaIndent is indentation used for pretty printed schema blocks.
	schemaIndent = "  "
	// emptySchemaJSON is rendered for absent schema values.
	emptySchemaJSON = "{}"
)

// textEscaper escapes angle brackets so text does not turn into HTML tags.
var textEscaper = strings.NewReplacer("<", `\<`, ">", `\>`)

// EscapeText escapes every < and > with a leading backslash.
//
// Escaping is not idempotent: already escaped text gets escaped again.
func EscapeText(text string) string {
	return textEscaper.Replace(text)
}

// joinDescription joins description lines into one markdown block.
func joinDescription(lines []string) string {
	return strings.Join(lines, "\n")
}

// formatSchemaJSON pretty prints raw JSON keeping original key order.
func formatSchemaJSON(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return emptySchemaJSON, nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, trimmed, "", schemaIndent); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormatSchemaJSON, err)
	}

	return out.String(), nil
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
