// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// metaSuffix is stripped from metadata file names to derive page titles.
const metaSuffix = ".meta.json"

// Options configures markdown rendering.
type Options struct {
	// TemplateText replaces built-in template when not empty; its output is
	// kept as is apart from a single trailing newline.
	TemplateText string
}

// Document is one module page before rendering.
type Document struct {
	Title       string
	Summary     string
	Description string
	Schema      json.RawMessage
	Schema2     json.RawMessage
}

// documentView is the view model passed to markdown templates.
type documentView struct {
	Title       string
	Summary     string
	Description string
	Schema      string
	Schema2     string
}

// NewDocument maps a decoded record to a titled page.
func NewDocument(title string, record Record) Document {
	return Document{
		Title:       title,
		Summary:     record.Summary,
		Description: joinDescription(record.Description),
		Schema:      record.Schema,
		Schema2:     record.Schema2,
	}
}

// DocumentTitle derives page title from metadata file name.
func DocumentTitle(fileName string) string {
	return strings.TrimSuffix(path.Base(strings.ReplaceAll(fileName, `\`, "/")), metaSuffix)
}

// DocumentFileName returns markdown file name for a page title.
func DocumentFileName(title string) string {
	return title + ".md"
}

// RenderFile reads module metadata from file and renders markdown page titled after the file.
func RenderFile(fs afero.Fs, filePath string, opt Options) (string, error) {
	record, err := ReadRecordFile(fs, filePath)
	if err != nil {
		return "", err
	}

	return Render(NewDocument(DocumentTitle(filePath), record), opt)
}

// Render converts one module document into markdown.
//
// Summary and description are escaped with EscapeText, title is used as is.
func Render(doc Document, opt Options) (string, error) {
	schema, err := formatSchemaJSON(doc.Schema)
	if err != nil {
		return "", fmt.Errorf("schema: %w", err)
	}

	schema2, err := formatSchemaJSON(doc.Schema2)
	if err != nil {
		return "", fmt.Errorf("schema_2: %w", err)
	}

	view := documentView{
		Title:       doc.Title,
		Summary:     EscapeText(doc.Summary),
		Description: EscapeText(doc.Description),
		Schema:      schema,
		Schema2:     schema2,
	}

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return ensureTrailingNewline(out.String()), nil
}

// BuiltinTemplate returns the embedded module page template.
func BuiltinTemplate() string {
	return builtinTemplateText
}
