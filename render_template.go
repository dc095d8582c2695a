// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

// builtinTemplateName names the embedded module page template.
const builtinTemplateName = "module"

// builtinTemplateText is the embedded module page template.
//
//go:embed templates/module.md.gotmpl
var builtinTemplateText string

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(opt Options) (*template.Template, error) {
	name := builtinTemplateName
	templateText := builtinTemplateText
	if strings.TrimSpace(opt.TemplateText) != "" {
		name = "custom"
		templateText = opt.TemplateText
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// templateFuncs provides utility functions available inside markdown templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"escape": EscapeText,
	}
}
