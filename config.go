// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRepository is the osbuild source repository cloned on sync.
	DefaultRepository = "https://github.com/osbuild/osbuild"
	// DefaultDocsPath is the module reference directory relative to docs root.
	DefaultDocsPath = "docs/developer-guide/02-projects/osbuild/modules"
	// DefaultIndexFile is the category page preserved during cleanup.
	DefaultIndexFile = "index.md"
	// DefaultDepth is the shallow clone depth.
	DefaultDepth = 1
)

// Config controls one documentation sync run.
type Config struct {
	// Repository is the git URL to clone.
	Repository string `yaml:"repository"`
	// Ref is an optional branch or tag; remote HEAD is used when empty.
	Ref string `yaml:"ref,omitempty"`
	// Depth is the clone depth; zero clones full history.
	Depth int `yaml:"depth"`
	// Root is the documentation tree root.
	Root string `yaml:"root"`
	// DocsPath is the module pages directory relative to Root.
	DocsPath string `yaml:"docs_path"`
	// Categories lists module directories processed in order.
	Categories []string `yaml:"categories"`
	// IndexFile is never removed from category output directories.
	IndexFile string `yaml:"index_file"`
	// TemplateFile is an optional custom markdown template path.
	TemplateFile string `yaml:"template_file,omitempty"`
}

// DefaultConfig returns configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Repository: DefaultRepository,
		Depth:      DefaultDepth,
		Root:       ".",
		DocsPath:   DefaultDocsPath,
		Categories: []string{"stages", "sources"},
		IndexFile:  DefaultIndexFile,
	}
}

// LoadConfig reads YAML config file and overlays it on DefaultConfig.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML config bytes over defaults; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	return cfg.Normalize(), nil
}

// Normalize trims surrounding whitespace from every path and name value.
func (cfg Config) Normalize() Config {
	cfg.Repository = strings.TrimSpace(cfg.Repository)
	cfg.Ref = strings.TrimSpace(cfg.Ref)
	cfg.Root = strings.TrimSpace(cfg.Root)
	cfg.DocsPath = strings.TrimSpace(cfg.DocsPath)
	cfg.IndexFile = strings.TrimSpace(cfg.IndexFile)
	cfg.TemplateFile = strings.TrimSpace(cfg.TemplateFile)

	if cfg.Categories != nil {
		categories := make([]string, 0, len(cfg.Categories))
		for _, category := range cfg.Categories {
			categories = append(categories, strings.TrimSpace(category))
		}

		cfg.Categories = categories
	}

	return cfg
}

// Validate reports config values that cannot drive a sync run.
//
// Names are checked as given; call Normalize first to accept padded values.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Repository) == "" {
		return fmt.Errorf("%w: repository is empty", ErrInvalidConfig)
	}

	if cfg.Depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidConfig, cfg.Depth)
	}

	if len(cfg.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidConfig)
	}

	for _, category := range cfg.Categories {
		if !isPlainName(category) {
			return fmt.Errorf("%w: category %q must be a plain directory name", ErrInvalidConfig, category)
		}
	}

	if !isPlainName(cfg.IndexFile) {
		return fmt.Errorf("%w: index file %q must be a plain file name", ErrInvalidConfig, cfg.IndexFile)
	}

	return nil
}

// CategoryDir returns output directory of one category.
func (cfg Config) CategoryDir(category string) string {
	return filepath.Join(cfg.Root, filepath.FromSlash(cfg.DocsPath), category)
}

// isPlainName reports whether value is a single non-special path element without padding.
func isPlainName(value string) bool {
	if value != strings.TrimSpace(value) || value == "" || value == "." || value == ".." {
		return false
	}

	return !strings.ContainsAny(value, `/\`)
}
