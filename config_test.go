// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Repository != "https://github.com/osbuild/osbuild" {
		t.Fatalf("repository = %q", cfg.Repository)
	}

	if cfg.Depth != 1 {
		t.Fatalf("depth = %d, want 1", cfg.Depth)
	}

	if !reflect.DeepEqual(cfg.Categories, []string{"stages", "sources"}) {
		t.Fatalf("categories = %#v", cfg.Categories)
	}

	want := filepath.Join(".", "docs", "developer-guide", "02-projects", "osbuild", "modules", "stages")
	if got := cfg.CategoryDir("stages"); got != want {
		t.Fatalf("category dir = %q, want %q", got, want)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
repository: https://example.com/fork/osbuild
ref: v120
root: /srv/docs
categories: [stages]
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Repository != "https://example.com/fork/osbuild" || cfg.Ref != "v120" || cfg.Root != "/srv/docs" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	if !reflect.DeepEqual(cfg.Categories, []string{"stages"}) {
		t.Fatalf("categories = %#v", cfg.Categories)
	}

	if cfg.Depth != DefaultDepth || cfg.IndexFile != DefaultIndexFile || cfg.DocsPath != DefaultDocsPath {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("empty config = %+v, want defaults", cfg)
	}
}

func TestParseConfigUnknownField(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("repo: typo\n"))
	if !errors.Is(err, ErrDecodeConfig) {
		t.Fatalf("ParseConfig error = %v, want ErrDecodeConfig", err)
	}
}

func TestParseConfigTrimsPaddedValues(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte("repository: \" https://example.com/osbuild \"\nindex_file: \" index.md\"\ncategories: [\" stages\", \"sources \"]\nroot: \"/docs \"\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Repository != "https://example.com/osbuild" || cfg.IndexFile != "index.md" || cfg.Root != "/docs" {
		t.Fatalf("values not trimmed: %+v", cfg)
	}

	if !reflect.DeepEqual(cfg.Categories, []string{"stages", "sources"}) {
		t.Fatalf("categories = %#v", cfg.Categories)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/etc/moduledoc.yaml", []byte("depth: 0\nindex_file: _index.md\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(fs, "/etc/moduledoc.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Depth != 0 || cfg.IndexFile != "_index.md" {
		t.Fatalf("config = %+v", cfg)
	}

	if _, err := LoadConfig(fs, "/missing.yaml"); !errors.Is(err, ErrReadConfig) {
		t.Fatalf("LoadConfig missing error = %v, want ErrReadConfig", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"empty repository":  func(cfg *Config) { cfg.Repository = " " },
		"negative depth":    func(cfg *Config) { cfg.Depth = -1 },
		"no categories":     func(cfg *Config) { cfg.Categories = nil },
		"nested category":   func(cfg *Config) { cfg.Categories = []string{"stages/extra"} },
		"parent category":   func(cfg *Config) { cfg.Categories = []string{".."} },
		"empty index file":  func(cfg *Config) { cfg.IndexFile = "" },
		"nested index file": func(cfg *Config) { cfg.IndexFile = `sub\index.md` },
		"padded index file": func(cfg *Config) { cfg.IndexFile = " index.md" },
		"padded category":   func(cfg *Config) { cfg.Categories = []string{" stages"} },
	}

	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
