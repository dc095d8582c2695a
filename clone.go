// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CloneOptions describes one clone request.
type CloneOptions struct {
	// URL is the repository location.
	URL string
	// Ref is an optional branch or tag.
	Ref string
	// Depth limits fetched history; zero means full history.
	Depth int
	// Dir is the target directory.
	Dir string
}

// Cloner fetches repository tree into a local directory.
type Cloner interface {
	Clone(ctx context.Context, opt CloneOptions) error
}

// GitCloner clones through the git executable.
type GitCloner struct {
	// Executable overrides git binary name or path.
	Executable string
}

// Clone runs git clone and returns its output as error detail on failure.
func (cloner GitCloner) Clone(ctx context.Context, opt CloneOptions) error {
	executable := cloner.Executable
	if executable == "" {
		executable = "git"
	}

	if _, err := exec.LookPath(executable); err != nil {
		return fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}

	args := cloneArgs(opt)
	command := exec.CommandContext(ctx, executable, args...)

	var output bytes.Buffer
	command.Stdout = &output
	command.Stderr = &output

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(output.String())
		if detail == "" {
			detail = err.Error()
		}

		return fmt.Errorf("%w %q: %s", ErrCloneRepository, opt.URL, detail)
	}

	return nil
}

// cloneArgs builds git clone arguments.
func cloneArgs(opt CloneOptions) []string {
	args := []string{"clone", "--quiet"}
	if opt.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opt.Depth))
	}

	if ref := strings.TrimSpace(opt.Ref); ref != "" {
		args = append(args, "--branch", ref)
	}

	return append(args, "--", opt.URL, opt.Dir)
}
