// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

package moduledoc

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	// tempDirPattern prefixes temporary clone directories.
	tempDirPattern = "moduledoc-"
	// repoDirName is the clone target inside temporary directory.
	repoDirName = "repo"
	// documentPerm is file mode of written pages.
	documentPerm = 0o644
	// dirPerm is file mode of created output directories.
	dirPerm = 0o755
)

// SyncOptions configures Sync.
type SyncOptions struct {
	// Config selects repository, categories and output paths.
	Config Config
	// Fs is used for temporary, source and output files; OS filesystem when nil.
	Fs afero.Fs
	// Cloner fetches repository; GitCloner when nil.
	Cloner Cloner
	// Render configures page rendering; Config.TemplateFile is loaded when TemplateText is empty.
	Render Options
}

// CategoryResult lists files touched in one category output directory.
type CategoryResult struct {
	Name    string
	Dir     string
	Removed []string
	Written []string
}

// SyncResult summarizes one sync run.
type SyncResult struct {
	Categories []CategoryResult
}

// Sync clones module sources and regenerates category pages.
//
// Stale *.md pages are removed before new ones are written, except the
// configured index file. The first failure aborts the run; the temporary
// clone is removed on every exit path.
func Sync(ctx context.Context, opt SyncOptions) (SyncResult, error) {
	logger := log.FromContext(ctx)

	cfg := opt.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return SyncResult{}, err
	}

	fs := opt.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cloner := opt.Cloner
	if cloner == nil {
		cloner = GitCloner{}
	}

	renderOptions, err := resolveRenderOptions(fs, opt.Render, cfg)
	if err != nil {
		return SyncResult{}, err
	}

	tempDir, err := afero.TempDir(fs, "", tempDirPattern)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create temporary directory: %w", err)
	}
	defer func() {
		if err := fs.RemoveAll(tempDir); err != nil {
			logger.Warn("remove temporary directory", "dir", tempDir, "err", err)
		}
	}()

	repoDir := filepath.Join(tempDir, repoDirName)
	if err := fs.MkdirAll(repoDir, dirPerm); err != nil {
		return SyncResult{}, fmt.Errorf("create clone directory: %w", err)
	}

	logger.Info("cloning repository", "url", cfg.Repository, "ref", cfg.Ref, "depth", cfg.Depth)
	if err := cloner.Clone(ctx, CloneOptions{
		URL:   cfg.Repository,
		Ref:   cfg.Ref,
		Depth: cfg.Depth,
		Dir:   repoDir,
	}); err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{Categories: make([]CategoryResult, 0, len(cfg.Categories))}
	for _, category := range cfg.Categories {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		categoryResult, err := syncCategory(ctx, fs, cfg, category, repoDir, renderOptions)
		if err != nil {
			return result, fmt.Errorf("category %q: %w", category, err)
		}

		logger.Info("category updated", "category", category, "removed", len(categoryResult.Removed), "written", len(categoryResult.Written))
		result.Categories = append(result.Categories, categoryResult)
	}

	return result, nil
}

// syncCategory replaces generated pages of one category.
func syncCategory(ctx context.Context, fs afero.Fs, cfg Config, category, repoDir string, renderOptions Options) (CategoryResult, error) {
	logger := log.FromContext(ctx)
	outputDir := cfg.CategoryDir(category)
	result := CategoryResult{Name: category, Dir: outputDir}

	if err := fs.MkdirAll(outputDir, dirPerm); err != nil {
		return result, fmt.Errorf("%w %q: %w", ErrCleanOutput, outputDir, err)
	}

	removed, err := removeStaleDocuments(fs, outputDir, cfg.IndexFile)
	if err != nil {
		return result, err
	}

	for _, name := range removed {
		logger.Debug("removed page", "file", name)
	}
	result.Removed = removed

	sources, err := listRecordFiles(fs, filepath.Join(repoDir, category))
	if err != nil {
		return result, err
	}

	result.Written = make([]string, 0, len(sources))
	for _, sourcePath := range sources {
		title := DocumentTitle(sourcePath)
		record, err := ReadRecordFile(fs, sourcePath)
		if err != nil {
			return result, fmt.Errorf("%q: %w", filepath.Base(sourcePath), err)
		}

		rendered, err := Render(NewDocument(title, record), renderOptions)
		if err != nil {
			return result, fmt.Errorf("%q: %w", filepath.Base(sourcePath), err)
		}

		fileName := DocumentFileName(title)
		targetPath := filepath.Join(outputDir, fileName)
		if err := afero.WriteFile(fs, targetPath, []byte(rendered), documentPerm); err != nil {
			return result, fmt.Errorf("%w %q: %w", ErrWriteDocument, targetPath, err)
		}

		logger.Debug("wrote page", "file", fileName)
		result.Written = append(result.Written, fileName)
	}

	return result, nil
}

// removeStaleDocuments deletes every *.md in dir except indexFile and returns removed names.
func removeStaleDocuments(fs afero.Fs, dir, indexFile string) ([]string, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCleanOutput, dir, err)
	}

	sort.Strings(matches)
	removed := make([]string, 0, len(matches))
	for _, match := range matches {
		name := filepath.Base(match)
		if name == indexFile {
			continue
		}

		if err := fs.Remove(match); err != nil {
			return removed, fmt.Errorf("%w %q: %w", ErrCleanOutput, match, err)
		}

		removed = append(removed, name)
	}

	return removed, nil
}

// listRecordFiles returns sorted *.json files of one category source directory.
//
// A missing category directory yields no files.
func listRecordFiles(fs afero.Fs, dir string) ([]string, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := fs.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", match, err)
		}

		if info.IsDir() {
			continue
		}

		files = append(files, match)
	}

	sort.Strings(files)
	return files, nil
}

// resolveRenderOptions loads configured template file unless template text is already set.
func resolveRenderOptions(fs afero.Fs, opt Options, cfg Config) (Options, error) {
	if opt.TemplateText != "" || cfg.TemplateFile == "" {
		return opt, nil
	}

	data, err := afero.ReadFile(fs, cfg.TemplateFile)
	if err != nil {
		return Options{}, fmt.Errorf("read template file %q: %w", cfg.TemplateFile, err)
	}

	opt.TemplateText = string(data)
	return opt, nil
}
