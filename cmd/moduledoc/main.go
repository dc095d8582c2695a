// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

// moduledoc regenerates osbuild module reference pages from module metadata.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	"github.com/woozymasta/moduledoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/moduledoc"
	_buildTime string
)

// cliOptions describes moduledoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Sync     syncCommand     `command:"sync" description:"Clone osbuild and regenerate module pages"`
	Render   renderCommand   `command:"render" description:"Render one module metadata file to markdown"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
}

// syncCommand clones module sources and rewrites category pages.
type syncCommand struct {
	runner *cliRunner

	ConfigPath   string   `short:"c" long:"config" description:"YAML config file; flags override its values"`
	Root         string   `short:"r" long:"root" description:"Documentation tree root (default: .)"`
	Repository   string   `long:"repository" description:"Repository URL to clone"`
	Ref          string   `long:"ref" description:"Branch or tag to clone"`
	Depth        *int     `long:"depth" description:"Clone depth, 0 for full history (default: 1)"`
	DocsPath     string   `long:"docs-path" description:"Module pages directory relative to root"`
	IndexFile    string   `long:"index-file" description:"Category page kept during cleanup (default: index.md)"`
	TemplatePath string   `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	LogLevel     string   `long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Categories   []string `long:"category" description:"Category directory to process; repeat for several (default: stages, sources)"`
}

// Execute runs sync subcommand.
func (command *syncCommand) Execute(_ []string) error {
	return command.runner.runSync(command)
}

// renderCommand converts one metadata file to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input *.meta.json path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Title        string `short:"T" long:"title" description:"Page title (default: input file name without .meta.json)"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.Title, command.TemplatePath, command.Args.Input, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	fs          afero.Fs
	cloner      moduledoc.Cloner
	logger      *log.Logger
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return newRunner(os.Stdin, stdout, stderr).run(args)
}

// newRunner builds runner on OS filesystem with git based cloner.
func newRunner(stdin io.Reader, stdout, stderr io.Writer) *cliRunner {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "moduledoc"
	}

	return &cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		fs:          afero.NewOsFs(),
		cloner:      moduledoc.GitCloner{},
		logger: log.NewWithOptions(stderr, log.Options{
			ReportTimestamp: false,
		}),
	}
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runSync resolves config from file and flags, then runs the sync.
func (runner *cliRunner) runSync(command *syncCommand) error {
	level, err := log.ParseLevel(command.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	runner.logger.SetLevel(level)

	cfg, err := runner.resolveSyncConfig(command)
	if err != nil {
		return err
	}

	ctx := log.WithContext(context.Background(), runner.logger)
	result, err := moduledoc.Sync(ctx, moduledoc.SyncOptions{
		Config: cfg,
		Fs:     runner.fs,
		Cloner: runner.cloner,
	})
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	for _, category := range result.Categories {
		if _, err := fmt.Fprintf(runner.stdout, "%s: %d written, %d removed (%s)\n",
			category.Name, len(category.Written), len(category.Removed), category.Dir); err != nil {
			return fmt.Errorf("write summary to stdout: %w", err)
		}
	}

	return nil
}

// resolveSyncConfig overlays config file and explicit flags on defaults.
func (runner *cliRunner) resolveSyncConfig(command *syncCommand) (moduledoc.Config, error) {
	cfg := moduledoc.DefaultConfig()
	if path := strings.TrimSpace(command.ConfigPath); path != "" {
		loaded, err := moduledoc.LoadConfig(runner.fs, path)
		if err != nil {
			return moduledoc.Config{}, fmt.Errorf("load config %q: %w", path, err)
		}

		cfg = loaded
	}

	overrideString(&cfg.Root, command.Root)
	overrideString(&cfg.Repository, command.Repository)
	overrideString(&cfg.Ref, command.Ref)
	overrideString(&cfg.DocsPath, command.DocsPath)
	overrideString(&cfg.IndexFile, command.IndexFile)
	overrideString(&cfg.TemplateFile, command.TemplatePath)

	if command.Depth != nil {
		cfg.Depth = *command.Depth
	}

	if len(command.Categories) > 0 {
		cfg.Categories = append([]string(nil), command.Categories...)
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return moduledoc.Config{}, err
	}

	return cfg, nil
}

// overrideString replaces target with non-empty flag value.
func overrideString(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

// runRender renders one metadata document and writes result to stdout or file.
func (runner *cliRunner) runRender(title, templatePath, inputPath, outputPath string) error {
	data, sourcePath, err := runner.readRecordInput(inputPath)
	if err != nil {
		return fmt.Errorf("read record input: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		if sourcePath == "" {
			return errors.New("title is required when reading from stdin")
		}

		title = moduledoc.DocumentTitle(sourcePath)
	}

	record, err := moduledoc.ParseRecord(data)
	if err != nil {
		return fmt.Errorf("parse record: %w", err)
	}

	renderOptions := moduledoc.Options{}
	if templatePath != "" {
		customTemplate, err := afero.ReadFile(runner.fs, templatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", templatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := moduledoc.Render(moduledoc.NewDocument(title, record), renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(outputPath, rendered, "markdown")
}

// runTemplate writes built-in template to stdout or file.
func (runner *cliRunner) runTemplate(outputPath string) error {
	return runner.writeOutput(outputPath, moduledoc.BuiltinTemplate(), "template")
}

// writeOutput writes text to file when path is set, stdout otherwise.
func (runner *cliRunner) writeOutput(outputPath, text, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := afero.WriteFile(runner.fs, outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// readRecordInput reads metadata from file path or stdin; source path is empty for stdin.
func (runner *cliRunner) readRecordInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := afero.ReadFile(runner.fs, path)
		if err != nil {
			return nil, "", fmt.Errorf("read record file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read record from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read record from stdin: empty input")
	}

	return data, "", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Sync.runner = runner
	options.Render.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"sync": strings.TrimSpace(fmt.Sprintf(`
Shallow-clone osbuild and regenerate stage and source reference pages.
Stale *.md pages in every category directory are removed first; index.md is kept.

Examples:
> $ %s sync --root ~/src/docs
> $ %s sync -c moduledoc.yaml --ref main --log-level debug
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render one module metadata file to markdown.
Reads metadata from file argument or stdin; writes markdown to file argument or stdout.

Examples:
> $ %s render stages/org.osbuild.chrony.meta.json > org.osbuild.chrony.md
> $ cat mount.meta.json | %s render --title mount
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > module.gotmpl
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
	return err
}
