// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FlowKit Authors
// Source: github.com/flowkit/blockdoc

// blockdoc generates markdown reference pages for workflow blocks.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/flowkit/blockdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/flowkit/blockdoc"
	_buildTime string
)

// cliOptions describes blockdoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate block pages and splice cards into the index document"`
	Cards    cardsCommand    `command:"cards" description:"Print block card lines without touching any file"`
	Example  exampleCommand  `command:"example" description:"Print a sample step configuration for one block"`
	Preview  previewCommand  `command:"preview" description:"Convert a generated markdown page to HTML"`
	Template templateCommand `command:"template" description:"Print built-in page or card template"`
}

// outputLocationFlags groups documentation output location flags.
type outputLocationFlags struct {
	DocsDir   string `short:"d" long:"docs-dir" description:"Directory for per-block markdown pages" default:"docs/workflows/blocks"`
	IndexFile string `short:"i" long:"index" description:"Index document carrying the autogenerated card region" default:"docs/workflows/blocks.md"`
	Token     string `long:"token" description:"Sentinel token delimiting the autogenerated card region" default:"<!--- AUTOGENERATED_BLOCKS_LIST -->"`
}

// renderFlags groups page rendering flags.
type renderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom page template (.gotmpl)"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for plain description paragraphs; 0 keeps text verbatim" default:"0"`
}

// loggingFlags groups diagnostic output flags.
type loggingFlags struct {
	LogLevel string `long:"log-level" description:"Diagnostic log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`
}

// generateCommand runs the full documentation pipeline.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Registry string `positional-arg-name:"registry" description:"Block registry listing file (YAML or JSON)" required:"yes"`
	} `positional-args:"yes"`

	OutputFlags  outputLocationFlags `group:"Output Location"`
	RenderFlags  renderFlags         `group:"Page Render"`
	LoggingFlags loggingFlags        `group:"Logging"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(
		command.Args.Registry,
		command.OutputFlags,
		command.RenderFlags,
		command.LoggingFlags.LogLevel,
	)
}

// cardsCommand prints card lines to stdout.
type cardsCommand struct {
	runner *cliRunner
	Args   struct {
		Registry string `positional-arg-name:"registry" description:"Block registry listing file (YAML or JSON)" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs cards subcommand.
func (command *cardsCommand) Execute(_ []string) error {
	return command.runner.runCards(command.Args.Registry)
}

// exampleCommand prints a sample step configuration for one block.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Registry string `positional-arg-name:"registry" description:"Block registry listing file (YAML or JSON)" required:"yes"`
	} `positional-args:"yes"`

	BlockName string `short:"b" long:"block" description:"Block class name (for example: RelativeStaticCropBlock)" required:"yes"`
	Format    string `short:"o" long:"format" description:"Example payload format" choice:"json" choice:"yaml" default:"yaml"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Registry, command.BlockName, command.Format)
}

// previewCommand converts one markdown page to HTML.
type previewCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Generated markdown page path" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output HTML file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs preview subcommand.
func (command *previewCommand) Execute(_ []string) error {
	return command.runner.runPreview(command.Args.Input, command.Args.Output)
}

// templateCommand exports a built-in template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template name" choice:"block" choice:"card" default:"block"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
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
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "blockdoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
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

// runGenerate executes the full pipeline against the filesystem.
func (runner *cliRunner) runGenerate(registryPath string, output outputLocationFlags, render renderFlags, logLevel string) error {
	listing, err := blockdoc.LoadRegistryFile(registryPath)
	if err != nil {
		return fmt.Errorf("load registry %q: %w", registryPath, err)
	}

	opt := blockdoc.Options{
		DocsDir:       output.DocsDir,
		IndexFile:     output.IndexFile,
		SentinelToken: output.Token,
		WrapWidth:     render.WrapWidth,
		Logger:        runner.buildLogger(logLevel),
	}

	if render.TemplatePath != "" {
		customTemplate, err := os.ReadFile(render.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", render.TemplatePath, err)
		}

		opt.PageTemplateText = string(customTemplate)
	}

	if err := blockdoc.Run(listing, opt); err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	return nil
}

// runCards prints card lines to stdout in listing order.
func (runner *cliRunner) runCards(registryPath string) error {
	listing, err := blockdoc.LoadRegistryFile(registryPath)
	if err != nil {
		return fmt.Errorf("load registry %q: %w", registryPath, err)
	}

	result, err := blockdoc.Generate(listing, blockdoc.Options{})
	if err != nil {
		return fmt.Errorf("generate cards: %w", err)
	}

	for _, card := range result.CardLines {
		if _, err := fmt.Fprintln(runner.stdout, card); err != nil {
			return fmt.Errorf("write cards to stdout: %w", err)
		}
	}

	return nil
}

// runExample prints one block's sample step configuration.
func (runner *cliRunner) runExample(registryPath, blockName, format string) error {
	listing, err := blockdoc.LoadRegistryFile(registryPath)
	if err != nil {
		return fmt.Errorf("load registry %q: %w", registryPath, err)
	}

	block, err := findBlock(listing, blockName)
	if err != nil {
		return err
	}

	payload, err := blockdoc.GenerateStepExample(block.Manifest, block.PropertyOrder, blockdoc.ExampleFormat(format))
	if err != nil {
		return fmt.Errorf("generate example for %q: %w", blockName, err)
	}

	if _, err := runner.stdout.Write(payload); err != nil {
		return fmt.Errorf("write example to stdout: %w", err)
	}

	return nil
}

// runPreview converts one markdown page to HTML on stdout or file.
func (runner *cliRunner) runPreview(inputPath, outputPath string) error {
	markdown, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read markdown page %q: %w", inputPath, err)
	}

	html, err := blockdoc.PreviewHTML(markdown)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(html); err != nil {
			return fmt.Errorf("write preview to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, html, 0o600); err != nil {
		return fmt.Errorf("write preview file %q: %w", outputPath, err)
	}

	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := blockdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, tpl); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(tpl), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// buildLogger configures a text slog handler on stderr for the selected level.
func (runner *cliRunner) buildLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: logLevel}))
}

// findBlock selects one descriptor by class name or fully qualified name.
func findBlock(listing []blockdoc.BlockDescriptor, name string) (blockdoc.BlockDescriptor, error) {
	for _, block := range listing {
		if block.FullyQualifiedClassName == name {
			return block, nil
		}

		if strings.HasSuffix(block.FullyQualifiedClassName, "."+name) {
			return block, nil
		}
	}

	return blockdoc.BlockDescriptor{}, fmt.Errorf("block %q not found in registry", name)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Cards.runner = runner
	options.Example.runner = runner
	options.Preview.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one markdown reference page per block and splice the block cards into
the sentinel-delimited region of the index document. The index must carry the
sentinel token exactly twice; the run aborts before any write otherwise.

Examples:
> $ %s generate registry.yaml
> $ %s generate -d docs/blocks -i docs/blocks.md registry.yaml
`, programName, programName)),
		"cards": strings.TrimSpace(fmt.Sprintf(`
Print the single-line HTML block cards in listing order without writing files.

Examples:
> $ %s cards registry.yaml
`, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print a sample step configuration derived from one block manifest.

Examples:
> $ %s example -b RelativeStaticCropBlock registry.yaml
> $ %s example -b RelativeStaticCropBlock -o json registry.yaml
`, programName, programName)),
		"preview": strings.TrimSpace(fmt.Sprintf(`
Convert one generated markdown page to HTML for local inspection.

Examples:
> $ %s preview docs/workflows/blocks/relative_static_crop.md > page.html
`, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page or card template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > block.gotmpl
> $ %s template -t card
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
