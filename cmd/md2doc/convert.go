package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	md2doc "github.com/alnah/go-md2doc"
	"github.com/alnah/go-md2doc/internal/config"
	"github.com/alnah/go-md2doc/internal/fileutil"
	"github.com/alnah/go-md2doc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage             = errors.New("invalid usage")
	ErrNoInput           = errors.New("no input specified")
	ErrConversionsFailed = errors.New("conversion failed")
)

// streamPath selects stdin as input or stdout as output.
const streamPath = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positionalArgs))
	}

	cfg, envCfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	conv, format, err := newConverter(cfg, env.Logger)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == streamPath || flags.output == streamPath {
		if flags.watch {
			return fmt.Errorf("%w: --watch needs file input and output", ErrUsage)
		}
		return convertStream(ctx, conv, inputPath, flags.output, flags.common.quiet, env)
	}

	// Resolve output directory
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir, format.Extension())
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	env.Logger.Debug("starting conversion", "files", len(files), "workers", workers, "format", string(format))

	// Convert files
	results := convertBatch(ctx, conv, files, workers)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	if flags.watch {
		w := &watcher{
			root:      inputPath,
			outputDir: outputDir,
			extension: format.Extension(),
			conv:      conv,
			workers:   workers,
			quiet:     flags.common.quiet,
			verbose:   flags.common.verbose,
			env:       env,
		}
		return w.run(ctx)
	}

	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionsFailed, failedCount, len(results))
	}

	return nil
}

// resolveConfig loads the config file, then applies environment variables
// and flags on top, and validates the result.
func resolveConfig(flags *convertFlags, env *Environment) (*config.Config, *envConfig, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	// Load configuration
	cfg := config.DefaultConfig()
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, nil, configError(name, err)
		}
	}

	// Environment, then CLI flags (CLI wins)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, withHint(err)
	}
	return cfg, envCfg, nil
}

// configError adds the search-path hint to a config lookup failure.
func configError(name string, err error) error {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("loading config: %w", err)
	}
	var searched []string
	if !fileutil.IsFilePath(name) {
		searched = config.SearchPaths(name)
	}
	return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
}

// withHint appends the matching hint for option errors.
func withHint(err error) error {
	switch {
	case errors.Is(err, md2doc.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(md2doc.HighlightStyles()))
	case errors.Is(err, md2doc.ErrThemeNotFound):
		return fmt.Errorf("%w%s", err, hints.ForThemeNotFound(md2doc.Themes()))
	case errors.Is(err, md2doc.ErrInvalidFormat), errors.Is(err, config.ErrInvalidValue):
		names := make([]string, 0, len(md2doc.Formats()))
		for _, f := range md2doc.Formats() {
			names = append(names, string(f))
		}
		return fmt.Errorf("%w%s", err, hints.ForFormat(names))
	}
	return err
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Format flags
	if flags.format.format != "" {
		cfg.Output.Format = flags.format.format
	}
	if flags.format.indent {
		cfg.Output.Indent = true
	}

	// HTML flags
	if flags.html.standalone {
		cfg.HTML.Standalone = true
	}
	if flags.html.title != "" {
		cfg.HTML.Title = flags.html.title
	}
	if flags.html.highlight {
		cfg.HTML.Highlight.Enabled = true
	}
	if flags.html.style != "" {
		cfg.HTML.Highlight.Style = flags.html.style
		cfg.HTML.Highlight.Enabled = true
	}
	if flags.html.theme != "" {
		cfg.HTML.Theme = flags.html.theme
	}
	if flags.html.assetsDir != "" {
		cfg.HTML.AssetsDir = flags.html.assetsDir
	}

	// Storage and ADF flags
	if flags.storage.codeMacro != "" {
		cfg.Storage.CodeMacro = flags.storage.codeMacro
	}
	if flags.adf.localIDs {
		cfg.ADF.LocalIDs = true
	}

	// Disable flags
	if flags.html.noStandalone {
		cfg.HTML.Standalone = false
	}
	if flags.html.noHighlight {
		cfg.HTML.Highlight.Enabled = false
	}
}

// newConverter builds a library converter from the resolved config.
func newConverter(cfg *config.Config, logger *slog.Logger) (*md2doc.Converter, md2doc.Format, error) {
	format := md2doc.DefaultFormat
	if cfg.Output.Format != "" {
		var err error
		if format, err = md2doc.ParseFormat(cfg.Output.Format); err != nil {
			return nil, "", withHint(err)
		}
	}

	opts := []md2doc.Option{
		md2doc.WithFormat(format),
		md2doc.WithLogger(logger),
		md2doc.WithIndent(cfg.Output.Indent),
	}
	if cfg.HTML.Highlight.Enabled {
		opts = append(opts, md2doc.WithHighlighting(cfg.HTML.Highlight.Style))
	}
	if cfg.HTML.Standalone {
		opts = append(opts, md2doc.WithStandaloneHTML(cfg.HTML.Title))
	}
	if cfg.HTML.Theme != "" {
		opts = append(opts, md2doc.WithTheme(cfg.HTML.Theme), md2doc.WithAssetPath(cfg.HTML.AssetsDir))
	}
	if cfg.Storage.CodeMacro != "" {
		opts = append(opts, md2doc.WithCodeMacro(cfg.Storage.CodeMacro))
	}
	if cfg.ADF.LocalIDs {
		opts = append(opts, md2doc.WithLocalIDs(nil))
	}

	conv, err := md2doc.NewConverter(opts...)
	if err != nil {
		return nil, "", withHint(err)
	}
	return conv, format, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStream converts a single source read from stdin or a file and
// writes the result to stdout or a file.
func convertStream(ctx context.Context, conv CLIConverter, inputPath, outputPath string, quiet bool, env *Environment) error {
	var r io.Reader = env.Stdin
	if inputPath != streamPath {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return err
		}
		f, err := os.Open(inputPath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		}
		defer f.Close()
		r = f
	}

	result, err := conv.ConvertReader(ctx, r, "")
	if err != nil {
		return err
	}

	if !quiet {
		for _, w := range result.Warnings {
			fmt.Fprintf(env.Stderr, "warning: %s: %s\n", displayName(inputPath), w)
		}
	}

	if outputPath == "" || outputPath == streamPath {
		if _, err := env.Stdout.Write(result.Output); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(outputPath, result.Output, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// displayName names an input in messages.
func displayName(inputPath string) string {
	if inputPath == streamPath {
		return "<stdin>"
	}
	return inputPath
}
