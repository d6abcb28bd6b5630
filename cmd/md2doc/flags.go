package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags holds output format selection.
type formatFlags struct {
	format string
	indent bool
}

// htmlFlags holds HTML output flags.
type htmlFlags struct {
	standalone   bool
	title        string
	highlight    bool
	style        string
	theme        string
	assetsDir    string
	noStandalone bool
	noHighlight  bool
}

// storageFlags holds storage markup flags.
type storageFlags struct {
	codeMacro string
}

// adfFlags holds JSON document flags.
type adfFlags struct {
	localIDs bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	watch   bool
	format  formatFlags
	html    htmlFlags
	storage storageFlags
	adf     adfFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show sizes, timing and parse warnings")
}

// addFormatFlags adds output format flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "output format: adf, html, storage")
	fs.BoolVar(&f.indent, "indent", false, "pretty-print JSON output")
}

// addHTMLFlags adds HTML output flags to a FlagSet.
func addHTMLFlags(fs *flag.FlagSet, f *htmlFlags) {
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap HTML in a complete page")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = first heading)")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight HTML code blocks")
	fs.StringVar(&f.style, "style", "", "highlight style name (implies --highlight)")
	fs.StringVar(&f.theme, "theme", "", "page theme for standalone HTML")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "directory with custom themes/{name}.css")
	fs.BoolVar(&f.noStandalone, "no-standalone", false, "output an HTML fragment")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
}

// addStorageFlags adds storage markup flags to a FlagSet.
func addStorageFlags(fs *flag.FlagSet, f *storageFlags) {
	fs.StringVar(&f.codeMacro, "code-macro", "", "macro name for code blocks (default: code)")
}

// addADFFlags adds JSON document flags to a FlagSet.
func addADFFlags(fs *flag.FlagSet, f *adfFlags) {
	fs.BoolVar(&f.localIDs, "local-ids", false, "add a UUID localId to every table")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parsing and completion generation.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "reconvert when input files change")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)
	addHTMLFlags(fs, &f.html)
	addStorageFlags(fs, &f.storage)
	addADFFlags(fs, &f.adf)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
