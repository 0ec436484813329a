package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/flinti/csvtextab"
)

func init() {
	version.SetDefaultModule("github.com/flinti/csvtextab")
}

type options struct {
	argument    string
	columnInts  string
	columnNames string
	texHeader   bool
	texCells    bool
	vspace      string
	headerRule  bool
	noHeader    bool
	encoding    string
	verbose     bool
	informat    string
	latex       bool
	pretext     string
	posttext    string
	showVersion bool
}

func main() {
	var opts options

	flags := pflag.NewFlagSet("csvtextab", pflag.ContinueOnError)
	flags.StringVarP(&opts.argument, "argument", "a", "", "Argument to the tabular environment; default is one 'c' per output column")
	flags.StringVarP(&opts.columnInts, "column-order-int", "c", "", "Output column order as 0-based indices, e.g. 1,0,0,2; a column may repeat")
	flags.StringVarP(&opts.columnNames, "column-order-string", "C", "", "Output column order as header names, e.g. name,title,name; a column may repeat")
	flags.BoolVarP(&opts.texHeader, "texheader", "t", false, "Do not escape column headers; assume they are valid LaTeX")
	flags.BoolVarP(&opts.texCells, "texcells", "T", false, "Do not escape cells; assume they are valid LaTeX")
	flags.StringVarP(&opts.vspace, "vspace", "V", "", "Vertical space between rows as a LaTeX length, e.g. 5.5pt")
	flags.BoolVarP(&opts.headerRule, "headerline", "L", false, "Emit \\hline after the header row")
	flags.BoolVarP(&opts.noHeader, "noheader", "H", false, "Treat the first row as data, not column names")
	flags.StringVarP(&opts.encoding, "encoding", "e", "utf-8", "Input[,output] encoding as IANA charset names")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Write diagnostics to stderr")
	flags.StringVarP(&opts.informat, "informat", "f", "", "Input format as 1 to 2 characters: <delimiter><quotechar>; default ',\"'")
	flags.BoolVarP(&opts.latex, "latex", "l", false, "Output a compilable LaTeX document with preamble and document environment")
	flags.StringVarP(&opts.pretext, "pretext", "p", "", "Text inserted before \\begin{tabular}, e.g. \\centering")
	flags.StringVarP(&opts.posttext, "posttext", "P", "", "Text appended after \\end{tabular}")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: csvtextab [flags] [infile [outfile]]\n")
		fmt.Fprintln(os.Stderr, "\nCreates a LaTeX tabular environment from a CSV file. Without file")
		fmt.Fprintln(os.Stderr, "arguments (or with '-') the standard streams are used. Leading spaces")
		fmt.Fprintln(os.Stderr, "are stripped from column headers. Try 'csvtextab -LV 4pt <INFILE>'")
		fmt.Fprintln(os.Stderr, "if you are unsure which options to use.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	args := flags.Args()
	if len(args) > 2 {
		fmt.Fprintf(os.Stderr, "csvtextab: expected at most 2 file arguments, got %d\n", len(args))
		flags.Usage()
		os.Exit(2)
	}

	cfg, err := opts.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvtextab: %v\n", err)
		os.Exit(2)
	}
	if opts.verbose {
		cfg.Verbose = os.Stderr
		fmt.Fprintf(os.Stderr, "selected encodings: in: %s out: %s\n", cfg.InputEncoding, cfg.OutputEncoding)
	}

	inPath, outPath := "", ""
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	reader, closeIn, err := openInput(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvtextab: open input: %v\n", err)
		os.Exit(1)
	}
	if closeIn != nil {
		defer func() { _ = closeIn.Close() }()
	}
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "reading from %s\n", streamName(inPath, "stdin"))
	}
	if isStd(inPath) && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading CSV from terminal; end input with Ctrl-D")
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvtextab: open output: %v\n", err)
		os.Exit(1)
	}
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "writing to %s\n", streamName(outPath, "stdout"))
	}

	err = csvtextab.Convert(csvtextab.ConvertRequest{
		Reader: reader,
		Writer: writer,
		Config: cfg,
	})
	if closeOut != nil {
		if cerr := closeOut.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csvtextab: close output: %w", cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// config builds the immutable pipeline configuration from the parsed flags.
// Errors returned here are usage errors and exit with status 2.
func (o options) config() (csvtextab.Config, error) {
	cfg := csvtextab.DefaultConfig()

	if o.informat != "" {
		if len(o.informat) > 2 {
			return cfg, fmt.Errorf("informat takes 1 to 2 characters, got %q", o.informat)
		}
		cfg.Delimiter = o.informat[0]
		if len(o.informat) > 1 {
			cfg.Quote = o.informat[1]
		}
	}

	in, out, err := splitEncodings(o.encoding)
	if err != nil {
		return cfg, err
	}
	cfg.InputEncoding = in
	cfg.OutputEncoding = out

	if o.columnInts != "" && o.columnNames != "" {
		return cfg, fmt.Errorf("%w: -c and -C cannot be combined", csvtextab.ErrOptionConflict)
	}
	if o.columnInts != "" {
		cfg.Columns, err = csvtextab.ParseIndexSpec(o.columnInts)
		if err != nil {
			return cfg, err
		}
	}
	if o.columnNames != "" {
		cfg.Columns, err = csvtextab.ParseNameSpec(o.columnNames)
		if err != nil {
			return cfg, err
		}
	}

	cfg.TabularArg = o.argument
	cfg.VSpace = o.vspace
	cfg.HeaderRule = o.headerRule
	cfg.NoHeader = o.noHeader
	cfg.RawHeader = o.texHeader
	cfg.RawCells = o.texCells
	cfg.Standalone = o.latex
	cfg.PreText = o.pretext
	cfg.PostText = o.posttext
	return cfg, nil
}

// splitEncodings parses the -e argument: <encoding in>[,<encoding out>].
// A single name applies to both streams.
func splitEncodings(s string) (in, out string, err error) {
	parts := strings.SplitN(s, ",", 2)
	in = strings.TrimSpace(parts[0])
	if in == "" {
		return "", "", fmt.Errorf("encoding needs at least one charset name")
	}
	out = in
	if len(parts) > 1 {
		out = strings.TrimSpace(parts[1])
		if out == "" {
			return "", "", fmt.Errorf("empty output encoding in %q", s)
		}
	}
	return in, out, nil
}

func isStd(path string) bool {
	return path == "" || path == "-"
}

func streamName(path, std string) string {
	if isStd(path) {
		return std
	}
	return fmt.Sprintf("file %q", path)
}

func openInput(path string) (io.Reader, io.Closer, error) {
	if isStd(path) {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if isStd(path) {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
