package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/numera"
	"github.com/roach88/numera/codec"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To        string
	From      string
	Separator string
}

// ConvertResult holds conversion results for JSON output.
type ConvertResult struct {
	To      string   `json:"to"`
	Results []string `json:"results,omitempty"`
	Values  []int64  `json:"values,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert integers or numeral strings between systems",
		Long: `Convert integers or numeral strings between systems.

Integer arguments are encoded into the target system; multiple integers
form a batch that stops at the first failure. String arguments are
translated into the target system, auto-detecting the source unless
--from names one. Use --to integer to decode strings to integers.

Examples:
  numera convert 1984 --to roman
  numera convert 1 2 3 --to ethiopic
  numera convert MCMLXXXIV --to hanzi
  numera convert MCMLXXXIV --to integer`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "target system, or \"integer\" to decode")
	cmd.Flags().StringVar(&opts.From, "from", "auto", "source system for string inputs")
	cmd.Flags().StringVar(&opts.Separator, "separator", "", "group separator for positional systems")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	setupLogging(opts.Verbose, cmd)

	convOpts, err := conversionOptions(opts)
	if err != nil {
		_ = formatter.Error("invalid_flag", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	ints, allInts := parseIntegers(args)

	switch {
	case opts.To == "integer":
		values := make([]int64, 0, len(args))
		for _, arg := range args {
			logDetection(opts, arg)
			n, err := numera.Decode(arg, convOpts...)
			if err != nil {
				return conversionError(formatter, err)
			}
			values = append(values, n)
		}
		return outputValues(formatter, values)

	case allInts:
		slog.Debug("encoding batch", "count", len(ints), "to", opts.To)
		results, err := numera.EncodeAll(ints, numera.System(opts.To), convOpts...)
		if err != nil {
			return conversionError(formatter, err)
		}
		return outputResults(formatter, opts.To, results)

	default:
		results := make([]string, 0, len(args))
		for _, arg := range args {
			logDetection(opts, arg)
			out, err := numera.Translate(arg, numera.System(opts.To), convOpts...)
			if err != nil {
				return conversionError(formatter, err)
			}
			results = append(results, out)
		}
		return outputResults(formatter, opts.To, results)
	}
}

// conversionOptions translates convert flags into conversion options.
func conversionOptions(opts *ConvertOptions) ([]numera.Option, error) {
	var convOpts []numera.Option
	if opts.From != "" && opts.From != string(numera.Auto) {
		convOpts = append(convOpts, numera.WithFrom(numera.System(opts.From)))
	}
	if opts.Separator != "" {
		r, size := utf8.DecodeRuneInString(opts.Separator)
		if r == utf8.RuneError || size != len(opts.Separator) {
			return nil, fmt.Errorf("--separator must be a single character, got %q", opts.Separator)
		}
		convOpts = append(convOpts, numera.WithSeparator(r))
	}
	return convOpts, nil
}

// parseIntegers parses every argument as a base-10 integer.
// Returns false if any argument is not an integer.
func parseIntegers(args []string) ([]int64, bool) {
	ints := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, false
		}
		ints = append(ints, n)
	}
	return ints, true
}

// logDetection emits a verbose diagnostic naming the system that claims
// a string input when the source is auto-detected.
func logDetection(opts *ConvertOptions, arg string) {
	if opts.From != "" && opts.From != string(numera.Auto) {
		return
	}
	if sys, ok := numera.Detect(arg); ok {
		slog.Debug("detected source system", "input", arg, "system", string(sys))
	} else {
		slog.Debug("no system claims input", "input", arg)
	}
}

// conversionError outputs a conversion error and maps it to an exit code.
// Naming an unregistered system is a command error; everything else is a
// conversion failure.
func conversionError(formatter *OutputFormatter, err error) error {
	code := codec.ErrorCode(err)
	if code == "" {
		_ = formatter.Error("error", err.Error(), nil)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	_ = formatter.Error(string(code), err.Error(), nil)
	if code == codec.CodeUnknownSystem {
		return WrapExitError(ExitCommandError, "unknown system", err)
	}
	return WrapExitError(ExitFailure, "conversion failed", err)
}

func outputResults(formatter *OutputFormatter, to string, results []string) error {
	if formatter.Format == "json" {
		return formatter.Success(ConvertResult{To: to, Results: results})
	}
	for _, r := range results {
		fmt.Fprintln(formatter.Writer, r)
	}
	return nil
}

func outputValues(formatter *OutputFormatter, values []int64) error {
	if formatter.Format == "json" {
		return formatter.Success(ConvertResult{To: "integer", Values: values})
	}
	for _, v := range values {
		fmt.Fprintln(formatter.Writer, v)
	}
	return nil
}

// newFormatter builds the shared output formatter for a command
// invocation. Verbose logs go to stderr to avoid corrupting JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   uuid.NewString(),
	}
}

// setupLogging configures the default slog logger for the invocation.
// Diagnostics use Debug level so they only surface with --verbose.
func setupLogging(verbose bool, cmd *cobra.Command) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
