package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numera"
	"github.com/roach88/numera/codec"
)

// DetectResult holds the detection outcome for JSON output.
type DetectResult struct {
	Input  string `json:"input"`
	System string `json:"system"`
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <string>",
		Short: "Identify the numeral system of a string",
		Long: `Identify the numeral system of a string.

Walks the registered systems in detection priority order and prints the
first system whose script claims the input.

Example:
  numera detect MCMLXXXIV`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDetect(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sys, ok := numera.Detect(input)
	if !ok {
		// unknown_system maps to ExitCommandError everywhere in the CLI.
		msg := fmt.Sprintf("no registered system claims %q", input)
		_ = formatter.Error(string(codec.CodeUnknownSystem), msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	if formatter.Format == "json" {
		return formatter.Success(DetectResult{Input: input, System: string(sys)})
	}
	fmt.Fprintln(formatter.Writer, string(sys))
	return nil
}
