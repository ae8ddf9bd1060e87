package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numera/catalog"
)

// ListResult holds the catalog listing for JSON output.
type ListResult struct {
	Count   int             `json:"count"`
	Systems []catalog.Entry `json:"systems"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered numeral systems",
		Long: `List all registered numeral systems.

Prints every system's identifier, title, and an example rendering of
1984, in detection priority order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	entries, err := catalog.Load()
	if err != nil {
		_ = formatter.Error("catalog_error", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ListResult{Count: len(entries), Systems: entries})
	}

	for _, entry := range entries {
		fmt.Fprintf(formatter.Writer, "%-22s %-28s %s\n", entry.System, entry.Title, entry.Example)
	}
	fmt.Fprintf(formatter.Writer, "\n%d system(s)\n", len(entries))
	return nil
}
