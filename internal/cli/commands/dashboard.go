package commands

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd(g *Globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show product, category and booking totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func runDashboard(ctx context.Context, g *Globals, output string, opts ...Option) error {
	if err := validateOutput(output); err != nil {
		return err
	}

	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	summary, err := e.api.Dashboard(ctx)
	if err != nil {
		return err
	}
	if summary == nil {
		return ErrSessionExpired
	}

	if output != outputTable {
		return writeData(e.out, output, summary)
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Products\t%d\n", summary.ProductCount)
	fmt.Fprintf(w, "Categories\t%d\n", summary.CategoryCount)
	fmt.Fprintf(w, "Bookings\t%d\n", summary.BookingCount)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(summary.Errors) > 0 {
		names := make([]string, 0, len(summary.Errors))
		for name := range summary.Errors {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(e.out)
		for _, name := range names {
			fmt.Fprintf(e.out, "Warning: failed to load %s: %s\n", name, summary.Errors[name])
		}
	}
	return nil
}
