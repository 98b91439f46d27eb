package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelsuite/hotelsuite/internal/cli/resourceselect"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

type listFlags struct {
	page   int
	limit  int
	search string
	output string
}

// NewListCmd creates the list command
func NewListCmd(g *Globals) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "ls [resource]",
		Aliases: []string{"list"},
		Short:   "List rooms, bookings, products and other records",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resource string
			if len(args) == 1 {
				resource = args[0]
			}
			return runList(cmd.Context(), g, resource, flags)
		},
	}

	cmd.Flags().IntVar(&flags.page, "page", 0, "Page number")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&flags.search, "search", "", "Search term")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func runList(ctx context.Context, g *Globals, resource string, flags listFlags, opts ...Option) error {
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	name, err := resourceselect.Resolve(e.api.CollectionNames(), resource, e.interactive)
	if err != nil {
		return err
	}
	coll, _ := e.api.Collection(name)

	page, err := coll.Browse(ctx, hotel.ListParams{
		Page:   flags.page,
		Limit:  flags.limit,
		Search: flags.search,
	})
	if err != nil {
		return err
	}
	if page == nil {
		return ErrSessionExpired
	}

	if flags.output != outputTable {
		return writeData(e.out, flags.output, page)
	}

	if len(page.Items) == 0 {
		fmt.Fprintf(e.out, "No %s found.\n", name)
		return nil
	}

	if err := writeTable(e.out, page.Items); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "\nShowing %d of %d %s\n", len(page.Items), page.Total, name)
	return nil
}
