package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelsuite/hotelsuite/internal/cli/resourceselect"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd(g *Globals) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), g, args[0], args[1], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, g *Globals, resource, id string, yes bool, opts ...Option) error {
	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	name, err := resourceselect.Resolve(e.api.CollectionNames(), resource, false)
	if err != nil {
		return err
	}
	coll, _ := e.api.Collection(name)

	if !yes {
		if !e.interactive {
			return fmt.Errorf("refusing to delete without confirmation (use --yes in non-interactive mode)")
		}
		if !resourceselect.Confirm(fmt.Sprintf("Delete %s %s", name, id)) {
			fmt.Fprintln(e.out, "Aborted")
			return nil
		}
	}

	deleted, err := coll.Remove(ctx, hotel.ID(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionExpired
	}

	fmt.Fprintf(e.out, "✓ Deleted %s %s\n", name, id)
	return nil
}
