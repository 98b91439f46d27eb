package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hotelsuite/hotelsuite/internal/cli/commands"
)

var version = "dev" // Will be set during build

// NewRootCmd builds the hotelctl command tree.
func NewRootCmd() *cobra.Command {
	globals := &commands.Globals{}

	rootCmd := &cobra.Command{
		Use:   "hotelctl",
		Short: "hotelctl - Hotel administration from the terminal",
		Long: `hotelctl manages a hotel through its remote API: rooms, bookings,
shop products and categories, news, gallery and the vision & mission page.

Sign in once with 'hotelctl login'; the session token is kept in the OS keychain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globals.APIURL, "api", "", "API base URL (or set HOTEL_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "Log API requests")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hotelctl version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd(globals))
	rootCmd.AddCommand(commands.NewLogoutCmd(globals))
	rootCmd.AddCommand(commands.NewWhoamiCmd(globals))
	rootCmd.AddCommand(commands.NewListCmd(globals))
	rootCmd.AddCommand(commands.NewDeleteCmd(globals))
	rootCmd.AddCommand(commands.NewDashboardCmd(globals))
	rootCmd.AddCommand(commands.NewSearchCmd(globals))
	rootCmd.AddCommand(commands.NewBookCmd(globals))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
