package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hotelsuite/hotelsuite/internal/cli/resourceselect"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
	"github.com/hotelsuite/hotelsuite/internal/normalize"
	"github.com/hotelsuite/hotelsuite/internal/search"
)

// NewSearchCmd creates the search command
func NewSearchCmd(g *Globals) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <resource>",
		Short: "Search a resource interactively, one query per input line",
		Long: `Reads queries from standard input, one per line. A new query cancels
the one still in flight, so only results for the latest query are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), g, args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results per query")

	return cmd
}

func runSearch(ctx context.Context, g *Globals, resource string, limit int, opts ...Option) error {
	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	name, err := resourceselect.Resolve(e.api.CollectionNames(), resource, false)
	if err != nil {
		return err
	}
	coll, _ := e.api.Collection(name)

	var (
		latest  search.Latest[*normalize.Page[hotel.Entity]]
		wg      sync.WaitGroup
		mu      sync.Mutex
		expired bool
	)
	defer latest.Cancel()

	scanner := bufio.NewScanner(e.in)
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())

		// The next query must not start before this one is registered,
		// or an older query could supersede a newer one.
		registered := make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := latest.Run(ctx, func(ctx context.Context) (*normalize.Page[hotel.Entity], error) {
				close(registered)
				return coll.Browse(ctx, hotel.ListParams{Limit: limit, Search: query})
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, search.ErrSuperseded):
				e.log.Debug().Str("query", query).Msg("Search superseded")
			case err != nil:
				fmt.Fprintf(e.out, "Error: %v\n", err)
			case page == nil:
				expired = true
			default:
				printSearchResults(e, query, page)
			}
		}()
		<-registered
	}
	wg.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}
	if expired {
		return ErrSessionExpired
	}
	return nil
}

func printSearchResults(e *env, query string, page *normalize.Page[hotel.Entity]) {
	fmt.Fprintf(e.out, "Results for %q (%d):\n", query, page.Total)
	if len(page.Items) == 0 {
		fmt.Fprintln(e.out, "  no matches")
		return
	}
	_ = writeTable(e.out, page.Items)
}
