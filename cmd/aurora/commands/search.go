package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// NewSearchCommand creates the search command group
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the tenant",
		Long:  "Search through the spec-resolved dispatch base, or the tenant site with --site",
	}

	var (
		limit int
		site  bool
	)

	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return constants.ErrQueryTermRequired
		}

		client, err := createClient()
		if err != nil {
			return err
		}

		if site {
			return runSiteSearch(client, args[0], limit)
		}

		result, err := client.Search(context.Background(), &aurora.SearchParams{Q: args[0], Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to search: %w", err)
		}

		rendered, err := renderStructured(result)
		if rendered || err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Title", "Score")

		for _, hit := range result.Hits {
			_ = table.Append(hit.ID, hit.Title, fmt.Sprintf("%.2f", hit.Score))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("%d results\n", result.Total)

		return nil
	}

	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "maximum hits to return")
	cmd.Flags().BoolVar(&site, "site", false, "search the tenant site instead")

	return cmd
}

func runSiteSearch(client aurora.Client, term string, limit int) error {
	result, err := client.Site().Search(context.Background(), &aurora.SiteSearchParams{Q: term, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to search site: %w", err)
	}

	rendered, err := renderStructured(result)
	if rendered || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Title", "Snippet")

	for _, hit := range result.Hits {
		_ = table.Append(hit.ID, hit.Type, hit.Title, hit.Snippet)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("%d results\n", result.Total)

	return nil
}
