package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aurora-io/aurora-go/internal/constants"
)

// NewStoreCommand creates the store command group
func NewStoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect store content",
		Long:  "Read the tenant's store configuration and published content pages",
	}

	cmd.AddCommand(newStoreConfigCommand())
	cmd.AddCommand(newStorePagesCommand())
	cmd.AddCommand(newStorePageCommand())

	return cmd
}

func newStoreConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the store configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			config, err := client.Store().GetConfig(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get store config: %w", err)
			}

			rendered, err := renderStructured(config)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", config.Name)
			_ = table.Append("Currency", config.Currency)
			_ = table.Append("Locale", config.Locale)
			_ = table.Append("Home page", config.HomePage)
			_ = table.Append("Contact", config.ContactURL)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newStorePagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List published content pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Store().ListPages(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			rendered, err := renderStructured(list)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Slug", "Title", "Updated")

			for _, page := range list.Pages {
				_ = table.Append(page.Slug, page.Title, page.UpdatedAt.Format("2006-01-02"))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newStorePageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page SLUG",
		Short: "Show one content page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrPageSlugRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Store().GetPage(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			rendered, err := renderStructured(page)
			if rendered || err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", page.Title, page.Body)

			return nil
		},
	}
}
