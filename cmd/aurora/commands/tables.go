package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aurora-io/aurora-go/internal/constants"
)

// NewTablesCommand creates the tables command group
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tables",
		Aliases: []string{"table"},
		Short:   "Manage tenant tables",
		Long:    "List and inspect the tenant's data tables",
	}

	cmd.AddCommand(newTablesListCommand())
	cmd.AddCommand(newTablesGetCommand())

	return cmd
}

func newTablesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Tables().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			rendered, err := renderStructured(list)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Slug", "Name", "Fields")

			for _, item := range list.Tables {
				_ = table.Append(item.Slug, item.Name, fmt.Sprintf("%d", len(item.Fields)))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTablesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SLUG",
		Short: "Show one table and its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			if slug == "" {
				return constants.ErrTableSlugRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			item, err := client.Tables().Get(context.Background(), slug)
			if err != nil {
				return fmt.Errorf("failed to get table: %w", err)
			}

			rendered, err := renderStructured(item)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Label", "Type", "Required")

			for _, field := range item.Fields {
				_ = table.Append(field.Key, field.Label, field.Type, fmt.Sprintf("%t", field.Required))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
