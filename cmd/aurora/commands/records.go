package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// NewRecordsCommand creates the records command group
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage table records",
		Long:    "List, create, update, and delete records in a tenant table",
	}

	cmd.PersistentFlags().StringP("table", "t", "", "table slug (required)")
	_ = cmd.MarkPersistentFlagRequired("table")

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func recordsForCommand(cmd *cobra.Command) (aurora.RecordsClient, error) {
	slug, _ := cmd.Flags().GetString("table")
	if slug == "" {
		return nil, constants.ErrTableSlugRequired
	}

	client, err := createClient()
	if err != nil {
		return nil, err
	}

	return client.Tables().ForTable(slug).Records(), nil
}

// parseFields decodes a JSON object of field values from a CLI argument.
func parseFields(raw string) (map[string]any, error) {
	var fields map[string]any

	err := json.Unmarshal([]byte(raw), &fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fields as JSON: %w", err)
	}

	return fields, nil
}

func newRecordsListCommand() *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := recordsForCommand(cmd)
			if err != nil {
				return err
			}

			query := aurora.NewQuery()
			if limit > 0 {
				query.SetInt("limit", limit)
			}

			query.Set("cursor", cursor)

			list, err := records.List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			rendered, err := renderStructured(list)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Fields", "Updated")

			for _, record := range list.Records {
				fields, _ := json.Marshal(record.Fields)
				_ = table.Append(record.ID, string(fields), record.UpdatedAt.Format("2006-01-02 15:04"))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "maximum records to return")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrRecordIDRequired
			}

			records, err := recordsForCommand(cmd)
			if err != nil {
				return err
			}

			record, err := records.Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			rendered, err := renderStructured(record)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append("id", record.ID)

			for key, value := range record.Fields {
				_ = table.Append(key, fmt.Sprintf("%v", value))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newRecordsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create FIELDS_JSON",
		Short: "Create a record from a JSON object of field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args[0])
			if err != nil {
				return err
			}

			records, err := recordsForCommand(cmd)
			if err != nil {
				return err
			}

			record, err := records.Create(context.Background(), fields)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			rendered, err := renderStructured(record)
			if rendered || err != nil {
				return err
			}

			fmt.Printf("Created record %s\n", record.ID)

			return nil
		},
	}
}

func newRecordsUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update ID FIELDS_JSON",
		Short: "Update a record with a JSON object of field values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrRecordIDRequired
			}

			fields, err := parseFields(args[1])
			if err != nil {
				return err
			}

			records, err := recordsForCommand(cmd)
			if err != nil {
				return err
			}

			record, err := records.Update(context.Background(), args[0], fields)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			rendered, err := renderStructured(record)
			if rendered || err != nil {
				return err
			}

			fmt.Printf("Updated record %s\n", record.ID)

			return nil
		},
	}
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrRecordIDRequired
			}

			records, err := recordsForCommand(cmd)
			if err != nil {
				return err
			}

			err = records.Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			fmt.Printf("Deleted record %s\n", args[0])

			return nil
		},
	}
}
