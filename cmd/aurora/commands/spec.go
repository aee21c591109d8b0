package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSpecCommand creates the spec command
func NewSpecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Display the tenant's published API spec",
		Long:  "Display the servers and paths of the tenant's published spec document",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			doc, err := client.Spec(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get spec document: %w", err)
			}

			rendered, err := renderStructured(doc)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Schema", doc.SchemaVersion)

			for i, server := range doc.Servers {
				label := fmt.Sprintf("Server %d", i+1)
				if server.Description != "" {
					label += " (" + server.Description + ")"
				}

				_ = table.Append(label, server.URL)
			}

			paths := make([]string, 0, len(doc.Paths))
			for path := range doc.Paths {
				paths = append(paths, path)
			}

			sort.Strings(paths)

			for _, path := range paths {
				methods := make([]string, 0, len(doc.Paths[path]))
				for method := range doc.Paths[path] {
					methods = append(methods, strings.ToUpper(method))
				}

				sort.Strings(methods)
				_ = table.Append(path, strings.Join(methods, ", "))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
