package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCapabilitiesCommand creates the capabilities command
func NewCapabilitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "capabilities",
		Aliases: []string{"caps"},
		Short:   "Display tenant capabilities",
		Long:    "Display the tenant slug and feature flags provisioned for this API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			caps, err := client.Capabilities(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get capabilities: %w", err)
			}

			rendered, err := renderStructured(caps)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Tenant", caps.TenantSlug)

			features := make([]string, 0, len(caps.Features))
			for name := range caps.Features {
				features = append(features, name)
			}

			sort.Strings(features)

			for _, name := range features {
				_ = table.Append(name, fmt.Sprintf("%t", caps.Features[name]))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
