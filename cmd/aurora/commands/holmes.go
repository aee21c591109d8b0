package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// NewHolmesCommand creates the holmes command
func NewHolmesCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "holmes QUERY",
		Short: "Ask the Holmes inference engine",
		Long:  "Run a natural-language inference query over the tenant's data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrQueryTermRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			inference, err := client.Holmes().Infer(context.Background(), &aurora.InferParams{
				Query: args[0],
				Mode:  mode,
			})
			if err != nil {
				return fmt.Errorf("failed to run inference: %w", err)
			}

			rendered, err := renderStructured(inference)
			if rendered || err != nil {
				return err
			}

			fmt.Println(inference.Answer)

			if inference.Confidence > 0 {
				fmt.Printf("Confidence: %.2f\n", inference.Confidence)
			}

			if len(inference.Sources) > 0 {
				fmt.Printf("Sources: %s\n", strings.Join(inference.Sources, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "inference mode")

	return cmd
}
