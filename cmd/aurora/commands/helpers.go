package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
	"github.com/aurora-io/aurora-go/pkg/auroraclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds an API client from the resolved CLI configuration.
func createClient() (aurora.Client, error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, constants.ErrNoEndpointConfigured
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	client, err := auroraclient.New(&aurora.Config{
		Endpoint:       endpoint,
		APIKey:         apiKey,
		TenantSlug:     viper.GetString("tenant"),
		DiscoverTenant: viper.GetBool("discover"),
		Debug:          viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderStructured writes value as JSON or YAML to stdout. It returns false
// when output is neither, leaving table rendering to the caller.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}
