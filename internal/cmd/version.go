package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cli version and, when credentials are configured, the API version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s\n", app, version)

		config, err := getConfig()
		if err != nil {
			return
		}

		client, err := newClient(config, nil)
		if err != nil {
			// No credentials around; the cli version alone is fine.
			return
		}

		apiVersion, err := client.APIVersion().Fetch(context.Background())
		if err != nil {
			fmt.Printf("api version: unavailable (%v)\n", err)
			return
		}

		fmt.Printf("api version: %d (software %s)\n", apiVersion.APIVersion, apiVersion.SoftwareVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
