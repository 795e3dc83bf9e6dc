package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the job categories of a country",
	Run: func(_ *cobra.Command, _ []string) {
		categories()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func categories() {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client, err := newClient(config, logger)
	if err != nil {
		logger.Fatal("loading api credentials", zap.Error(err))
	}

	country, err := resolveCountry(config)
	if err != nil {
		logger.Fatal("resolving country", zap.Error(err))
	}

	result, err := client.Categories().Country(country).Fetch(ctx)
	if err != nil {
		logger.Fatal("fetching categories", zap.Error(err))
	}

	for _, category := range result.Results {
		fmt.Printf("%-40s %s\n", category.Tag, category.Label)
	}
}
