package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Show the salary history, or the current salary histogram, for a keyword",
	Run: func(cmd *cobra.Command, _ []string) {
		salary(cmd)
	},
}

func init() {
	rootCmd.AddCommand(salaryCmd)

	salaryCmd.Flags().StringP("what", "w", "", "keywords to compute statistics for")
	salaryCmd.Flags().UintP("months", "m", 0, "how many months back to fetch (history only)")
	salaryCmd.Flags().Bool("histogram", false, "show the current salary distribution instead of the history")
}

func salary(cmd *cobra.Command) {
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

	what, _ := cmd.Flags().GetString("what")

	if histogram, _ := cmd.Flags().GetBool("histogram"); histogram {
		req := client.Histogram().Country(country)
		if what != "" {
			req = req.What(what)
		}

		result, err := req.Fetch(ctx)
		if err != nil {
			logger.Fatal("fetching the salary histogram", zap.Error(err))
		}

		for _, bucket := range sortedNumericKeys(result.Histogram) {
			fmt.Printf("%12s+  %d live ads\n", bucket, result.Histogram[bucket])
		}
		return
	}

	req := client.History().Country(country)
	if months, _ := cmd.Flags().GetUint("months"); months != 0 {
		req = req.Months(months)
	}

	result, err := req.Fetch(ctx)
	if err != nil {
		logger.Fatal("fetching the salary history", zap.Error(err))
	}

	months := make([]string, 0, len(result.Month))
	for month := range result.Month {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		fmt.Printf("%s  %.2f\n", month, result.Month[month])
	}
}

// sortedNumericKeys orders histogram buckets by their numeric value,
// not lexically.
func sortedNumericKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	return keys
}
