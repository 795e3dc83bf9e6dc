package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	adzuna "github.com/jobtools/adzuna-go"
	"github.com/jobtools/adzuna-go/internal/filtering"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	promptReportByCompany = "Report by company"
	promptDumpToFile      = "Dump results to a file"
	promptMarkSeen        = "Mark results as seen"
	promptExit            = "Exit"
)

// SearchOptions mirrors the optional query parameters of the search
// endpoint, as they appear under the "search" key of the config file.
type SearchOptions struct {
	What                 string   `mapstructure:"what"`
	WhatAnd              string   `mapstructure:"what-and"`
	WhatPhrase           string   `mapstructure:"what-phrase"`
	WhatOr               string   `mapstructure:"what-or"`
	WhatExclude          string   `mapstructure:"what-exclude"`
	Where                string   `mapstructure:"where"`
	TitleOnly            string   `mapstructure:"title-only"`
	Locations            []string `mapstructure:"locations"`
	Category             string   `mapstructure:"category"`
	Company              string   `mapstructure:"company"`
	Distance             uint     `mapstructure:"distance"`
	ResultsPerPage       uint     `mapstructure:"results-per-page"`
	Page                 uint     `mapstructure:"page"`
	MaxDaysOld           uint     `mapstructure:"max-days-old"`
	SalaryMin            uint     `mapstructure:"salary-min"`
	SalaryMax            uint     `mapstructure:"salary-max"`
	SalaryIncludeUnknown bool     `mapstructure:"salary-include-unknown"`
	FullTime             bool     `mapstructure:"full-time"`
	PartTime             bool     `mapstructure:"part-time"`
	Contract             bool     `mapstructure:"contract"`
	Permanent            bool     `mapstructure:"permanent"`
	SortBy               string   `mapstructure:"sort-by"`
	SortDir              string   `mapstructure:"sort-dir"`
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job advertisements",
	Run: func(cmd *cobra.Command, _ []string) {
		search(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("what", "w", "", "keywords to search for")
	searchCmd.Flags().String("where", "", "the geographic centre of the search")
	searchCmd.Flags().UintP("results-per-page", "n", 0, "number of results per page")
	searchCmd.Flags().UintP("page", "p", 0, "page of results to fetch (starts at 1)")
	searchCmd.Flags().StringP("seen-file", "e", "", "file with advertisements to exclude as already seen")
	searchCmd.Flags().BoolP("no-prompt", "y", false, "print the report and exit without asking")

	viper.BindPFlag("seen-file", searchCmd.Flags().Lookup("seen-file"))
}

func search(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client, err := newClient(config, logger)
	if err != nil {
		logger.Fatal("loading api credentials",
			zap.Error(err),
			zap.String("hint", fmt.Sprintf("set the %s and %s environment variables or the credentials section of the config file", appIDEnv, appKeyEnv)),
		)
	}

	opts, err := decodeSearchOptions(config.Search)
	if err != nil {
		logger.Fatal("decoding search options", zap.Error(err))
	}
	mergeSearchFlags(cmd, opts)

	country, err := resolveCountry(config)
	if err != nil {
		logger.Fatal("resolving country", zap.Error(err))
	}

	req, err := opts.apply(client.Search().Country(country))
	if err != nil {
		logger.Fatal("building the search request", zap.Error(err))
	}

	logger.Info("starting the search", zap.String("what", opts.What), zap.String("country", country.Code()))

	results, err := req.Fetch(ctx)
	if err != nil {
		logger.Fatal("searching", zap.Error(err))
	}

	logger.Info("got search results",
		zap.Int("matched", results.Count),
		zap.Int("on this page", len(results.Results)),
	)

	seenFile := viper.GetString("seen-file")
	if seenFile == "" {
		seenFile = config.SeenFile
	}

	fcfg := &filtering.Config{
		MinSalary: config.MinSalary,
		SeenFile:  seenFile,
	}
	if config.Exclude != nil {
		fcfg.Companies = config.Exclude.Companies
	}

	steps := []filtering.Filter{
		filtering.NewSeen(fcfg.SeenFile),
		filtering.NewCompanies(fcfg.Companies),
		filtering.NewSalaryFloor(fcfg.MinSalary),
	}

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}

	jobs, err := filtering.Run(fcfg, filtering.Deps{Logger: logger}, steps, results.Results)
	if err != nil {
		logger.Fatal("filtering results", zap.Error(err))
	}

	if len(jobs) == 0 {
		logger.Info("exiting", zap.String("reason", "no advertisements left after filtering"))
		return
	}

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		reportByCompany(jobs)
		return
	}

	askForAction(jobs, seenFile, logger)
}

func askForAction(jobs []adzuna.Job, seenFile string, logger *zap.Logger) {
	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{promptReportByCompany, promptDumpToFile, promptMarkSeen, promptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("prompt failed", zap.Error(err))
		}

		switch action {
		case promptReportByCompany:
			reportByCompany(jobs)
		case promptDumpToFile:
			path, err := dumpJobs(jobs)
			if err != nil {
				logger.Fatal("dumping results", zap.Error(err))
			}
			logger.Info("dumped results", zap.String("file", path))
		case promptMarkSeen:
			if seenFile == "" {
				logger.Warn("no seen file configured, nothing to do")
				continue
			}
			if err := markSeen(jobs, seenFile); err != nil {
				logger.Fatal("updating the seen file", zap.Error(err))
			}
			logger.Info("marked results as seen", zap.Int("count", len(jobs)), zap.String("file", seenFile))
		case promptExit:
			return
		}
	}
}

func decodeSearchOptions(raw map[string]any) (*SearchOptions, error) {
	opts := &SearchOptions{}
	if raw == nil {
		return opts, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           opts,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return opts, nil
}

func mergeSearchFlags(cmd *cobra.Command, opts *SearchOptions) {
	if what, _ := cmd.Flags().GetString("what"); what != "" {
		opts.What = what
	}
	if where, _ := cmd.Flags().GetString("where"); where != "" {
		opts.Where = where
	}
	if perPage, _ := cmd.Flags().GetUint("results-per-page"); perPage != 0 {
		opts.ResultsPerPage = perPage
	}
	if page, _ := cmd.Flags().GetUint("page"); page != 0 {
		opts.Page = page
	}
}

// apply transfers every set option onto the request builder.
func (o *SearchOptions) apply(req *adzuna.SearchRequest) (*adzuna.SearchRequest, error) {
	if o.What != "" {
		req = req.What(o.What)
	}
	if o.WhatAnd != "" {
		req = req.WhatAnd(o.WhatAnd)
	}
	if o.WhatPhrase != "" {
		req = req.WhatPhrase(o.WhatPhrase)
	}
	if o.WhatOr != "" {
		req = req.WhatOr(o.WhatOr)
	}
	if o.WhatExclude != "" {
		req = req.WhatExclude(o.WhatExclude)
	}
	if o.Where != "" {
		req = req.Place(o.Where)
	}
	if o.TitleOnly != "" {
		req = req.TitleOnly(o.TitleOnly)
	}
	for _, location := range o.Locations {
		req = req.Location(location)
	}
	if o.Category != "" {
		req = req.Category(o.Category)
	}
	if o.Company != "" {
		req = req.Company(o.Company)
	}
	if o.Distance != 0 {
		req = req.Distance(o.Distance)
	}
	if o.ResultsPerPage != 0 {
		req = req.ResultsPerPage(o.ResultsPerPage)
	}
	if o.Page != 0 {
		req = req.Page(o.Page)
	}
	if o.MaxDaysOld != 0 {
		req = req.MaxDaysOld(o.MaxDaysOld)
	}
	if o.SalaryMin != 0 {
		req = req.SalaryMin(o.SalaryMin)
	}
	if o.SalaryMax != 0 {
		req = req.SalaryMax(o.SalaryMax)
	}
	if o.SalaryIncludeUnknown {
		req = req.SalaryIncludeUnknown()
	}
	if o.FullTime {
		req = req.FullTime()
	}
	if o.PartTime {
		req = req.PartTime()
	}
	if o.Contract {
		req = req.Contract()
	}
	if o.Permanent {
		req = req.Permanent()
	}
	if o.SortBy != "" {
		switch sortBy := adzuna.SortBy(o.SortBy); sortBy {
		case adzuna.SortByDefault, adzuna.SortByHybrid, adzuna.SortByDate, adzuna.SortBySalary, adzuna.SortByRelevance:
			req = req.SortBy(sortBy)
		default:
			return nil, fmt.Errorf("unsupported sort-by %q", o.SortBy)
		}
	}
	if o.SortDir != "" {
		switch sortDir := adzuna.SortDirection(o.SortDir); sortDir {
		case adzuna.SortAscending, adzuna.SortDescending:
			req = req.SortDir(sortDir)
		default:
			return nil, fmt.Errorf("unsupported sort-dir %q", o.SortDir)
		}
	}

	return req, nil
}

func reportByCompany(jobs []adzuna.Job) {
	byCompany := make(map[string][]adzuna.Job)
	var order []string
	for _, job := range jobs {
		name := job.Company.DisplayName
		if name == "" {
			name = "(unknown company)"
		}
		if _, ok := byCompany[name]; !ok {
			order = append(order, name)
		}
		byCompany[name] = append(byCompany[name], job)
	}

	for _, name := range order {
		fmt.Printf("%s:\n", name)
		for _, job := range byCompany[name] {
			salary := ""
			if job.SalaryMin != 0 || job.SalaryMax != 0 {
				salary = fmt.Sprintf(" [%.0f-%.0f]", job.SalaryMin, job.SalaryMax)
				if bool(job.SalaryIsPredicted) {
					salary += " (predicted)"
				}
			}
			fmt.Printf("  - %s%s\n    %s\n", job.Title, salary, job.RedirectURL)
		}
	}
}

func dumpJobs(jobs []adzuna.Job) (string, error) {
	file, err := os.CreateTemp("", "adzuna_jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jobs); err != nil {
		return "", err
	}

	return file.Name(), nil
}

func markSeen(jobs []adzuna.Job, path string) error {
	seen, err := filtering.LoadSeenAds(path)
	if err != nil {
		return err
	}

	seen.Append(jobs)

	return seen.ToFile(path)
}
