package cmd

import (
	"errors"
	"log"

	adzuna "github.com/jobtools/adzuna-go"
	"github.com/jobtools/adzuna-go/internal/logger"
	"github.com/jobtools/adzuna-go/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "adzuna"

	appIDEnv  = "ADZUNA_APP_ID"
	appKeyEnv = "ADZUNA_APP_KEY"
)

// Config is the file-backed configuration of the cli.
type Config struct {
	Country   string         `mapstructure:"country"`
	Search    map[string]any `mapstructure:"search"`
	SeenFile  string         `mapstructure:"seen-file"`
	MinSalary float64        `mapstructure:"min-salary"`
	Exclude   *struct {
		Companies []string
	} `mapstructure:"exclude"`
	Credentials *CredentialsConfig `mapstructure:"credentials"`
}

// CredentialsConfig carries the API credentials. File variants take
// precedence over inline values; the environment beats both.
type CredentialsConfig struct {
	AppID      string `mapstructure:"app-id"`
	AppIDFile  string `mapstructure:"app-id-file"`
	AppKey     string `mapstructure:"app-key"`
	AppKeyFile string `mapstructure:"app-key-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "adzuna is a simple cli for searching jobs and salary statistics on the Adzuna API",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is adzuna.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("country", "c", "", "two-letter country code (default is us)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("country", rootCmd.PersistentFlags().Lookup("country"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless one was named explicitly:
	// flags and environment variables can carry everything needed.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return l
}

// newClient resolves the API credentials and builds the client.
func newClient(config *Config, l *zap.Logger) (*adzuna.Client, error) {
	creds := config.Credentials
	if creds == nil {
		creds = &CredentialsConfig{}
	}

	appID, err := secrets.Load(secrets.Source{
		Name:  "app_id",
		Value: creds.AppID,
		Env:   appIDEnv,
		File:  creds.AppIDFile,
	})
	if err != nil {
		return nil, err
	}

	appKey, err := secrets.Load(secrets.Source{
		Name:  "app_key",
		Value: creds.AppKey,
		Env:   appKeyEnv,
		File:  creds.AppKeyFile,
	})
	if err != nil {
		return nil, err
	}

	return adzuna.New(appID, appKey, l), nil
}

// resolveCountry turns the configured country code into a Country,
// keeping the library default when nothing was set.
func resolveCountry(config *Config) (adzuna.Country, error) {
	code := viper.GetString("country")
	if code == "" {
		code = config.Country
	}
	if code == "" {
		return adzuna.UnitedStates, nil
	}

	return adzuna.ParseCountry(code)
}
