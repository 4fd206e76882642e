package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ynab struct {
		BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
		BudgetID string `mapstructure:"budget_id" yaml:"budget_id"`
		APIToken string `mapstructure:"api_token" yaml:"-"` // Never serialize the token
	} `mapstructure:"ynab" yaml:"ynab"`

	Data struct {
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		MappingsFile   string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"data" yaml:"data"`

	Reconciliation struct {
		Strategy string `mapstructure:"strategy" yaml:"strategy"`
	} `mapstructure:"reconciliation" yaml:"reconciliation"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ynab-sync")
	v.AddConfigPath(".ynab-sync")
	v.AddConfigPath(".")

	v.SetEnvPrefix("YNAB_SYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars on a broken config file
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API token always comes from the environment, unprefixed
	if err := v.BindEnv("ynab.api_token", "YNAB_API_TOKEN"); err != nil {
		Logger.Warnf("Failed to bind YNAB_API_TOKEN environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ynab.base_url", "https://api.ynab.com/v1")
	v.SetDefault("ynab.budget_id", "")

	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.mappings_file", "mappings.yaml")

	v.SetDefault("reconciliation.strategy", string(models.StrategyRange))
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := models.ParseReconciliationStrategy(config.Reconciliation.Strategy); err != nil {
		return err
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
