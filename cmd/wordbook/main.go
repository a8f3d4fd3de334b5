package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wordbook/backend/internal/config"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/logger"
)

var (
	logLevel string
	cfg      *config.Config
)

// @title Wordbook Dictionary API
// @version 1.0
// @description Session-scoped dictionary lookups, search history, bookmarks and word of the day

// @host localhost:8080
// @BasePath /api/v1
func main() {
	rootCommand := cobra.Command{
		Use:           "wordbook",
		Short:         "Dictionary lookup web application",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if logLevel != "" {
				loaded.Logging.Level = logLevel
			}
			if err := logger.Init(loaded.Logging.Level); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	rootCommand.AddCommand(
		newServeCommand(),
		newLookupCommand(),
		newWordOfDayCommand(),
	)

	err := rootCommand.Execute()
	logger.Sync()
	if err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

// dictionaryConfig maps the loaded configuration onto the dictionary client settings
func dictionaryConfig(cfg *config.Config) dictionary.Config {
	return dictionary.Config{
		DefinitionsBaseURL: cfg.Dictionary.BaseURL,
		RandomWordURL:      cfg.Dictionary.RandomWordURL,
		Timeout:            cfg.Dictionary.Timeout,
		RetryAttempts:      cfg.Dictionary.RetryAttempts,
		RetryDelay:         cfg.Dictionary.RetryDelay,
	}
}
