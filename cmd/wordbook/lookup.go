package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/logger"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and print its definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			client := dictionary.NewClient(dictionaryConfig(cfg), logger.Logger)
			p := newPrinter(cmd.OutOrStdout())

			definition, err := client.LookupWord(cmd.Context(), word)
			if err != nil {
				if errors.Is(err, dictionary.ErrNotFound) {
					p.printError(msgWordNotFound)
				}
				return fmt.Errorf("dictionary.LookupWord > %w", err)
			}

			p.printDefinition(definition)
			return nil
		},
	}
}

func newWordOfDayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "word-of-day",
		Short: "Print the definition of a random word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := dictionary.NewClient(dictionaryConfig(cfg), logger.Logger)
			p := newPrinter(cmd.OutOrStdout())

			definition, err := client.FetchWordOfDay(cmd.Context())
			if err != nil {
				p.printError(msgWordOfDayUnavailable)
				return fmt.Errorf("dictionary.FetchWordOfDay > %w", err)
			}

			p.printDefinition(definition)
			return nil
		},
	}
}
