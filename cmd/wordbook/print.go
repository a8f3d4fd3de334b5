package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wordbook/backend/internal/models"
)

const (
	msgWordNotFound         = "Word not found. Please try another word."
	msgWordOfDayUnavailable = "Unable to fetch Word of the Day. Please try again later."
)

// printer writes definitions to a terminal
type printer struct {
	w            io.Writer
	bold         *color.Color
	italic       *color.Color
	partOfSpeech *color.Color
	failure      *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:            w,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		partOfSpeech: color.New(color.FgCyan, color.Bold),
		failure:      color.New(color.FgRed),
	}
}

func (p *printer) printDefinition(definition *models.Definition) {
	_, _ = p.bold.Fprintf(p.w, "Word: %s\n", definition.Word)

	for _, phonetic := range definition.Phonetics {
		switch {
		case phonetic.Text != "" && phonetic.Audio != "":
			_, _ = fmt.Fprintf(p.w, "Phonetics: %s (%s)\n", phonetic.Text, phonetic.Audio)
		case phonetic.Text != "":
			_, _ = fmt.Fprintf(p.w, "Phonetics: %s\n", phonetic.Text)
		case phonetic.Audio != "":
			_, _ = fmt.Fprintf(p.w, "Audio: %s\n", phonetic.Audio)
		}
	}
	if !definition.HasPhonetics() && definition.Phonetic != "" {
		_, _ = fmt.Fprintf(p.w, "Phonetics: %s\n", definition.Phonetic)
	}

	for _, meaning := range definition.Meanings {
		_, _ = fmt.Fprintln(p.w)
		_, _ = p.partOfSpeech.Fprintln(p.w, meaning.PartOfSpeech)
		for i, sense := range meaning.Definitions {
			_, _ = fmt.Fprintf(p.w, "  %d. %s\n", i+1, sense.Definition)
			if sense.Example != "" {
				_, _ = p.italic.Fprintf(p.w, "     %q\n", sense.Example)
			}
		}
	}
}

func (p *printer) printError(message string) {
	_, _ = p.failure.Fprintln(p.w, message)
}
