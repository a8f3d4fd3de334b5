package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wordbook/backend/internal/models"
	"github.com/wordbook/backend/internal/session"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrEmptyWord is returned when an operation receives an empty word
	ErrEmptyWord = errors.New("word cannot be empty")
	// ErrNotLookedUp is returned when bookmarking a word the session never found
	ErrNotLookedUp = errors.New("word must be looked up before it can be bookmarked")
)

// DictionaryClient is the interface that wraps the outbound dictionary API calls
type DictionaryClient interface {
	// LookupWord retrieves the definition of a word.
	//
	// If the word is unknown to the API, an error wrapping dictionary.ErrNotFound will be returned.
	LookupWord(ctx context.Context, word string) (*models.Definition, error)
	// FetchWordOfDay retrieves the definition of a random word.
	//
	// Every failure is returned wrapped in dictionary.ErrUnavailable.
	FetchWordOfDay(ctx context.Context) (*models.Definition, error)
}

// dictionaryService implements the session-aware dictionary operations
type dictionaryService struct {
	client    DictionaryClient
	logger    *zap.Logger
	now       func() time.Time
	wordOfDay singleflight.Group
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(client DictionaryClient, logger *zap.Logger) *dictionaryService {
	return &dictionaryService{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Search looks up a word and records it in the session history
//
// The word is used exactly as typed. History is only changed on a successful lookup
// and keeps one entry per word.
func (s *dictionaryService) Search(ctx context.Context, sess *session.Session, word string) (*models.Definition, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	definition, err := s.client.LookupWord(ctx, word)
	if err != nil {
		s.logger.Warn("failed to look up word", zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("failed to look up word: %w", err)
	}

	if sess.AddSearch(word, s.now()) {
		s.logger.Debug("search recorded", zap.String("session_id", sess.ID()), zap.String("word", word))
	}
	return definition, nil
}

// Bookmark records a bookmark for a word
//
// Only words with a successful lookup in this session can be bookmarked.
// "added" is false when the word was already bookmarked in this session.
func (s *dictionaryService) Bookmark(ctx context.Context, sess *session.Session, word string) (bool, error) {
	if word == "" {
		return false, ErrEmptyWord
	}
	if !sess.HasSearched(word) {
		return false, ErrNotLookedUp
	}

	added := sess.AddBookmark(word, s.now())
	s.logger.Debug("bookmark requested",
		zap.String("session_id", sess.ID()),
		zap.String("word", word),
		zap.Bool("added", added),
	)
	return added, nil
}

// WordOfDay returns the session's word of the day, fetching it on first use
//
// Concurrent first requests of one session share a single fetch. A failed fetch is not cached,
// so the next call tries again.
func (s *dictionaryService) WordOfDay(ctx context.Context, sess *session.Session) (*models.Definition, error) {
	if definition := sess.WordOfDay(); definition != nil {
		return definition, nil
	}

	// the fetch outlives a cancelled first caller; the client timeout still bounds it
	fetchCtx := context.WithoutCancel(ctx)
	result, err, _ := s.wordOfDay.Do(sess.ID(), func() (any, error) {
		if definition := sess.WordOfDay(); definition != nil {
			return definition, nil
		}
		definition, err := s.client.FetchWordOfDay(fetchCtx)
		if err != nil {
			return nil, err
		}
		sess.SetWordOfDay(definition)
		s.logger.Info("word of the day fetched",
			zap.String("session_id", sess.ID()),
			zap.String("word", definition.Word),
		)
		return sess.WordOfDay(), nil
	})
	if err != nil {
		s.logger.Error("failed to fetch word of the day", zap.String("session_id", sess.ID()), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch word of the day: %w", err)
	}
	return result.(*models.Definition), nil
}

// History returns the session search history in insertion order
func (s *dictionaryService) History(sess *session.Session) []models.SearchEntry {
	return sess.History()
}

// Bookmarks returns the session bookmarks in insertion order
func (s *dictionaryService) Bookmarks(sess *session.Session) []models.BookmarkEntry {
	return sess.Bookmarks()
}
