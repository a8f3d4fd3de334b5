// Package session provides isolated in-memory state for one user's visit
package session

import (
	"sync"
	"time"

	"github.com/wordbook/backend/internal/models"
)

// Session holds the search history, bookmarks, word of the day and splash flag of one user.
// It is safe for concurrent use.
type Session struct {
	id        string
	createdAt time.Time

	mu          sync.Mutex
	lastSeen    time.Time
	history     []models.SearchEntry
	searched    map[string]struct{}
	bookmarks   []models.BookmarkEntry
	bookmarked  map[string]struct{}
	wordOfDay   *models.Definition
	splashShown bool
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		id:         id,
		createdAt:  now,
		lastSeen:   now,
		searched:   make(map[string]struct{}),
		bookmarked: make(map[string]struct{}),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns the time the session started
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// AddSearch appends a history entry for word unless one already exists.
// Words are compared case-sensitively. It reports whether an entry was added.
func (s *Session) AddSearch(word string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.searched[word]; ok {
		return false
	}
	s.searched[word] = struct{}{}
	s.history = append(s.history, models.SearchEntry{Word: word, Time: at})
	return true
}

// HasSearched reports whether word is in the search history
func (s *Session) HasSearched(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.searched[word]
	return ok
}

// AddBookmark appends a bookmark for word unless one already exists.
// It reports whether a bookmark was added.
func (s *Session) AddBookmark(word string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarked[word]; ok {
		return false
	}
	s.bookmarked[word] = struct{}{}
	s.bookmarks = append(s.bookmarks, models.BookmarkEntry{Word: word, Time: at})
	return true
}

// IsBookmarked reports whether word is bookmarked
func (s *Session) IsBookmarked(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.bookmarked[word]
	return ok
}

// History returns a copy of the search history in insertion order
func (s *Session) History() []models.SearchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.SearchEntry, len(s.history))
	copy(history, s.history)
	return history
}

// Bookmarks returns a copy of the bookmarks in insertion order
func (s *Session) Bookmarks() []models.BookmarkEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := make([]models.BookmarkEntry, len(s.bookmarks))
	copy(bookmarks, s.bookmarks)
	return bookmarks
}

// WordOfDay returns the cached word of the day, or nil if none was fetched yet
func (s *Session) WordOfDay() *models.Definition {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wordOfDay
}

// SetWordOfDay caches the word of the day. An already cached value is kept.
func (s *Session) SetWordOfDay(definition *models.Definition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wordOfDay == nil {
		s.wordOfDay = definition
	}
}

// ConsumeSplash marks the splash screen as shown.
// It returns true only for the first call in the session lifetime.
func (s *Session) ConsumeSplash() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.splashShown {
		return false
	}
	s.splashShown = true
	return true
}

// SplashShown reports whether the splash screen was already shown
func (s *Session) SplashShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.splashShown
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastSeen)
}
