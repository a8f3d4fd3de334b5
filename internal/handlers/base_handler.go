// Package handlers contains the HTTP handlers for pages, the JSON API and health checks
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wordbook/backend/internal/models"
	"github.com/wordbook/backend/internal/session"
	"go.uber.org/zap"
)

// DictionaryService is the interface that wraps the session-aware dictionary operations.
type DictionaryService interface {
	// Search looks up a word and records it in the session history.
	//
	// On failure the history is left unchanged and the error wraps one of the dictionary errors
	// (ErrNotFound, ErrUnavailable or ErrMalformedResponse) or a transport error.
	Search(ctx context.Context, sess *session.Session, word string) (*models.Definition, error)
	// Bookmark records a bookmark for a word. "added" is false when it was already bookmarked.
	Bookmark(ctx context.Context, sess *session.Session, word string) (bool, error)
	// WordOfDay returns the session's word of the day, fetching it on first use.
	WordOfDay(ctx context.Context, sess *session.Session) (*models.Definition, error)
	// History returns the session search history in insertion order.
	History(sess *session.Session) []models.SearchEntry
	// Bookmarks returns the session bookmarks in insertion order.
	Bookmarks(sess *session.Session) []models.BookmarkEntry
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}
