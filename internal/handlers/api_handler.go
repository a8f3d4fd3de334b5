package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/models"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"go.uber.org/zap"
)

// APIHandler serves the JSON API. It shares the page session cookie.
type APIHandler struct {
	BaseHandler
	service  DictionaryService
	validate *validator.Validate
}

// NewAPIHandler creates a new JSON API handler
func NewAPIHandler(svc DictionaryService, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes registers all API routes
func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/words/{word}", h.LookupWord)
		r.Get("/word-of-the-day", h.WordOfDay)
		r.Get("/history", h.History)
		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", h.Bookmarks)
			r.Post("/", h.AddBookmark)
		})
	})
}

// LookupWord handles GET /api/v1/words/{word}
// @Summary Look up a word
// @Description Get the definition of a word and record it in the session search history
// @Tags words
// @Produce json
// @Param word path string true "Word to look up"
// @Success 200 {object} models.Definition
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /words/{word} [get]
func (h *APIHandler) LookupWord(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	word := chi.URLParam(r, "word")
	definition, err := h.service.Search(r.Context(), sess, word)
	if err != nil {
		switch {
		case errors.Is(err, dictionary.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "word not found")
		default:
			h.Logger.Error("failed to look up word", zap.String("word", word), zap.Error(err))
			h.RespondError(w, http.StatusBadGateway, "dictionary service unavailable")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, definition)
}

// WordOfDay handles GET /api/v1/word-of-the-day
// @Summary Get the word of the day
// @Description Get the session's word of the day; it is fetched once per session
// @Tags words
// @Produce json
// @Success 200 {object} models.Definition
// @Failure 503 {object} map[string]string
// @Router /word-of-the-day [get]
func (h *APIHandler) WordOfDay(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	definition, err := h.service.WordOfDay(r.Context(), sess)
	if err != nil {
		h.RespondError(w, http.StatusServiceUnavailable, "word of the day unavailable")
		return
	}

	h.RespondJSON(w, http.StatusOK, definition)
}

// History handles GET /api/v1/history
// @Summary Get search history
// @Description Get the words looked up in this session, oldest first
// @Tags history
// @Produce json
// @Success 200 {array} models.SearchEntry
// @Router /history [get]
func (h *APIHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	h.RespondJSON(w, http.StatusOK, h.service.History(sess))
}

// Bookmarks handles GET /api/v1/bookmarks
// @Summary Get bookmarks
// @Description Get the words bookmarked in this session, oldest first
// @Tags bookmarks
// @Produce json
// @Success 200 {array} models.BookmarkEntry
// @Router /bookmarks [get]
func (h *APIHandler) Bookmarks(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	h.RespondJSON(w, http.StatusOK, h.service.Bookmarks(sess))
}

// AddBookmark handles POST /api/v1/bookmarks
// @Summary Bookmark a word
// @Description Bookmark a word already looked up in this session. Bookmarking a word twice keeps a single entry.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body models.BookmarkRequest true "Word to bookmark"
// @Success 201 {object} models.BookmarkResponse "Bookmark added"
// @Success 200 {object} models.BookmarkResponse "Already bookmarked"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Word not looked up in this session"
// @Router /bookmarks [post]
func (h *APIHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "word is required")
		return
	}

	added, err := h.service.Bookmark(r.Context(), sess, req.Word)
	if err != nil {
		if errors.Is(err, services.ErrNotLookedUp) {
			h.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	h.RespondJSON(w, status, models.BookmarkResponse{Word: req.Word, Added: added})
}

func (h *APIHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := middlewares.GetSession(r.Context())
	if sess == nil {
		h.Logger.Error("no session attached to request", zap.String("path", r.URL.Path))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return sess, true
}
