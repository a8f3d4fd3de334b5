package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"github.com/wordbook/backend/internal/views"
	"go.uber.org/zap"
)

// User facing messages
const (
	msgWordNotFound         = "Word not found. Please try another word."
	msgWordOfDayUnavailable = "Unable to fetch Word of the Day. Please try again later."
	msgBookmarkAdded        = "'%s' has been added to bookmarks!"
	msgBookmarkExists       = "'%s' is already bookmarked."
)

// Values of the "bookmark" query parameter set by the bookmark redirect
const (
	bookmarkAdded  = "added"
	bookmarkExists = "exists"
)

// PageRenderer renders a named page template
type PageRenderer interface {
	Render(w io.Writer, page string, data views.PageData) error
}

// SessionDeleter removes a session from the store
type SessionDeleter interface {
	Delete(id string)
}

// PageHandler serves the HTML pages
type PageHandler struct {
	BaseHandler
	service      DictionaryService
	renderer     PageRenderer
	sessions     SessionDeleter
	splashDelay  time.Duration
	cookieSecure bool
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	svc DictionaryService,
	renderer PageRenderer,
	sessions SessionDeleter,
	splashDelay time.Duration,
	cookieSecure bool,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		service:      svc,
		renderer:     renderer,
		sessions:     sessions,
		splashDelay:  splashDelay,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers all page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Splash)
	r.Get("/home", h.Home)
	r.Get("/word-of-the-day", h.WordOfDay)
	r.Get("/history", h.History)
	r.Get("/bookmarks", h.Bookmarks)
	r.Post("/bookmarks", h.AddBookmark)
	r.Post("/session/end", h.EndSession)
}

// Splash handles GET /
// The splash is shown once per session and refreshes to the home page; later visits redirect straight there.
func (h *PageHandler) Splash(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if !sess.ConsumeSplash() {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.renderSplash(w, "/home")
}

// Home handles GET /home
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.splashFirst(w, r, sess) {
		return
	}

	query := r.URL.Query()
	word := query.Get("word")
	data := views.PageData{
		Title:      "Home",
		ActivePage: views.NavHome,
		Word:       word,
	}

	if word != "" {
		definition, err := h.service.Search(r.Context(), sess, word)
		if err != nil {
			data.Error = msgWordNotFound
		} else {
			data.Definition = definition
			data.Bookmarked = sess.IsBookmarked(word)
		}

		// the outcome of a bookmark redirect is only reported when the session holds the bookmark
		if data.Bookmarked {
			switch query.Get("bookmark") {
			case bookmarkAdded:
				data.Success = fmt.Sprintf(msgBookmarkAdded, word)
			case bookmarkExists:
				data.Warning = fmt.Sprintf(msgBookmarkExists, word)
			}
		}
	}

	h.render(w, views.PageHome, data)
}

// AddBookmark handles POST /bookmarks
// The result is reported on the home page through a redirect, so reloading does not resubmit the form.
func (h *PageHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Logger.Warn("failed to parse bookmark form", zap.Error(err))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	word := r.PostForm.Get("word")
	added, err := h.service.Bookmark(r.Context(), sess, word)
	switch {
	case errors.Is(err, services.ErrNotLookedUp):
		// unknown words go through the lookup first
		http.Redirect(w, r, "/home?"+url.Values{"word": {word}}.Encode(), http.StatusSeeOther)
		return
	case err != nil:
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	status := bookmarkExists
	if added {
		status = bookmarkAdded
	}
	target := url.Values{"word": {word}, "bookmark": {status}}
	http.Redirect(w, r, "/home?"+target.Encode(), http.StatusSeeOther)
}

// WordOfDay handles GET /word-of-the-day
func (h *PageHandler) WordOfDay(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.splashFirst(w, r, sess) {
		return
	}

	data := views.PageData{
		Title:      "Word of the Day",
		ActivePage: views.NavWordOfDay,
	}

	definition, err := h.service.WordOfDay(r.Context(), sess)
	if err != nil {
		data.Error = msgWordOfDayUnavailable
	} else {
		data.Word = definition.Word
		data.Definition = definition
	}

	h.render(w, views.PageWordOfDay, data)
}

// History handles GET /history
func (h *PageHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.splashFirst(w, r, sess) {
		return
	}

	h.render(w, views.PageHistory, views.PageData{
		Title:      "Search History",
		ActivePage: views.NavHistory,
		History:    h.service.History(sess),
	})
}

// Bookmarks handles GET /bookmarks
func (h *PageHandler) Bookmarks(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.splashFirst(w, r, sess) {
		return
	}

	h.render(w, views.PageBookmarks, views.PageData{
		Title:      "Bookmarked Words",
		ActivePage: views.NavBookmarks,
		Bookmarks:  h.service.Bookmarks(sess),
	})
}

// EndSession handles POST /session/end
func (h *PageHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	h.sessions.Delete(sess.ID())
	http.SetCookie(w, middlewares.ExpiredSessionCookie(h.cookieSecure))
	h.Logger.Info("session ended", zap.String("session_id", sess.ID()))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// splashFirst renders the splash in place of the first page a session asks for,
// refreshing to that page afterwards. It reports whether the splash was written.
func (h *PageHandler) splashFirst(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	if !sess.ConsumeSplash() {
		return false
	}
	h.renderSplash(w, r.URL.RequestURI())
	return true
}

func (h *PageHandler) renderSplash(w http.ResponseWriter, next string) {
	h.render(w, views.PageSplash, views.PageData{
		Title:         "Welcome",
		ActivePage:    "splash",
		RedirectURL:   next,
		RedirectAfter: int(h.splashDelay / time.Second),
	})
}

// session returns the request session, answering with a 500 when the session middleware is missing
func (h *PageHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := middlewares.GetSession(r.Context())
	if sess == nil {
		h.Logger.Error("no session attached to request", zap.String("path", r.URL.Path))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// render buffers the page so a template failure never sends a partial document
func (h *PageHandler) render(w http.ResponseWriter, page string, data views.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.Logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Warn("failed to write page", zap.String("page", page), zap.Error(err))
	}
}
