package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/models"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"github.com/wordbook/backend/internal/views"
	"go.uber.org/zap"
)

const formContentType = "application/x-www-form-urlencoded"

func postBookmark(b *browser, word string) *httptest.ResponseRecorder {
	form := url.Values{"word": {word}}
	return b.do(http.MethodPost, "/bookmarks", strings.NewReader(form.Encode()), formContentType)
}

func TestPageHandler_SplashShownOncePerSession(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newBrowser(t, router)

	first := b.get("/")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "text/html; charset=utf-8", first.Header().Get("Content-Type"))
	assert.Contains(t, first.Body.String(), `http-equiv="refresh"`)
	assert.Contains(t, first.Body.String(), `content="3;url=/home"`)
	assert.NotContains(t, first.Body.String(), "<nav>")

	second := b.get("/")
	assert.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/home", second.Header().Get("Location"))
}

func TestPageHandler_FirstPageOfSessionShowsSplash(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "history", target: "/history", expected: "No search history yet."},
		{name: "bookmarks", target: "/bookmarks", expected: "No bookmarks yet."},
		{name: "word of the day", target: "/word-of-the-day", expected: "Word: serendipity"},
		{name: "home with word", target: "/home?word=hello", expected: "Word: hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient()
			router, _ := newTestRouter(t, client)
			b := newBrowser(t, router)

			first := b.get(tt.target)
			assert.Equal(t, http.StatusOK, first.Code)
			assert.Contains(t, first.Body.String(), `http-equiv="refresh"`)
			assert.Contains(t, first.Body.String(), `content="3;url=`+tt.target+`"`)
			assert.NotContains(t, first.Body.String(), tt.expected)
			lookups, wordOfDayCalls := client.calls()
			assert.Zero(t, lookups+wordOfDayCalls)

			// the splash never comes back in this session
			root := b.get("/")
			assert.Equal(t, http.StatusSeeOther, root.Code)
			assert.Equal(t, "/home", root.Header().Get("Location"))

			page := b.get(tt.target)
			assert.NotContains(t, page.Body.String(), `http-equiv="refresh"`)
			assert.Contains(t, page.Body.String(), tt.expected)
		})
	}
}

func TestPageHandler_Home(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		expectedContains []string
		expectedMissing  []string
	}{
		{
			name:             "no word shows instructions only",
			target:           "/home",
			expectedContains: []string{"How to use this application:", `name="word"`},
			expectedMissing:  []string{`class="alert alert-error"`, "Bookmark this word"},
		},
		{
			name:   "known word renders definition",
			target: "/home?word=hello",
			expectedContains: []string{
				"Word: hello",
				"Phonetics: /həˈləʊ/",
				`src="https://example.test/hello.mp3"`,
				"A greeting.",
				"To call out.",
				"Bookmark this word",
			},
			expectedMissing: []string{`class="alert alert-error"`},
		},
		{
			name:             "unknown word shows not found",
			target:           "/home?word=zzqx",
			expectedContains: []string{"Word not found. Please try another word."},
			expectedMissing:  []string{"Bookmark this word", "Word: zzqx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, newMockClient())
			b := newVisitor(t, router)

			w := b.get(tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			for _, s := range tt.expectedContains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.expectedMissing {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestPageHandler_DefinitionRenderedInSourceOrder(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	body := b.get("/home?word=hello").Body.String()

	assert.Equal(t, 2, strings.Count(body, `class="part-of-speech"`))
	assert.Equal(t, 4, strings.Count(body, `class="sense"`))
	senses := []string{"A greeting.", "An utterance of hello.", "To greet with hello.", "To call out."}
	last := -1
	for _, sense := range senses {
		idx := strings.Index(body, sense)
		require.Greater(t, idx, last, sense)
		last = idx
	}
}

func TestPageHandler_NotFoundLeavesHistoryUnchanged(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	b.get("/home?word=hello")
	w := b.get("/home?word=zzqx")
	assert.Contains(t, w.Body.String(), "Word not found. Please try another word.")

	var history []models.SearchEntry
	b.getJSON("/api/v1/history", &history)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Word)
}

func TestPageHandler_RepeatedSearchKeepsOneHistoryEntry(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	b.get("/home?word=hello")
	b.get("/home?word=hello")

	body := b.get("/history").Body.String()
	assert.Equal(t, 1, strings.Count(body, ">hello</a>"))
	assert.NotContains(t, body, "No search history yet.")
}

func TestPageHandler_BookmarkTwice(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)
	b.get("/home?word=hello")

	first := postBookmark(b, "hello")
	assert.Equal(t, http.StatusSeeOther, first.Code)
	assert.Equal(t, "/home?bookmark=added&word=hello", first.Header().Get("Location"))
	page := b.get(first.Header().Get("Location")).Body.String()
	assert.Contains(t, page, "&#39;hello&#39; has been added to bookmarks!")
	assert.NotContains(t, page, `class="alert alert-warning"`)

	second := postBookmark(b, "hello")
	assert.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/home?bookmark=exists&word=hello", second.Header().Get("Location"))
	page = b.get(second.Header().Get("Location")).Body.String()
	assert.Contains(t, page, "&#39;hello&#39; is already bookmarked.")
	assert.NotContains(t, page, `class="alert alert-success"`)

	body := b.get("/bookmarks").Body.String()
	assert.Equal(t, 1, strings.Count(body, ">hello</a>"))
}

func TestPageHandler_BookmarkRequiresSuccessfulLookup(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	w := postBookmark(b, "zzqx")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home?word=zzqx", w.Header().Get("Location"))

	w = postBookmark(b, "hello")
	assert.Equal(t, "/home?word=hello", w.Header().Get("Location"))

	assert.Contains(t, b.get("/bookmarks").Body.String(), "No bookmarks yet.")
}

func TestPageHandler_BookmarkMessageRequiresBookmark(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "added without bookmark", target: "/home?word=hello&bookmark=added"},
		{name: "exists without bookmark", target: "/home?word=hello&bookmark=exists"},
		{name: "added for unknown word", target: "/home?word=zzqx&bookmark=added"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, newMockClient())
			b := newVisitor(t, router)

			body := b.get(tt.target).Body.String()

			assert.NotContains(t, body, `class="alert alert-success"`)
			assert.NotContains(t, body, `class="alert alert-warning"`)
			assert.Contains(t, b.get("/bookmarks").Body.String(), "No bookmarks yet.")
		})
	}
}

func TestPageHandler_BookmarkEmptyWordRedirectsHome(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	w := postBookmark(b, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.Contains(t, b.get("/bookmarks").Body.String(), "No bookmarks yet.")
}

func TestPageHandler_WordOfDayFetchedOncePerSession(t *testing.T) {
	client := newMockClient()
	router, _ := newTestRouter(t, client)
	b := newVisitor(t, router)

	first := b.get("/word-of-the-day")
	second := b.get("/word-of-the-day")

	for _, w := range []*httptest.ResponseRecorder{first, second} {
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Word: serendipity")
	}
	_, wordOfDayCalls := client.calls()
	assert.Equal(t, 1, wordOfDayCalls)

	// a new session gets its own word of the day
	other := newVisitor(t, router)
	other.get("/word-of-the-day")
	_, wordOfDayCalls = client.calls()
	assert.Equal(t, 2, wordOfDayCalls)
}

func TestPageHandler_WordOfDayFailure(t *testing.T) {
	client := newMockClient()
	client.wordOfDayErr = fmt.Errorf("%w: connection refused", dictionary.ErrUnavailable)
	router, _ := newTestRouter(t, client)
	b := newVisitor(t, router)

	w := b.get("/word-of-the-day")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch Word of the Day. Please try again later.")

	// nothing is cached, so the next view tries again
	client.mu.Lock()
	client.wordOfDayErr = nil
	client.mu.Unlock()

	w = b.get("/word-of-the-day")
	assert.Contains(t, w.Body.String(), "Word: serendipity")
	_, wordOfDayCalls := client.calls()
	assert.Equal(t, 2, wordOfDayCalls)
}

func TestPageHandler_EmptyStates(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	history := b.get("/history").Body.String()
	assert.Contains(t, history, "No search history yet.")
	assert.NotContains(t, history, "<table")

	bookmarks := b.get("/bookmarks").Body.String()
	assert.Contains(t, bookmarks, "No bookmarks yet.")
	assert.NotContains(t, bookmarks, "<table")
}

func TestPageHandler_NavigationHighlightsActivePage(t *testing.T) {
	router, _ := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	tests := []struct {
		target     string
		activeLink string
	}{
		{target: "/home", activeLink: `<a href="/home" class="active"`},
		{target: "/word-of-the-day", activeLink: `<a href="/word-of-the-day" class="active"`},
		{target: "/history", activeLink: `<a href="/history" class="active"`},
		{target: "/bookmarks", activeLink: `<a href="/bookmarks" class="active"`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			body := b.get(tt.target).Body.String()
			assert.Contains(t, body, tt.activeLink)
			assert.Equal(t, 1, strings.Count(body, `class="active"`))
		})
	}
}

func TestPageHandler_EndSession(t *testing.T) {
	router, store := newTestRouter(t, newMockClient())
	b := newBrowser(t, router)

	b.get("/")
	b.get("/home?word=hello")
	require.Equal(t, 1, store.Len())

	w := b.do(http.MethodPost, "/session/end", nil, "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, b.cookies)

	// a fresh session starts over with the splash and empty state
	assert.Equal(t, http.StatusOK, b.get("/").Code)
	assert.Contains(t, b.get("/history").Body.String(), "No search history yet.")
	assert.Equal(t, 1, store.Len())
}

func TestPageHandler_ExpiredSessionStartsFresh(t *testing.T) {
	router, store := newTestRouter(t, newMockClient())
	b := newVisitor(t, router)

	b.get("/home?word=hello")
	oldID := b.cookies[middlewares.SessionCookieName].Value
	store.Delete(oldID)

	// the new session opens with the splash, which then refreshes to the requested page
	splash := b.get("/history").Body.String()
	assert.Contains(t, splash, `content="3;url=/history"`)

	body := b.get("/history").Body.String()
	assert.Contains(t, body, "No search history yet.")
	assert.NotEqual(t, oldID, b.cookies[middlewares.SessionCookieName].Value)
}

func TestPageHandler_MissingSession(t *testing.T) {
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	svc := services.NewDictionaryService(newMockClient(), zap.NewNop())
	handler := NewPageHandler(svc, renderer, session.NewStore(time.Hour), time.Second, false, zap.NewNop())

	w := httptest.NewRecorder()
	handler.Home(w, httptest.NewRequest(http.MethodGet, "/home", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// failingRenderer is a PageRenderer that writes half a page and fails
type failingRenderer struct{}

func (failingRenderer) Render(w io.Writer, page string, data views.PageData) error {
	_, _ = io.WriteString(w, "<html><body>partial")
	return errors.New("template exploded")
}

func TestPageHandler_RenderFailure(t *testing.T) {
	store := session.NewStore(time.Hour)
	svc := services.NewDictionaryService(newMockClient(), zap.NewNop())
	handler := NewPageHandler(svc, failingRenderer{}, store, time.Second, false, zap.NewNop())
	wrapped := middlewares.SessionMiddleware(store, false, zap.NewNop())(http.HandlerFunc(handler.History))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "partial")
}
