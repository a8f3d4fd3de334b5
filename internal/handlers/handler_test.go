package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/models"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"github.com/wordbook/backend/internal/views"
	"go.uber.org/zap"
)

// mockDictionaryClient is a mock implementation of services.DictionaryClient
type mockDictionaryClient struct {
	mu             sync.Mutex
	definitions    map[string]*models.Definition
	lookupErr      error
	wordOfDay      *models.Definition
	wordOfDayErr   error
	lookupCalls    int
	wordOfDayCalls int
}

func (m *mockDictionaryClient) LookupWord(ctx context.Context, word string) (*models.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupCalls++

	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	if definition, ok := m.definitions[word]; ok {
		return definition, nil
	}
	return nil, fmt.Errorf("%w: %q (status %d)", dictionary.ErrNotFound, word, http.StatusNotFound)
}

func (m *mockDictionaryClient) FetchWordOfDay(ctx context.Context) (*models.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wordOfDayCalls++

	if m.wordOfDayErr != nil {
		return nil, m.wordOfDayErr
	}
	return m.wordOfDay, nil
}

func (m *mockDictionaryClient) calls() (lookups, wordOfDay int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupCalls, m.wordOfDayCalls
}

// helloDefinition has two parts of speech with two senses each
func helloDefinition() *models.Definition {
	return &models.Definition{
		Word:     "hello",
		Phonetic: "həˈləʊ",
		Phonetics: []models.Phonetic{
			{Text: "/həˈləʊ/", Audio: "https://example.test/hello.mp3"},
		},
		Meanings: []models.Meaning{
			{PartOfSpeech: "noun", Definitions: []models.Sense{
				{Definition: "A greeting."},
				{Definition: "An utterance of hello."},
			}},
			{PartOfSpeech: "verb", Definitions: []models.Sense{
				{Definition: "To greet with hello."},
				{Definition: "To call out."},
			}},
		},
	}
}

func newMockClient() *mockDictionaryClient {
	return &mockDictionaryClient{
		definitions: map[string]*models.Definition{"hello": helloDefinition()},
		wordOfDay: &models.Definition{
			Word: "serendipity",
			Meanings: []models.Meaning{
				{PartOfSpeech: "noun", Definitions: []models.Sense{{Definition: "A happy accident."}}},
			},
		},
	}
}

// newTestRouter wires the handlers the same way the server does
func newTestRouter(t *testing.T, client services.DictionaryClient) (http.Handler, *session.Store) {
	t.Helper()

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	logger := zap.NewNop()
	store := session.NewStore(time.Hour)
	svc := services.NewDictionaryService(client, logger)

	r := chi.NewRouter()
	NewHealthHandler(store, logger).RegisterRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(store, false, logger))
		NewPageHandler(svc, renderer, store, 3*time.Second, false, logger).RegisterRoutes(r)
		NewAPIHandler(svc, logger).RegisterRoutes(r)
	})
	return r, store
}

// browser replays cookies between requests like a user agent would
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, handler http.Handler) *browser {
	return &browser{t: t, handler: handler, cookies: make(map[string]*http.Cookie)}
}

// newVisitor returns a browser whose session is already past the splash screen
func newVisitor(t *testing.T, handler http.Handler) *browser {
	t.Helper()
	b := newBrowser(t, handler)
	require.Equal(t, http.StatusOK, b.get("/").Code)
	return b
}

func (b *browser) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	b.t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}
		b.cookies[cookie.Name] = cookie
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil, "")
}

// getJSON performs a GET and decodes the JSON body into out
func (b *browser) getJSON(target string, out any) *httptest.ResponseRecorder {
	b.t.Helper()
	w := b.get(target)
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	return w
}
