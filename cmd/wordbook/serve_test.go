package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordbook/backend/internal/config"
	"github.com/wordbook/backend/internal/dictionary"
	"github.com/wordbook/backend/internal/middlewares"
	"github.com/wordbook/backend/internal/services"
	"github.com/wordbook/backend/internal/session"
	"github.com/wordbook/backend/internal/views"
	"go.uber.org/zap"
)

// newTestServer serves the full router against a fake dictionary API
func newTestServer(t *testing.T) (*httptest.Server, *session.Store) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/entries/hello":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"word":"hello","phonetics":[{"text":"/həˈləʊ/"}],"meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A greeting."}]}]}]`))
		case "/random":
			_, _ = w.Write([]byte(`["hello"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://allowed.test"}},
		Dictionary: config.DictionaryConfig{
			BaseURL:       upstream.URL + "/entries",
			RandomWordURL: upstream.URL + "/random",
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
		},
		Session: config.SessionConfig{TTL: time.Hour},
		UI:      config.UIConfig{SplashDelay: 3 * time.Second},
	}

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	logger := zap.NewNop()
	store := session.NewStore(cfg.Session.TTL)
	svc := services.NewDictionaryService(dictionary.NewClient(dictionaryConfig(cfg), logger), logger)

	server := httptest.NewServer(newRouter(cfg, store, svc, renderer, logger))
	t.Cleanup(server.Close)
	return server, store
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestRouter_HealthDoesNotStartSession(t *testing.T) {
	server, store := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middlewares.RequestIDHeader))
	assert.Empty(t, resp.Cookies())
	assert.Equal(t, 0, store.Len())
}

func TestRouter_SwaggerDocument(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/words/{word}")
	assert.Contains(t, doc.Paths["/bookmarks"], "post")
}

func TestRouter_PreflightAllowedOrigin(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/v1/bookmarks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://allowed.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://allowed.test", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_SearchAgainstUpstream(t *testing.T) {
	server, store := newTestServer(t)
	client := noRedirectClient()

	resp, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middlewares.SessionCookieName, cookies[0].Name)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/words/hello", nil)
	require.NoError(t, err)
	req.AddCookie(cookies[0])
	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sess, ok := store.Get(cookies[0].Value)
	require.True(t, ok)
	history := sess.History()
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Word)

	req, err = http.NewRequest(http.MethodGet, server.URL+"/api/v1/words/zzqx", nil)
	require.NoError(t, err)
	req.AddCookie(cookies[0])
	notFound, err := client.Do(req)
	require.NoError(t, err)
	defer notFound.Body.Close()

	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.Len(t, sess.History(), 1)
}
