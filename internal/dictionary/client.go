// Package dictionary provides a client for the public word-definition and random-word APIs
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/wordbook/backend/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultDefinitionsBaseURL is the base URL of the free dictionary API
	DefaultDefinitionsBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	// DefaultRandomWordURL returns a JSON array holding one random word
	DefaultRandomWordURL = "https://random-word-api.herokuapp.com/word?number=1"
)

// Client is the interface that wraps the outbound dictionary calls
type Client interface {
	// LookupWord retrieves the definition of "word".
	//
	// Any non-200 answer of the definitions API is reported as ErrNotFound.
	LookupWord(ctx context.Context, word string) (*models.Definition, error)
	// FetchWordOfDay picks a random word and looks it up.
	//
	// Every failure is reported wrapped in ErrUnavailable.
	FetchWordOfDay(ctx context.Context) (*models.Definition, error)
}

// Config holds the client settings
type Config struct {
	DefinitionsBaseURL string
	RandomWordURL      string
	Timeout            time.Duration
	// RetryAttempts is the total number of attempts per request, including the first one
	RetryAttempts uint
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config pointing at the public APIs
func DefaultConfig() Config {
	return Config{
		DefinitionsBaseURL: DefaultDefinitionsBaseURL,
		RandomWordURL:      DefaultRandomWordURL,
		Timeout:            10 * time.Second,
		RetryAttempts:      2,
		RetryDelay:         500 * time.Millisecond,
	}
}

// httpClient implements Client over resty
type httpClient struct {
	config Config
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a new dictionary client
func NewClient(config Config, logger *zap.Logger) *httpClient {
	if config.RetryAttempts == 0 {
		config.RetryAttempts = 1
	}
	config.DefinitionsBaseURL = strings.TrimRight(config.DefinitionsBaseURL, "/")

	return &httpClient{
		config: config,
		http: resty.New().
			SetTimeout(config.Timeout).
			SetHeader("Accept", "application/json"),
		logger: logger.With(zap.String("component", "dictionary")),
	}
}

// LookupWord retrieves the definition of a word from the definitions API
//
// The first element of the returned array is used. A transport failure is returned as is,
// an undecodable body wraps ErrMalformedResponse.
func (c *httpClient) LookupWord(ctx context.Context, word string) (*models.Definition, error) {
	endpoint := c.config.DefinitionsBaseURL + "/" + url.PathEscape(word)

	res, err := c.get(ctx, endpoint)
	if err != nil {
		c.logger.Error("definitions request failed", zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	if res.StatusCode() != http.StatusOK {
		c.logger.Debug("word not found", zap.String("word", word), zap.Int("status", res.StatusCode()))
		return nil, fmt.Errorf("%w: %q (status %d)", ErrNotFound, word, res.StatusCode())
	}

	var definitions []models.Definition
	if err := json.Unmarshal(res.Body(), &definitions); err != nil {
		c.logger.Error("failed to decode definitions", zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(definitions) == 0 {
		return nil, fmt.Errorf("%w: %q (empty result)", ErrNotFound, word)
	}

	c.logger.Debug("word found",
		zap.String("word", word),
		zap.Int("meanings", len(definitions[0].Meanings)),
		zap.Int("phonetics", len(definitions[0].Phonetics)),
	)
	return &definitions[0], nil
}

// FetchWordOfDay picks a random word and looks up its definition
func (c *httpClient) FetchWordOfDay(ctx context.Context) (*models.Definition, error) {
	word, err := c.randomWord(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	definition, err := c.LookupWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return definition, nil
}

// randomWord retrieves a single word from the random-word API
func (c *httpClient) randomWord(ctx context.Context) (string, error) {
	res, err := c.get(ctx, c.config.RandomWordURL)
	if err != nil {
		return "", fmt.Errorf("random word request failed: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("random word request failed: status %d", res.StatusCode())
	}

	var words []string
	if err := json.Unmarshal(res.Body(), &words); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(words) == 0 || words[0] == "" {
		return "", fmt.Errorf("%w: no word returned", ErrMalformedResponse)
	}
	return words[0], nil
}

// get performs a GET request, retrying transport errors and 5xx answers.
// A 5xx answer that survives every attempt is returned as a response, not an error.
func (c *httpClient) get(ctx context.Context, endpoint string) (*resty.Response, error) {
	var res *resty.Response
	err := retry.Do(
		func() error {
			r, err := c.http.R().SetContext(ctx).Get(endpoint)
			if err != nil {
				return err
			}
			res = r
			if r.StatusCode() >= http.StatusInternalServerError {
				return &statusError{code: r.StatusCode()}
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.config.RetryAttempts),
		retry.Delay(c.config.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying request",
				zap.String("url", endpoint),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && res != nil {
			return res, nil
		}
		return nil, err
	}
	return res, nil
}
