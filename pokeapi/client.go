package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Nicolas-rosa/Pokedex/types"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 10 * time.Second
	userAgent      = "pokedex-tui/1.0 (+https://github.com/Nicolas-rosa/Pokedex)"
)

// Client implements types.PokemonSource using an HTTP client and an in-memory cache.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
	cache   map[int]cachedResult
	mu      sync.Mutex
}

type cachedResult struct {
	value     types.Pokemon
	timestamp time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another PokeAPI-compatible host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Compile-time interface check
var _ types.PokemonSource = (*Client)(nil)

// New creates a new Client with configured HTTP client and empty cache.
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
		cache:   make(map[int]cachedResult),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PokemonURL returns the per-id endpoint for the given identifier.
func (c *Client) PokemonURL(id int) string {
	return c.baseURL + "/pokemon/" + strconv.Itoa(id)
}

// GetPokemon fetches and decodes a single record by id.
func (c *Client) GetPokemon(ctx context.Context, id int) (types.Pokemon, error) {
	if id <= 0 {
		return types.Pokemon{}, &types.NotFoundError{ID: id}
	}

	c.mu.Lock()
	if cached, ok := c.cache[id]; ok {
		c.mu.Unlock()
		return cached.value, nil
	}
	c.mu.Unlock()

	url := c.PokemonURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Pokemon{}, &types.TransportError{ID: id, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return types.Pokemon{}, &types.TransportError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("pokeapi response",
		zap.Int("id", id),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return types.Pokemon{}, &types.NotFoundError{ID: id}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return types.Pokemon{}, &types.TransportError{
			ID:  id,
			Err: fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	pokemon, err := ParsePokemon(resp.Body)
	if err != nil {
		return types.Pokemon{}, &types.TransportError{ID: id, Err: fmt.Errorf("parse pokemon: %w", err)}
	}

	c.mu.Lock()
	c.cache[id] = cachedResult{value: pokemon, timestamp: time.Now()}
	c.mu.Unlock()

	return pokemon, nil
}

// ClearCache clears the in-memory cache.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[int]cachedResult)
}
