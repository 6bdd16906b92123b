package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/Nicolas-rosa/Pokedex/types"
)

func TestPokemonURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		id       int
		expected string
	}{
		{name: "default", base: "", id: 25, expected: "https://pokeapi.co/api/v2/pokemon/25"},
		{name: "trailing slash", base: "http://localhost:9000/api/v2/", id: 1, expected: "http://localhost:9000/api/v2/pokemon/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithBaseURL(tt.base))
			if got := c.PokemonURL(tt.id); got != tt.expected {
				t.Errorf("URL mismatch:\ngot:  %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func newFixtureServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	fixture, err := os.ReadFile("../testdata/pokemon_1.json")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})
	mux.HandleFunc("/pokemon/500", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})
	mux.HandleFunc("/pokemon/777", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = w.Write([]byte("{not json"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPokemon_Success(t *testing.T) {
	var hits int32
	srv := newFixtureServer(t, &hits)
	c := New(WithBaseURL(srv.URL))

	p, err := c.GetPokemon(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPokemon: %v", err)
	}
	if p.Name() != "bulbasaur" {
		t.Fatalf("name = %q", p.Name())
	}
}

func TestGetPokemon_CachesPerID(t *testing.T) {
	var hits int32
	srv := newFixtureServer(t, &hits)
	c := New(WithBaseURL(srv.URL))

	for i := 0; i < 3; i++ {
		if _, err := c.GetPokemon(context.Background(), 1); err != nil {
			t.Fatalf("GetPokemon #%d: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly one upstream request, got %d", got)
	}

	c.ClearCache()
	if _, err := c.GetPokemon(context.Background(), 1); err != nil {
		t.Fatalf("GetPokemon after clear: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Fatalf("expected refetch after ClearCache, got %d hits", got)
	}
}

func TestGetPokemon_Errors(t *testing.T) {
	var hits int32
	srv := newFixtureServer(t, &hits)
	c := New(WithBaseURL(srv.URL))

	tests := []struct {
		name         string
		id           int
		wantNotFound bool
	}{
		{name: "not found", id: 404, wantNotFound: true},
		{name: "zero id", id: 0, wantNotFound: true},
		{name: "server error", id: 500},
		{name: "bad body", id: 777},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.GetPokemon(context.Background(), tt.id)
			if err == nil {
				t.Fatalf("expected error for id %d", tt.id)
			}
			var nf *types.NotFoundError
			var te *types.TransportError
			switch {
			case tt.wantNotFound && !errors.As(err, &nf):
				t.Fatalf("expected NotFoundError, got %T: %v", err, err)
			case !tt.wantNotFound && !errors.As(err, &te):
				t.Fatalf("expected TransportError, got %T: %v", err, err)
			}
		})
	}
}

func TestGetPokemon_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(WithBaseURL(url))
	_, err := c.GetPokemon(context.Background(), 1)
	var te *types.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError for closed server, got %T: %v", err, err)
	}
	if te.ID != 1 {
		t.Fatalf("transport error id = %d", te.ID)
	}
}
