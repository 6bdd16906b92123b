package mcpsrv

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

// catalogLoader runs the batch fetch on first use and keeps the catalog
// for the life of the server. A failed batch is not kept, so the next tool
// call re-triggers it.
type catalogLoader struct {
	source      types.PokemonSource
	count       int
	concurrency int
	logger      *zap.Logger

	mu      sync.Mutex
	catalog *pokedex.Catalog
}

func (l *catalogLoader) Load(ctx context.Context) (*pokedex.Catalog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.catalog != nil {
		return l.catalog, nil
	}

	res := pokedex.FetchRange(ctx, l.source, l.count,
		pokedex.WithConcurrency(l.concurrency),
		pokedex.WithFetchLogger(l.logger),
	)
	if res.Status != pokedex.FetchSucceeded {
		return nil, res.Err
	}
	l.catalog = pokedex.NewCatalog(res.Records)
	return l.catalog, nil
}

func (l *catalogLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog = nil
}
