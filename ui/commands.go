package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

// Message types for async operations

type pokemonLoadedMsg struct {
	requestID int
	result    pokedex.FetchResult
}

// fetchPokemon returns a tea.Cmd that runs the batch fetch asynchronously.
func fetchPokemon(source types.PokemonSource, count, concurrency int, logger *zap.Logger, requestID int) tea.Cmd {
	return func() tea.Msg {
		result := pokedex.FetchRange(context.Background(), source, count,
			pokedex.WithConcurrency(concurrency),
			pokedex.WithFetchLogger(logger),
		)
		return pokemonLoadedMsg{requestID: requestID, result: result}
	}
}
