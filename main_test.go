package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-rosa/Pokedex/config"
	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

type stubSource struct {
	failID int
}

func (s stubSource) GetPokemon(_ context.Context, id int) (types.Pokemon, error) {
	if id == s.failID {
		return types.Pokemon{}, &types.NotFoundError{ID: id}
	}
	names := map[int]string{4: "charmander", 5: "charmeleon", 6: "charizard", 7: "squirtle"}
	name, ok := names[id]
	if !ok {
		name = fmt.Sprintf("mon%03d", id)
	}
	tags := []string{"normal"}
	if id == 7 || id == 8 {
		tags = []string{"water"}
	}
	return types.NewPokemon(id, name, 5, 90, tags, ""), nil
}

func testConfig() config.Config {
	c := config.Default()
	c.Count = 25
	c.Concurrency = 4
	return c
}

func TestRunListText(t *testing.T) {
	var buf bytes.Buffer
	err := runList(context.Background(), &buf, stubSource{}, testConfig(), listOptions{Filter: "CHAR", Page: 1}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "Charizard")
	assert.NotContains(t, out, "Squirtle")
	assert.Contains(t, out, "page 1/1 • 3 result(s)")
}

func TestRunListJSONClampsPage(t *testing.T) {
	var buf bytes.Buffer
	err := runList(context.Background(), &buf, stubSource{}, testConfig(), listOptions{Page: 99, JSON: true}, nil)
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 25, got.Total)
	require.Len(t, got.Items, 5)
	assert.Equal(t, 21, got.Items[0].ID)
}

func TestRunListTypeIgnoresFilter(t *testing.T) {
	var buf bytes.Buffer
	err := runList(context.Background(), &buf, stubSource{}, testConfig(), listOptions{Type: "Water", Filter: "char", JSON: true}, nil)
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "water", got.Type)
	assert.Equal(t, 2, got.Total)
}

func TestRunListUnknownType(t *testing.T) {
	err := runList(context.Background(), &bytes.Buffer{}, stubSource{}, testConfig(), listOptions{Type: "shadow"}, nil)
	assert.ErrorIs(t, err, pokedex.ErrEmptyCategory)
}

func TestRunListFetchFailure(t *testing.T) {
	var buf bytes.Buffer
	err := runList(context.Background(), &buf, stubSource{failID: 13}, testConfig(), listOptions{Page: 1}, nil)

	var batchErr *pokedex.BatchFetchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 13, batchErr.ID)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Empty(t, buf.String())
}

func TestRunListSuggestions(t *testing.T) {
	var buf bytes.Buffer
	err := runList(context.Background(), &buf, stubSource{}, testConfig(), listOptions{Filter: "squirtel", Page: 1}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No Pokémon match.")
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&count, "count", pokedex.DefaultCount, "")
	cmd.Flags().IntVar(&concurrency, "concurrency", config.DefaultConcurrency, "")
	cmd.Flags().StringVar(&themeName, "theme", "default", "")
	cmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--count", "40", "--no-alt-screen"}))

	c := config.Default()
	c.Concurrency = 7
	c.Theme = "ocean"
	applyFlags(cmd, &c)

	assert.Equal(t, 40, c.Count)
	assert.Equal(t, 7, c.Concurrency)
	assert.Equal(t, "ocean", c.Theme)
	assert.False(t, c.AltScreen)
}
