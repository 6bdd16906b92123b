package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/config"
	"github.com/Nicolas-rosa/Pokedex/mcpsrv/dto"
	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

type listOptions struct {
	Filter string
	Type   string
	Page   int
	JSON   bool
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the Pokédex without the TUI",
	Long: `Loads the same batch as the interactive view and prints one page.
--type selects a single type and ignores --filter. Out-of-range pages are
clamped to the last page.

Example:
  pokedex list --filter char
  pokedex list --type water --page 2 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context(), cmd.OutOrStdout(), newSource(), cfg, listOpts, logger)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.Filter, "filter", "f", "", "case-insensitive name substring")
	listCmd.Flags().StringVarP(&listOpts.Type, "type", "t", "", "show only this type")
	listCmd.Flags().IntVarP(&listOpts.Page, "page", "p", 1, "page number starting at 1")
	listCmd.Flags().BoolVar(&listOpts.JSON, "json", false, "print JSON instead of a table")
}

type listOutput struct {
	Filter     string        `json:"filter"`
	Type       string        `json:"type"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	Items      []dto.Pokemon `json:"items"`
}

func runList(ctx context.Context, w io.Writer, src types.PokemonSource, c config.Config, opts listOptions, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = zap.NewNop()
	}

	res := pokedex.FetchRange(ctx, src, c.Count,
		pokedex.WithConcurrency(c.Concurrency),
		pokedex.WithFetchLogger(log),
	)
	if res.Status != pokedex.FetchSucceeded {
		return res.Err
	}
	catalog := pokedex.NewCatalog(res.Records)

	tag := strings.ToLower(strings.TrimSpace(opts.Type))
	if tag != pokedex.CategoryNone {
		if _, err := catalog.Category(tag); err != nil {
			return fmt.Errorf("type %q: %w", tag, err)
		}
	}

	state := pokedex.DefaultViewState()
	state.PerPage = c.PerPage
	state = state.WithFilter(catalog, opts.Filter).WithCategory(catalog, tag).WithPage(catalog, opts.Page)
	view := pokedex.Derive(catalog, state)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listOutput{
			Filter:     state.Filter,
			Type:       state.Category,
			Page:       view.Page,
			TotalPages: view.TotalPages,
			Total:      view.Total,
			Items:      dto.FromPokemonList(view.Items),
		})
	}

	if view.Empty() {
		fmt.Fprintln(w, "No Pokémon match.")
		if suggestions := pokedex.Suggest(catalog, state.Filter, 3); len(suggestions) > 0 {
			names := make([]string, 0, len(suggestions))
			for _, p := range suggestions {
				names = append(names, p.DisplayName())
			}
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(names, ", "))
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "TYPES", "HEIGHT", "WEIGHT")
	for _, p := range view.Items {
		t.Row(
			fmt.Sprintf("%03d", p.ID()),
			p.DisplayName(),
			strings.Join(p.Types(), "/"),
			strconv.Itoa(p.Height()),
			strconv.Itoa(p.Weight()),
		)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "page %d/%d • %d result(s)\n", view.Page, view.TotalPages, view.Total)
	return nil
}
