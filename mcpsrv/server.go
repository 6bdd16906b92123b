package mcpsrv

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/mcpsrv/dto"
	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

type pokemonListArgs struct {
	Filter  string `json:"filter,omitempty" jsonschema:"Optional case-insensitive name substring (ignored when type is set)"`
	Type    string `json:"type,omitempty" jsonschema:"Optional type tag such as fire or water"`
	Page    int    `json:"page,omitempty" jsonschema:"Page number starting at 1"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"Optional page size (1-50, default 10)"`
}

type pokemonGetArgs struct {
	ID int `json:"id" jsonschema:"Pokedex number"`
}

type themeNextArgs struct {
	Theme string `json:"theme,omitempty" jsonschema:"Current theme name; empty means default"`
}

type pokemonListOutput struct {
	Filter      string        `json:"filter"`
	Type        string        `json:"type"`
	Page        int           `json:"page"`
	PerPage     int           `json:"per_page"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"total_pages"`
	Items       []dto.Pokemon `json:"items"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

type pokemonGetOutput struct {
	Item dto.Pokemon `json:"item"`
}

type typeListOutput struct {
	Total int             `json:"total"`
	Items []dto.TypeCount `json:"items"`
}

type themeListOutput struct {
	Order []string      `json:"order"`
	Items []dto.Palette `json:"items"`
}

type themeNextOutput struct {
	Previous string      `json:"previous"`
	Current  dto.Palette `json:"current"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
	Count       int
	Concurrency int
	Logger      *zap.Logger
}

func (o *ServerOptions) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

type cacheClearSource interface {
	ClearCache()
}

const maxPerPage = 50

func NewServer(source types.PokemonSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	count := opts.Count
	if count <= 0 {
		count = pokedex.DefaultCount
	}

	loader := &catalogLoader{
		source:      source,
		count:       count,
		concurrency: opts.Concurrency,
		logger:      opts.logger(),
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "pokedex", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pokemon_list",
		Description: "List one page of the Pokédex, optionally filtered by name or by type.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args pokemonListArgs) (*mcp.CallToolResult, pokemonListOutput, error) {
		return pokemonListHandler(ctx, req, args, loader)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pokemon_get",
		Description: "Get a single Pokémon by Pokédex number.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args pokemonGetArgs) (*mcp.CallToolResult, pokemonGetOutput, error) {
		return pokemonGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "type_list",
		Description: "List Pokémon types with member counts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, typeListOutput, error) {
		return typeListHandler(ctx, req, loader)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "theme_list",
		Description: "List display themes in cycle order with their palettes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, themeListOutput, error) {
		return themeListHandler(ctx, req)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "theme_next",
		Description: "Return the theme that follows the given one in the cycle.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args themeNextArgs) (*mcp.CallToolResult, themeNextOutput, error) {
		return themeNextHandler(ctx, req, args)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Drop the loaded catalog and the lookup cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source, loader)
		})
	}

	return server
}

func pokemonListHandler(ctx context.Context, _ *mcp.CallToolRequest, args pokemonListArgs, loader *catalogLoader) (*mcp.CallToolResult, pokemonListOutput, error) {
	perPage := args.PerPage
	if perPage == 0 {
		perPage = pokedex.DefaultPerPage
	}
	if perPage < 1 || perPage > maxPerPage {
		return errorToolResult("per_page must be between 1 and 50"), pokemonListOutput{}, nil
	}
	page := args.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return errorToolResult("page must be >= 1"), pokemonListOutput{}, nil
	}

	catalog, err := loader.Load(ctx)
	if err != nil {
		return errorToolResult("load pokedex failed: " + err.Error()), pokemonListOutput{}, nil
	}

	tag := strings.TrimSpace(strings.ToLower(args.Type))
	if tag != pokedex.CategoryNone {
		if _, err := catalog.Category(tag); errors.Is(err, pokedex.ErrEmptyCategory) {
			return errorToolResult("unknown type " + tag), pokemonListOutput{}, nil
		}
	}

	state := pokedex.ViewState{Filter: args.Filter, Category: tag, PerPage: perPage}.WithPage(catalog, page)
	view := pokedex.Derive(catalog, state)

	out := pokemonListOutput{
		Filter:     args.Filter,
		Type:       tag,
		Page:       view.Page,
		PerPage:    perPage,
		Total:      view.Total,
		TotalPages: view.TotalPages,
		Items:      dto.FromPokemonList(view.Items),
	}
	if view.Empty() {
		for _, p := range pokedex.Suggest(catalog, args.Filter, 3) {
			out.Suggestions = append(out.Suggestions, p.Name())
		}
	}
	return nil, out, nil
}

func pokemonGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args pokemonGetArgs, source types.PokemonSource) (*mcp.CallToolResult, pokemonGetOutput, error) {
	if args.ID <= 0 {
		return errorToolResult("id must be a positive integer"), pokemonGetOutput{}, nil
	}

	p, err := source.GetPokemon(ctx, args.ID)
	if err != nil {
		var nf *types.NotFoundError
		if errors.As(err, &nf) {
			return errorToolResult(nf.Error()), pokemonGetOutput{}, nil
		}
		return errorToolResult("fetch pokemon failed"), pokemonGetOutput{}, nil
	}

	return nil, pokemonGetOutput{Item: dto.FromPokemon(p)}, nil
}

func typeListHandler(ctx context.Context, _ *mcp.CallToolRequest, loader *catalogLoader) (*mcp.CallToolResult, typeListOutput, error) {
	catalog, err := loader.Load(ctx)
	if err != nil {
		return errorToolResult("load pokedex failed: " + err.Error()), typeListOutput{}, nil
	}
	items := dto.FromCategoryCounts(catalog.CategoryCounts())
	return nil, typeListOutput{Total: len(items), Items: items}, nil
}

func themeListHandler(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, themeListOutput, error) {
	items := make([]dto.Palette, 0, len(pokedex.ThemeOrder))
	for _, t := range pokedex.ThemeOrder {
		items = append(items, dto.FromTheme(t))
	}
	return nil, themeListOutput{Order: pokedex.ThemeNames(), Items: items}, nil
}

func themeNextHandler(_ context.Context, _ *mcp.CallToolRequest, args themeNextArgs) (*mcp.CallToolResult, themeNextOutput, error) {
	cur, err := pokedex.ParseTheme(args.Theme)
	if err != nil {
		return errorToolResult(err.Error()), themeNextOutput{}, nil
	}
	return nil, themeNextOutput{
		Previous: cur.String(),
		Current:  dto.FromTheme(pokedex.Advance(cur)),
	}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.PokemonSource, loader *catalogLoader) (*mcp.CallToolResult, cacheClearOutput, error) {
	loader.Reset()
	if clearable, ok := source.(cacheClearSource); ok {
		clearable.ClearCache()
	}
	return nil, cacheClearOutput{Status: "ok"}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
