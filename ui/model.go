package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/pokedex"
	"github.com/Nicolas-rosa/Pokedex/types"
)

// Config wires the model to its data source and initial selections.
type Config struct {
	Source      types.PokemonSource
	Count       int
	Concurrency int
	PerPage     int
	Theme       pokedex.Theme
	Logger      *zap.Logger
}

// Model is the main TUI model. It owns the only mutable copy of the view
// and theme state; the pokedex package derives everything shown from them.
type Model struct {
	config    Config
	logger    *zap.Logger
	catalog   *pokedex.Catalog
	view      pokedex.ViewState
	theme     pokedex.Theme
	styles    Styles
	status    pokedex.FetchStatus
	err       error
	requestID int

	filter  textinput.Model
	pager   paginator.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
}

// NewModel creates a new Model with the given Config
func NewModel(cfg Config) Model {
	if cfg.Count <= 0 {
		cfg.Count = pokedex.DefaultCount
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = pokedex.DefaultPerPage
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "search by name"
	ti.Prompt = "/ "
	ti.CharLimit = 32

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = cfg.PerPage

	s := spinner.New()
	s.Spinner = spinner.Dot

	view := pokedex.DefaultViewState()
	view.PerPage = cfg.PerPage

	m := Model{
		config:  cfg,
		logger:  logger,
		view:    view,
		theme:   cfg.Theme,
		status:  pokedex.FetchInProgress,
		filter:  ti,
		pager:   p,
		spinner: s,
		help:    help.New(),
		keys:    keys,
	}
	m.applyTheme()
	return m
}

// Init starts the one batch fetch of the run
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	return fetchPokemon(m.config.Source, m.config.Count, m.config.Concurrency, m.logger, m.requestID)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filter.Width = max(msg.Width-6, 10)
		return m, nil

	case spinner.TickMsg:
		if m.status != pokedex.FetchInProgress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pokemonLoadedMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.applyResult(msg.result)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) applyResult(res pokedex.FetchResult) {
	m.status = res.Status
	switch res.Status {
	case pokedex.FetchSucceeded:
		m.err = nil
		m.catalog = pokedex.NewCatalog(res.Records)
		m.view = m.view.WithPage(m.catalog, m.view.Page)
		m.logger.Info("catalog ready",
			zap.Int("records", m.catalog.Len()),
			zap.Int("categories", len(m.catalog.Categories())),
		)
	case pokedex.FetchFailed:
		m.catalog = nil
		m.err = res.Err
		m.logger.Error("catalog load failed", zap.Error(res.Err))
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.filter.Focused() {
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.filter.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.filter.Blur()
			m.filter.SetValue("")
			m.view = m.view.WithFilter(m.catalog, "")
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.view = m.view.WithFilter(m.catalog, m.filter.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.theme = pokedex.Advance(m.theme)
		m.applyTheme()
		m.logger.Debug("theme changed", zap.String("theme", m.theme.String()))
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		if m.status != pokedex.FetchFailed {
			return m, nil
		}
		m.requestID++
		m.status = pokedex.FetchInProgress
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	}

	if m.status != pokedex.FetchSucceeded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		m.filter.SetValue("")
		m.view = m.view.WithFilter(m.catalog, "").WithCategory(m.catalog, pokedex.CategoryNone)
	case key.Matches(msg, m.keys.NextType):
		m.view = m.view.CycleCategory(m.catalog, 1)
	case key.Matches(msg, m.keys.PrevType):
		m.view = m.view.CycleCategory(m.catalog, -1)
	case key.Matches(msg, m.keys.NextPage):
		m.view = m.view.NextPage(m.catalog)
	case key.Matches(msg, m.keys.PrevPage):
		m.view = m.view.PrevPage(m.catalog)
	}
	return m, nil
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(pokedex.PaletteFor(m.theme))
	m.spinner.Style = m.styles.Spinner
	m.filter.PromptStyle = m.styles.Prompt
	m.pager.ActiveDot = m.styles.Header.Render("•")
	m.pager.InactiveDot = m.styles.Muted.Render("•")
}

// View renders the current view
func (m Model) View() string {
	switch m.status {
	case pokedex.FetchInProgress:
		return m.loadingView()
	case pokedex.FetchFailed:
		return m.errorView()
	default:
		return m.readyView()
	}
}

func (m Model) loadingView() string {
	return fmt.Sprintf("\n %s Loading %d Pokémon...\n\n %s\n",
		m.spinner.View(),
		m.config.Count,
		m.styles.Muted.Render("q to quit"),
	)
}

func (m Model) errorView() string {
	msg := "unknown error"
	if m.err != nil {
		msg = m.err.Error()
	}
	return fmt.Sprintf("\n %s\n\n %s\n\n %s\n",
		m.styles.Error.Render("Failed to load the Pokédex"),
		msg,
		m.styles.Muted.Render("r to retry • q to quit"),
	)
}

func (m Model) readyView() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	v := pokedex.Derive(m.catalog, m.view)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Pokédex") + " " + m.styles.Muted.Render("theme: "+m.theme.String()))
	b.WriteString("\n\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n")
	b.WriteString(m.typeBar(width))
	b.WriteString("\n\n")

	if v.Empty() {
		b.WriteString(m.emptyView())
	} else {
		b.WriteString(renderCards(m.styles, v.Items, width))
	}
	b.WriteString("\n")

	pager := m.pager
	pager.TotalPages = v.TotalPages
	pager.Page = max(v.Page-1, 0)
	status := fmt.Sprintf("page %d/%d • %d result(s)", v.Page, v.TotalPages, v.Total)
	b.WriteString(pager.View() + "  " + m.styles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) filterLine() string {
	if m.view.Category != pokedex.CategoryNone {
		return m.styles.Muted.Render("search is off while a type is selected (esc to reset)")
	}
	return m.filter.View()
}

func (m Model) typeBar(width int) string {
	tabs := make([]string, 0, len(m.catalog.Categories())+1)
	render := func(label string, active bool) string {
		if active {
			return m.styles.ActiveTab.Render(label)
		}
		return m.styles.InactiveTab.Render(label)
	}
	tabs = append(tabs, render("all", m.view.Category == pokedex.CategoryNone))
	for _, tag := range m.catalog.Categories() {
		tabs = append(tabs, render(tag, m.view.Category == tag))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) emptyView() string {
	lines := []string{m.styles.Muted.Render("No Pokémon match.")}
	if suggestions := pokedex.Suggest(m.catalog, m.view.Filter, 3); len(suggestions) > 0 {
		names := make([]string, 0, len(suggestions))
		for _, p := range suggestions {
			names = append(names, p.DisplayName())
		}
		lines = append(lines, m.styles.Muted.Render("Did you mean: ")+m.styles.Name.Render(strings.Join(names, ", "))+"?")
	}
	return strings.Join(lines, "\n") + "\n"
}

// Status reports the fetch status of the current run.
func (m Model) Status() pokedex.FetchStatus { return m.status }

// ViewState returns the current selection.
func (m Model) ViewState() pokedex.ViewState { return m.view }

func (m Model) Theme() pokedex.Theme { return m.theme }
