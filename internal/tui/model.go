// Package tui implements the interactive showroom browser.
//
// The model owns no selection of its own: it reads the shared
// [selection.State], forwards picker moves to it through
// [selection.Notify], and refreshes its visible rows from a subscription.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/showroom/internal/catalog"
	"github.com/Iron-Ham/showroom/internal/logging"
	"github.com/Iron-Ham/showroom/internal/selection"
	"github.com/Iron-Ham/showroom/internal/tui/filter"
	"github.com/Iron-Ham/showroom/internal/tui/styles"
)

// DefaultTitle is the fieldset legend.
const DefaultTitle = "Car catalogue"

// Options configures a Model.
type Options struct {
	Title        string
	Theme        string // "default" or "mono"
	MaxNameWidth int    // 0 = no limit
	Logger       *logging.Logger
}

// Model holds the browse view state.
type Model struct {
	state    *selection.State
	onChange func(string)
	subID    string

	items   []catalog.Item
	visible []catalog.Item
	picker  *filter.Picker

	keys  KeyMap
	help  help.Model
	theme *styles.Theme

	title        string
	maxNameWidth int
	width        int
	quitting     bool

	logger *logging.Logger
}

// NewModel creates a browse model over items, bound to state.
// Call Close when done to drop the state subscription.
func NewModel(items []catalog.Item, state *selection.State, opts Options) *Model {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	theme := styles.NewTheme(opts.Theme)
	h := help.New()
	h.Styles = theme.HelpStyles()

	m := &Model{
		state:        state,
		items:        items,
		picker:       filter.New(catalog.Categories(items), state.Current()),
		keys:         DefaultKeyMap(),
		help:         h,
		theme:        theme,
		title:        opts.Title,
		maxNameWidth: opts.MaxNameWidth,
		logger:       opts.Logger.WithView("browse"),
	}
	m.onChange = selection.Notify(func(v string) { state.Set(v) })
	m.subID = state.Subscribe(m.selectionChanged)
	m.refresh()
	return m
}

// Close unsubscribes the model from the selection state.
func (m *Model) Close() {
	if m.subID != "" {
		m.state.Unsubscribe(m.subID)
		m.subID = ""
	}
}

// selectionChanged re-derives the visible rows after the shared state moves.
func (m *Model) selectionChanged(current string) {
	if !m.picker.Select(current) {
		m.picker.SetCategories(catalog.Categories(m.items), current)
	}
	m.refresh()
	m.logger.Info("selection changed", "selection", current, "visible", len(m.visible))
}

func (m *Model) refresh() {
	m.visible = catalog.Filter(m.items, m.state.Current())
}

// Visible returns the rows currently shown.
func (m *Model) Visible() []catalog.Item {
	return m.visible
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ReloadMsg:
		m.reload(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if result := m.picker.HandleKey(msg, m.keys.Picker); result.Changed {
		m.onChange(result.Value)
	}
	return m, nil
}

// reload swaps in a new catalogue while keeping the current selection.
func (m *Model) reload(msg ReloadMsg) {
	m.items = msg.Items
	m.picker.SetCategories(catalog.Categories(m.items), m.state.Current())
	m.refresh()
	m.logger.Info("catalog reloaded", "source", msg.Source, "items", len(m.items))
}
