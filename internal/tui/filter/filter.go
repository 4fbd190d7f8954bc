package filter

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/showroom/internal/tui/styles"
)

// AnyLabel is what the empty option shows.
const AnyLabel = "any"

// Picker is a cursor over the selectable categories.
// Option 0 is always "" (no filter).
type Picker struct {
	options []string
	index   int
}

// New creates a Picker over categories with current pre-selected.
// An unknown current value is kept as an extra option so the picker never
// silently drops the selection it was given.
func New(categories []string, current string) *Picker {
	p := &Picker{}
	p.SetCategories(categories, current)
	return p
}

// SetCategories replaces the options, keeping current selected.
func (p *Picker) SetCategories(categories []string, current string) {
	p.options = make([]string, 0, len(categories)+2)
	p.options = append(p.options, "")
	p.options = append(p.options, categories...)
	p.index = 0

	if current == "" {
		return
	}
	for i, opt := range p.options {
		if strings.EqualFold(opt, current) {
			p.index = i
			return
		}
	}
	p.options = append(p.options, current)
	p.index = len(p.options) - 1
}

// Options returns a copy of the picker's options, "" first.
func (p *Picker) Options() []string {
	return append([]string(nil), p.options...)
}

// Selected returns the value under the cursor ("" = no filter).
func (p *Picker) Selected() string {
	return p.options[p.index]
}

// Index returns the cursor position.
func (p *Picker) Index() int {
	return p.index
}

// Next moves the cursor forward, wrapping around, and returns the new value.
func (p *Picker) Next() string {
	p.index = (p.index + 1) % len(p.options)
	return p.Selected()
}

// Prev moves the cursor back, wrapping around, and returns the new value.
func (p *Picker) Prev() string {
	p.index = (p.index - 1 + len(p.options)) % len(p.options)
	return p.Selected()
}

// Select moves the cursor to value if it is an option.
// Returns false and leaves the cursor alone otherwise.
func (p *Picker) Select(value string) bool {
	for i, opt := range p.options {
		if strings.EqualFold(opt, value) {
			p.index = i
			return true
		}
	}
	return false
}

// KeyMap holds the bindings the picker reacts to.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Clear key.Binding
}

// DefaultKeyMap returns the standard picker bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next color"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev color"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "0"),
			key.WithHelp("c", "clear"),
		),
	}
}

// InputResult captures the result of handling a key press.
type InputResult struct {
	Handled bool   // The key belonged to the picker
	Changed bool   // The selection moved
	Value   string // Selection after the key press
}

// HandleKey moves the cursor according to msg.
func (p *Picker) HandleKey(msg tea.KeyMsg, keys KeyMap) InputResult {
	before := p.Selected()

	switch {
	case key.Matches(msg, keys.Next):
		p.Next()
	case key.Matches(msg, keys.Prev):
		p.Prev()
	case key.Matches(msg, keys.Clear):
		p.index = 0
	default:
		return InputResult{Value: before}
	}

	after := p.Selected()
	return InputResult{Handled: true, Changed: after != before, Value: after}
}

// RenderPanel renders the options on one line, highlighting the selected one.
func RenderPanel(p *Picker, theme *styles.Theme) string {
	parts := make([]string, 0, len(p.options))
	for i, opt := range p.options {
		label := opt
		if label == "" {
			label = AnyLabel
		}
		if i == p.index {
			parts = append(parts, theme.Selected.Render(label))
		} else {
			parts = append(parts, theme.Option.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
