package filter

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/showroom/internal/tui/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	p := New([]string{"red", "blue"}, "")

	if got := p.Options(); !slices.Equal(got, []string{"", "red", "blue"}) {
		t.Errorf("Options() = %q, want [\"\" red blue]", got)
	}
	if p.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", p.Selected())
	}
}

func TestNew_PreselectsCurrent(t *testing.T) {
	p := New([]string{"red", "blue"}, "BLUE")

	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
	if p.Selected() != "blue" {
		t.Errorf("Selected() = %q, want blue", p.Selected())
	}
}

func TestNew_KeepsUnknownCurrent(t *testing.T) {
	p := New([]string{"red", "blue"}, "green")

	if got := p.Options(); !slices.Equal(got, []string{"", "red", "blue", "green"}) {
		t.Errorf("Options() = %q", got)
	}
	if p.Selected() != "green" {
		t.Errorf("Selected() = %q, want green", p.Selected())
	}
}

func TestNextPrevWrap(t *testing.T) {
	p := New([]string{"red", "blue"}, "")

	steps := []string{p.Next(), p.Next(), p.Next()}
	if !slices.Equal(steps, []string{"red", "blue", ""}) {
		t.Errorf("Next sequence = %q", steps)
	}

	if got := p.Prev(); got != "blue" {
		t.Errorf("Prev() from start = %q, want blue", got)
	}
}

func TestSelect(t *testing.T) {
	p := New([]string{"red", "blue"}, "")

	if !p.Select("Red") {
		t.Error("Select(Red) should find red")
	}
	if p.Selected() != "red" {
		t.Errorf("Selected() = %q, want red", p.Selected())
	}
	if p.Select("green") {
		t.Error("Select(green) should fail")
	}
	if p.Selected() != "red" {
		t.Error("failed Select should not move the cursor")
	}
}

func TestSetCategories_KeepsSelection(t *testing.T) {
	p := New([]string{"red", "blue"}, "blue")

	p.SetCategories([]string{"blue", "yellow"}, p.Selected())

	if p.Selected() != "blue" || p.Index() != 1 {
		t.Errorf("after reload Selected() = %q at %d, want blue at 1", p.Selected(), p.Index())
	}
}

func TestHandleKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		start   string
		msg     tea.KeyMsg
		handled bool
		changed bool
		value   string
	}{
		{"right arrow", "", tea.KeyMsg{Type: tea.KeyRight}, true, true, "red"},
		{"l", "red", runeKey('l'), true, true, "blue"},
		{"tab wraps", "blue", tea.KeyMsg{Type: tea.KeyTab}, true, true, ""},
		{"left arrow wraps", "", tea.KeyMsg{Type: tea.KeyLeft}, true, true, "blue"},
		{"h", "blue", runeKey('h'), true, true, "red"},
		{"clear", "blue", runeKey('c'), true, true, ""},
		{"clear when empty", "", runeKey('c'), true, false, ""},
		{"unrelated key", "red", runeKey('x'), false, false, "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New([]string{"red", "blue"}, tt.start)
			result := p.HandleKey(tt.msg, keys)

			if result.Handled != tt.handled {
				t.Errorf("Handled = %v, want %v", result.Handled, tt.handled)
			}
			if result.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", result.Changed, tt.changed)
			}
			if result.Value != tt.value {
				t.Errorf("Value = %q, want %q", result.Value, tt.value)
			}
		})
	}
}

func TestRenderPanel(t *testing.T) {
	p := New([]string{"red", "blue"}, "red")
	out := RenderPanel(p, styles.NewTheme("mono"))

	for _, want := range []string{AnyLabel, "red", "blue"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPanel() missing %q: %q", want, out)
		}
	}
}
