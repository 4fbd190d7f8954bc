package styles

import "github.com/charmbracelet/bubbles/help"

// HelpStyles returns bubbles/help styles that match the theme.
func (t *Theme) HelpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = t.HelpKey
	s.FullKey = t.HelpKey
	s.ShortDesc = t.Muted
	s.FullDesc = t.Muted
	s.ShortSeparator = t.Muted
	s.FullSeparator = t.Muted
	return s
}
