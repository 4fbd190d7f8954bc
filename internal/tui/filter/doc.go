// Package filter provides the category picker for the showroom TUI.
//
// The picker mirrors a select box: its first option is the empty "any"
// choice (no filter), followed by every category in the catalogue in
// first-seen order. Moving the cursor yields the new selection value, which
// the caller forwards to the shared selection state.
//
// # Usage
//
//	p := filter.New(catalog.Categories(items), state.Current())
//
//	result := p.HandleKey(keyMsg, keys)
//	if result.Changed {
//	    onChange(result.Value)
//	}
//
//	panel := filter.RenderPanel(p, theme)
package filter
