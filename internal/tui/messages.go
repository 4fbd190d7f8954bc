package tui

import "github.com/Iron-Ham/showroom/internal/catalog"

// ReloadMsg replaces the catalogue shown by a running Model.
type ReloadMsg struct {
	Items  []catalog.Item
	Source string // Where the items came from (e.g., the config file path)
}
