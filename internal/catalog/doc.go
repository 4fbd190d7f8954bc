// Package catalog holds the showroom's item model and the selection filter.
//
// A catalogue is an ordered list of [Item] values. Insertion order is display
// order. The [Filter] function narrows a catalogue to the items whose category
// matches the current selection, compared case-insensitively. An empty
// selection means "no filter" and returns the catalogue unchanged.
//
// # Usage
//
//	items := catalog.Default()
//
//	all := catalog.Filter(items, "")     // Golf, Polo
//	red := catalog.Filter(items, "RED")  // Golf
//	none := catalog.Filter(items, "pink") // empty
//
// [Categories] returns the distinct categories of a catalogue in first-seen
// order, which is what a picker offers after its empty "no filter" option.
//
// Filter never fails and never mutates its input. It is safe to call from any
// goroutine as long as the caller does not mutate the slice concurrently.
package catalog
