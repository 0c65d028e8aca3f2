// Package quest implements the hidden-object game: the level catalog, item
// discovery, the name prompt, and the session state machine that ties them
// together. It never draws anything and never reads devices; the host feeds
// it events and renders its snapshots.
package quest

import "github.com/vovakirdan/pharmacy-quest/internal/core"

// Scene geometry in absolute screen pixels.
const (
	SceneWidth  = 1440
	SceneHeight = 1024
	PanelWidth  = 416 // Left request panel; the play surface starts to its right
	HitBoxSize  = 50
)

// Item is one hidden object: its identifier, a display label, and its
// position relative to the play surface.
type Item struct {
	ID    string
	Label string
	Pos   core.Point
}

// Level is a fixed configuration of items. Items keep their declaration
// order, which decides who wins when hit boxes overlap.
type Level struct {
	Ordinal int
	Items   []Item
}

// ItemCount returns the number of items to find on this level.
func (l Level) ItemCount() int {
	return len(l.Items)
}

// Item looks up an item by ID.
func (l Level) Item(id string) (Item, bool) {
	for _, it := range l.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// IDs returns item identifiers in declaration order.
func (l Level) IDs() []string {
	ids := make([]string, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}
