package quest

import "github.com/vovakirdan/pharmacy-quest/internal/core"

// FoundSet is the ordered set of item IDs discovered on the active level.
// It is a value: With returns a new set and never touches the receiver, so
// older states stay valid.
type FoundSet struct {
	ids []string
}

// Has reports whether id has been found.
func (f FoundSet) Has(id string) bool {
	for _, v := range f.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of found items.
func (f FoundSet) Len() int {
	return len(f.ids)
}

// IDs returns found IDs in discovery order.
func (f FoundSet) IDs() []string {
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

// With returns a set that also contains id. Adding a present id is a no-op.
func (f FoundSet) With(id string) FoundSet {
	if f.Has(id) {
		return f
	}
	ids := make([]string, len(f.ids), len(f.ids)+1)
	copy(ids, f.ids)
	return FoundSet{ids: append(ids, id)}
}

// HitBox returns the clickable square around an item in absolute screen
// coordinates: HitBoxSize wide, centred on the item, shifted right past the
// request panel.
func HitBox(it Item) core.Rect {
	return core.CenteredRect(it.Pos, HitBoxSize, HitBoxSize).Offset(PanelWidth, 0)
}

// RegisterClick credits at most one item for a click at p. Items are tested
// in declaration order, already found items are skipped, and the first box
// containing p wins. The input set is left untouched.
func RegisterClick(level Level, found FoundSet, p core.Point) (FoundSet, string, bool) {
	for _, it := range level.Items {
		if found.Has(it.ID) {
			continue
		}
		if HitBox(it).ContainsClosed(p) {
			return found.With(it.ID), it.ID, true
		}
	}
	return found, "", false
}

// IsLevelComplete reports whether every item on the level has been found.
func IsLevelComplete(level Level, found FoundSet) bool {
	return found.Len() == level.ItemCount()
}
