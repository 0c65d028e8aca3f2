package quest

import (
	"testing"

	"github.com/vovakirdan/pharmacy-quest/internal/core"
)

// centre returns the absolute screen point at the middle of an item.
func centre(t *testing.T, lvl Level, id string) core.Point {
	t.Helper()
	it, ok := lvl.Item(id)
	if !ok {
		t.Fatalf("no item %q on level %d", id, lvl.Ordinal)
	}
	return core.Pt(it.Pos.X+PanelWidth, it.Pos.Y)
}

func TestHitBox(t *testing.T) {
	box := HitBox(Item{ID: "aspirin", Pos: core.Pt(120, 140)})

	if box.X != 511 || box.Y != 115 || box.W != 50 || box.H != 50 {
		t.Errorf("HitBox() = %+v, want {511 115 50 50}", box)
	}
}

func TestRegisterClickFindsItem(t *testing.T) {
	lvl, _ := defaultCatalog(t).Level(1)

	tests := []struct {
		name   string
		p      core.Point
		wantID string
		wantOK bool
	}{
		{"centre", core.Pt(536, 140), "aspirin", true},
		{"top-left corner", core.Pt(511, 115), "aspirin", true},
		{"bottom-right corner", core.Pt(561, 165), "aspirin", true},
		{"just outside", core.Pt(562, 140), "", false},
		{"panel coordinates do not count", core.Pt(120, 140), "", false},
		{"empty floor", core.Pt(900, 500), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, id, ok := RegisterClick(lvl, FoundSet{}, tt.p)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("RegisterClick(%v) = %q, %v; want %q, %v", tt.p, id, ok, tt.wantID, tt.wantOK)
			}
			if ok && (!found.Has(tt.wantID) || found.Len() != 1) {
				t.Errorf("found set = %v, want [%s]", found.IDs(), tt.wantID)
			}
			if !ok && found.Len() != 0 {
				t.Errorf("miss changed found set: %v", found.IDs())
			}
		})
	}
}

func TestRegisterClickIdempotent(t *testing.T) {
	lvl, _ := defaultCatalog(t).Level(1)
	p := centre(t, lvl, "iodine")

	found, id, ok := RegisterClick(lvl, FoundSet{}, p)
	if !ok || id != "iodine" {
		t.Fatalf("first click = %q, %v", id, ok)
	}

	for i := 0; i < 5; i++ {
		next, id, ok := RegisterClick(lvl, found, p)
		if ok || id != "" {
			t.Errorf("repeat click %d credited %q", i, id)
		}
		if next.Len() != 1 || !next.Has("iodine") {
			t.Errorf("repeat click %d changed found set: %v", i, next.IDs())
		}
		found = next
	}
}

func TestRegisterClickOverlapFirstDeclaredWins(t *testing.T) {
	lvl, _ := defaultCatalog(t).Level(3)

	// vitamins (700,640) and scissors (650,640) share the edge x = 1091.
	p := core.Pt(1091, 640)

	found, id, ok := RegisterClick(lvl, FoundSet{}, p)
	if !ok || id != "vitamins" {
		t.Fatalf("first click = %q, %v; want vitamins", id, ok)
	}
	if found.Len() != 1 {
		t.Fatalf("overlap credited %d items, want exactly 1", found.Len())
	}

	found, id, ok = RegisterClick(lvl, found, p)
	if !ok || id != "scissors" {
		t.Fatalf("second click = %q, %v; want scissors", id, ok)
	}

	_, id, ok = RegisterClick(lvl, found, p)
	if ok {
		t.Errorf("third click credited %q, want nothing", id)
	}
}

func TestRegisterClickOverlapCustomOrder(t *testing.T) {
	c, err := LoadCatalog([]byte(`
levels:
  - ordinal: 1
    items: [second, first]
    positions:
      first: {x: 100, y: 100}
      second: {x: 110, y: 100}
`))
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	lvl, _ := c.Level(1)

	_, id, ok := RegisterClick(lvl, FoundSet{}, core.Pt(105+PanelWidth, 100))
	if !ok || id != "second" {
		t.Errorf("click = %q, %v; want the item listed first (second)", id, ok)
	}
}

func TestRegisterClickDoesNotMutateInput(t *testing.T) {
	lvl, _ := defaultCatalog(t).Level(1)

	before, _, _ := RegisterClick(lvl, FoundSet{}, centre(t, lvl, "aspirin"))
	after, _, ok := RegisterClick(lvl, before, centre(t, lvl, "bandage"))

	if !ok || after.Len() != 2 {
		t.Fatalf("second click failed: %v", after.IDs())
	}
	if before.Len() != 1 || before.Has("bandage") {
		t.Errorf("input set was mutated: %v", before.IDs())
	}
}

func TestIsLevelCompleteMonotonic(t *testing.T) {
	lvl, _ := defaultCatalog(t).Level(2)
	order := []string{"ointment", "mask", "aspirin", "pills", "syringe", "iodine", "bandage", "vitamins", "antibiotic", "thermometer"}

	found := FoundSet{}
	for i, id := range order {
		if IsLevelComplete(lvl, found) {
			t.Fatalf("complete after %d of %d items", i, len(order))
		}
		var ok bool
		found, _, ok = RegisterClick(lvl, found, centre(t, lvl, id))
		if !ok {
			t.Fatalf("click on %s missed", id)
		}
	}

	if !IsLevelComplete(lvl, found) {
		t.Fatal("not complete after every item was found")
	}

	// Further clicks never revert completion.
	for _, id := range order {
		found, _, _ = RegisterClick(lvl, found, centre(t, lvl, id))
		if !IsLevelComplete(lvl, found) {
			t.Fatal("completion reverted")
		}
	}
}

func TestFoundSetOrder(t *testing.T) {
	f := FoundSet{}.With("b").With("a").With("b")

	ids := f.IDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Errorf("IDs() = %v, want [b a]", ids)
	}

	ids[0] = "mutated"
	if !f.Has("b") {
		t.Error("IDs() must return a copy")
	}
}
