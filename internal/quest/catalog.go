package quest

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pharmacy-quest/internal/config"
	"github.com/vovakirdan/pharmacy-quest/internal/core"
)

// ErrLevelNotFound is returned when a level ordinal is outside the catalog.
var ErrLevelNotFound = errors.New("level not found")

// CatalogError reports a malformed level catalog. It is a configuration
// error: the host must abort startup when it sees one.
type CatalogError struct {
	Level   int // Offending level ordinal, 0 when not level-specific
	Message string
	Err     error
}

func (e *CatalogError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Level > 0 {
		return fmt.Sprintf("catalog: level %d: %s", e.Level, msg)
	}
	return "catalog: " + msg
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Catalog holds the ordered, read-only sequence of levels.
type Catalog struct {
	levels []Level
}

// yamlCatalog is the on-disk level file layout.
type yamlCatalog struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Ordinal   int                  `yaml:"ordinal"`
	Items     []string             `yaml:"items"`
	Positions map[string]yamlPoint `yaml:"positions"`
	Labels    map[string]string    `yaml:"labels,omitempty"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadCatalog parses and validates a YAML level catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, &CatalogError{Message: "cannot parse level file", Err: err}
	}

	if len(yc.Levels) == 0 {
		return nil, &CatalogError{Message: "no levels defined"}
	}

	c := &Catalog{levels: make([]Level, 0, len(yc.Levels))}
	for i, yl := range yc.Levels {
		if yl.Ordinal != i+1 {
			return nil, &CatalogError{
				Level:   yl.Ordinal,
				Message: fmt.Sprintf("expected ordinal %d at position %d", i+1, i+1),
			}
		}
		lvl, err := buildLevel(yl)
		if err != nil {
			return nil, err
		}
		c.levels = append(c.levels, lvl)
	}

	return c, nil
}

// DefaultCatalog returns the built-in three levels.
// Panics if the embedded level file is broken.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(config.DefaultLevelsYAML())
	if err != nil {
		panic(fmt.Sprintf("quest: embedded levels: %v", err))
	}
	return c
}

// LoadCatalogFile reads a level catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: "cannot read " + path, Err: err}
	}
	return LoadCatalog(data)
}

// buildLevel checks that the item list and the position table describe
// exactly the same set of items.
func buildLevel(yl yamlLevel) (Level, error) {
	fail := func(format string, args ...any) (Level, error) {
		return Level{}, &CatalogError{Level: yl.Ordinal, Message: fmt.Sprintf(format, args...)}
	}

	if len(yl.Items) == 0 {
		return fail("no items")
	}

	lvl := Level{Ordinal: yl.Ordinal, Items: make([]Item, 0, len(yl.Items))}
	seen := make(map[string]bool, len(yl.Items))

	for _, id := range yl.Items {
		if id == "" {
			return fail("empty item id")
		}
		if seen[id] {
			return fail("duplicate item %q", id)
		}
		seen[id] = true

		pos, ok := yl.Positions[id]
		if !ok {
			return fail("item %q has no position", id)
		}

		label := yl.Labels[id]
		if label == "" {
			label = id
		}
		lvl.Items = append(lvl.Items, Item{ID: id, Label: label, Pos: core.Pt(pos.X, pos.Y)})
	}

	for _, id := range sortedKeys(yl.Positions) {
		if !seen[id] {
			return fail("position for unknown item %q", id)
		}
	}
	for _, id := range sortedKeys(yl.Labels) {
		if !seen[id] {
			return fail("label for unknown item %q", id)
		}
	}

	return lvl, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Level returns the level with the given 1-based ordinal.
func (c *Catalog) Level(ordinal int) (Level, error) {
	if ordinal < 1 || ordinal > len(c.levels) {
		return Level{}, fmt.Errorf("catalog: level %d: %w", ordinal, ErrLevelNotFound)
	}
	return c.levels[ordinal-1], nil
}

// Levels returns all levels in order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// TotalItems returns the number of items across every level.
func (c *Catalog) TotalItems() int {
	total := 0
	for _, l := range c.levels {
		total += l.ItemCount()
	}
	return total
}
