// Package reference loads the location list and card symbol tables the game
// draws from. The data is read once and never mutated afterwards.
package reference

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

//go:embed data/locations.json
var defaultData []byte

type document struct {
	Name      string                       `json:"name"`
	Locations []string                     `json:"locations"`
	Symbols   map[string]map[string]string `json:"symbols"`
}

// Catalog is a read-only location reference.
type Catalog struct {
	index models.LocationIndex
	table models.CardSymbolTable
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// Load reads a catalog from a JSON file, falling back to the bundled one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	table := make(models.CardSymbolTable, len(doc.Symbols))
	for location, cards := range doc.Symbols {
		entry := make(map[int]string, len(cards))
		for key, symbol := range cards {
			card, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("location %q: card key %q is not a number", location, key)
			}
			entry[card] = symbol
		}
		table[location] = entry
	}

	c := &Catalog{
		index: models.LocationIndex{Name: doc.Name, Locations: doc.Locations},
		table: table,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every location, and the spy entry, has a symbol for every card.
func (c *Catalog) Validate() error {
	if len(c.index.Locations) == 0 {
		return game.ErrNoLocations
	}
	seen := make(map[string]bool, len(c.index.Locations))
	for _, location := range c.index.Locations {
		if location == models.SpyLocation {
			return fmt.Errorf("%q is reserved and cannot be a location", models.SpyLocation)
		}
		if seen[location] {
			return fmt.Errorf("location %q listed twice", location)
		}
		seen[location] = true
	}

	for _, location := range append([]string{models.SpyLocation}, c.index.Locations...) {
		for card := game.MinCard; card <= game.MaxCard; card++ {
			if symbol, ok := c.table.Symbol(location, card); !ok || symbol == "" {
				return &game.UnknownCardSymbolError{Location: location, Card: card}
			}
		}
	}
	return nil
}

// Name identifies the loaded data set.
func (c *Catalog) Name() string { return c.index.Name }

// LocationIndex returns a copy of the selectable locations.
func (c *Catalog) LocationIndex(_ context.Context) ([]string, error) {
	return append([]string(nil), c.index.Locations...), nil
}

// CardSymbolTable returns a copy of the symbol table.
func (c *Catalog) CardSymbolTable(_ context.Context) (models.CardSymbolTable, error) {
	out := make(models.CardSymbolTable, len(c.table))
	for location, cards := range c.table {
		entry := make(map[int]string, len(cards))
		for card, symbol := range cards {
			entry[card] = symbol
		}
		out[location] = entry
	}
	return out, nil
}
