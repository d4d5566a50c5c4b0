package reference

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

func TestDefault_CoversEveryCard(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "classic", c.Name())

	ctx := context.Background()
	locations, err := c.LocationIndex(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, locations)

	table, err := c.CardSymbolTable(ctx)
	require.NoError(t, err)
	for _, loc := range append([]string{models.SpyLocation}, locations...) {
		for card := game.MinCard; card <= game.MaxCard; card++ {
			symbol, ok := table.Symbol(loc, card)
			assert.True(t, ok, "%s/%d", loc, card)
			assert.NotEmpty(t, symbol)
		}
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	locations, _ := c.LocationIndex(ctx)
	locations[0] = "Moon"
	table, _ := c.CardSymbolTable(ctx)
	table[models.SpyLocation][1] = "changed"

	again, _ := c.LocationIndex(ctx)
	assert.NotEqual(t, "Moon", again[0])
	fresh, _ := c.CardSymbolTable(ctx)
	assert.NotEqual(t, "changed", fresh[models.SpyLocation][1])
}

func TestParse_RejectsIncompleteTable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no locations", `{"locations": [], "symbols": {}}`},
		{"missing spy", `{"locations": ["Bank"], "symbols": {"Bank": {"1": "Vault"}}}`},
		{"reserved name", `{"locations": ["Spy"], "symbols": {}}`},
		{"duplicate", `{"locations": ["Bank", "Bank"], "symbols": {}}`},
		{"bad card key", `{"locations": ["Bank"], "symbols": {"Bank": {"one": "Vault"}}}`},
		{"bad json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte(`{"locations": ["Bank"], "symbols": {"Bank": {"1": "Vault"}}}`))
	assert.ErrorIs(t, err, game.ErrUnknownCardSymbol)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "classic", c.Name())

	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, defaultData, 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", c.Name())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
