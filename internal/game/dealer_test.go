package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestAddPlayer_DealsDistinctCardsInDomain(t *testing.T) {
	s := newSession()
	rng := NewRand(7)

	for i := range CardDomainSize {
		card, err := AddPlayer(s, fmt.Sprintf("player-%d", i), rng)
		require.NoError(t, err)
		assert.True(t, ValidCard(card), "card %d out of domain", card)
	}

	cards := s.Cards()
	require.Len(t, cards, CardDomainSize)
	seen := make(map[int]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "card %d dealt twice", c)
		seen[c] = true
	}
}

func TestAddPlayer_ExhaustedDomain(t *testing.T) {
	s := newSession()
	rng := NewRand(1)
	for i := range CardDomainSize {
		_, err := AddPlayer(s, fmt.Sprintf("p%d", i), rng)
		require.NoError(t, err)
	}

	_, err := AddPlayer(s, "one too many", rng)
	require.ErrorIs(t, err, ErrDomainExhausted)
	assert.Len(t, s.Players, CardDomainSize)
}

func TestAddPlayer_RejectsDuplicateName(t *testing.T) {
	s := newSession()
	rng := NewRand(3)
	_, err := AddPlayer(s, "Ann", rng)
	require.NoError(t, err)
	before := s.Cards()

	for _, name := range []string{"Ann", "ann", "  ANN "} {
		_, err := AddPlayer(s, name, rng)
		assert.ErrorIs(t, err, ErrDuplicatePlayer, name)
	}
	assert.Equal(t, before, s.Cards())
	assert.Len(t, s.Players, 1)
}

func TestAddPlayer_RejectsBlankName(t *testing.T) {
	s := newSession()
	_, err := AddPlayer(s, "   ", NewRand(1))
	require.ErrorIs(t, err, ErrInvalidPlayerName)
	assert.Empty(t, s.Players)
}

func TestAddPlayer_TrimsName(t *testing.T) {
	s := newSession()
	_, err := AddPlayer(s, "  Mary   Jane ", NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, "Mary Jane", s.Players[0].Name)
	assert.Equal(t, 0.0, s.Players[0].Score)
}

func TestDrawCard_FallsBackWhenResamplingIsStuck(t *testing.T) {
	s := newSession()
	_, err := AddPlayer(s, "Ann", stuckRand{})
	require.NoError(t, err)
	require.Equal(t, MinCard, s.Players[0].Card)

	// stuckRand keeps drawing the card Ann holds.
	card, err := DrawCard(s, stuckRand{})
	require.NoError(t, err)
	assert.Equal(t, MinCard+1, card)
}

func TestFreeCards(t *testing.T) {
	s := newSession()
	assert.Len(t, FreeCards(s), CardDomainSize)

	_, err := AddPlayer(s, "Ann", stuckRand{n: 4})
	require.NoError(t, err)
	free := FreeCards(s)
	assert.Len(t, free, CardDomainSize-1)
	assert.NotContains(t, free, MinCard+4)
}
