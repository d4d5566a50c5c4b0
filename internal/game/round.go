package game

import (
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// Clue is what gets read out for one player position.
type Clue struct {
	Position int
	Card     int
	Symbol   string
}

// Round is the outcome of StartRound.
type Round struct {
	Number   int
	Location string
	SpyIndex int
	Clues    []Clue
}

// StartRound picks the secret location and the spy, resolves every clue and
// resets the question counters. Nothing in s changes unless it succeeds.
func StartRound(s *models.GameSession, locations []string, table models.CardSymbolTable, rng Rand) (*Round, error) {
	if len(s.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	location := locations[rng.IntN(len(locations))]
	spyIndex := rng.IntN(len(s.Players))

	clues := make([]Clue, len(s.Players))
	for i, p := range s.Players {
		source := location
		if i == spyIndex {
			source = models.SpyLocation
		}
		symbol, ok := table.Symbol(source, p.Card)
		if !ok {
			return nil, &UnknownCardSymbolError{Location: source, Card: p.Card}
		}
		clues[i] = Clue{Position: i, Card: p.Card, Symbol: symbol}
	}

	s.Location = location
	for i, p := range s.Players {
		p.Role = models.RoleRegular
		if i == spyIndex {
			p.Role = models.RoleSpy
		}
	}
	s.State = models.BaselineRoundState()
	s.QuestionsAsked = []string{}
	s.Round++

	return &Round{
		Number:   s.Round,
		Location: location,
		SpyIndex: spyIndex,
		Clues:    clues,
	}, nil
}
