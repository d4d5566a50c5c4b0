package game

import (
	"strings"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// AddPlayer deals a card nobody in the session holds yet and appends the player.
// The session is left untouched when an error is returned.
func AddPlayer(s *models.GameSession, name string, rng Rand) (int, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return 0, ErrInvalidPlayerName
	}
	if s.FindPlayer(name) >= 0 {
		return 0, ErrDuplicatePlayer
	}

	card, err := DrawCard(s, rng)
	if err != nil {
		return 0, err
	}

	s.Players = append(s.Players, &models.Player{
		Name: name,
		Card: card,
		Role: models.RoleRegular,
	})
	return card, nil
}

// DrawCard picks a card uniformly from the ids not yet dealt in s.
func DrawCard(s *models.GameSession, rng Rand) (int, error) {
	if len(s.Players) >= CardDomainSize {
		return 0, ErrDomainExhausted
	}

	for range MaxDrawAttempts {
		card := MinCard + rng.IntN(CardDomainSize)
		if !s.HasCard(card) {
			return card, nil
		}
	}

	// Unlucky streak: pick directly from what is left.
	free := FreeCards(s)
	if len(free) == 0 {
		return 0, ErrDomainExhausted
	}
	return free[rng.IntN(len(free))], nil
}

// FreeCards returns the card ids not dealt in s, in ascending order.
func FreeCards(s *models.GameSession) []int {
	free := make([]int, 0, CardDomainSize)
	for card := MinCard; card <= MaxCard; card++ {
		if !s.HasCard(card) {
			free = append(free, card)
		}
	}
	return free
}

// ValidCard reports whether card lies in the dealt domain.
func ValidCard(card int) bool {
	return card >= MinCard && card <= MaxCard
}
