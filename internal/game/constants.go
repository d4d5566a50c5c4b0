package game

const (
	// MinCard is the lowest card id that can be dealt
	MinCard = 1

	// MaxCard is the highest card id that can be dealt
	MaxCard = 29

	// CardDomainSize is the number of distinct cards, and therefore the player cap
	CardDomainSize = MaxCard - MinCard + 1

	// MaxDrawAttempts bounds the resampling loop when dealing a card
	MaxDrawAttempts = 64
)
