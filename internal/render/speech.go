package render

import (
	"strconv"
	"strings"

	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// NarrationLeadIn opens every round announcement
const NarrationLeadIn = "Here are the clues for this round."

// Narration reads every clue in join order. The spy's segment uses the same template as the rest.
func Narration(clues []game.Clue) string {
	var b strings.Builder
	b.WriteString(NarrationLeadIn)
	for _, c := range clues {
		b.WriteString(" ")
		b.WriteString(ClueSegment(c.Card, c.Symbol))
	}
	return b.String()
}

// ClueSegment renders one "Card X. symbol." segment
func ClueSegment(card int, symbol string) string {
	var b strings.Builder
	b.WriteString("Card ")
	b.WriteString(strconv.Itoa(card))
	b.WriteString(". ")
	b.WriteString(strings.TrimRight(strings.TrimSpace(symbol), ".!?"))
	b.WriteString(".")
	return b.String()
}

// PlayerList reads out the joined players in join order
func PlayerList(players []*models.Player) string {
	switch len(players) {
	case 0:
		return "Nobody has joined yet."
	case 1:
		return "One player has joined: " + players[0].Name + "."
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(players)))
	b.WriteString(" players have joined: ")
	b.WriteString(strings.Join(names[:len(names)-1], ", "))
	b.WriteString(" and ")
	b.WriteString(names[len(names)-1])
	b.WriteString(".")
	return b.String()
}

// JoinConfirmation tells a new player which card they hold
func JoinConfirmation(name string, card int) string {
	var b strings.Builder
	b.WriteString("Welcome ")
	b.WriteString(name)
	b.WriteString(", you have card ")
	b.WriteString(strconv.Itoa(card))
	b.WriteString(". Remember it.")
	return b.String()
}
