package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

var segmentPattern = regexp.MustCompile(`Card (\d+)\. ([^.]+)\.`)

func TestNarration_OneSegmentPerClueInOrder(t *testing.T) {
	clues := []game.Clue{
		{Position: 0, Card: 12, Symbol: "Passport"},
		{Position: 1, Card: 3, Symbol: "Shadow"},
		{Position: 2, Card: 27, Symbol: "Runway"},
	}

	text := Narration(clues)
	require.True(t, strings.HasPrefix(text, NarrationLeadIn))

	matches := segmentPattern.FindAllStringSubmatch(text, -1)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"Card 12. Passport.", "12", "Passport"}, matches[0])
	assert.Equal(t, []string{"Card 3. Shadow.", "3", "Shadow"}, matches[1])
	assert.Equal(t, []string{"Card 27. Runway.", "27", "Runway"}, matches[2])

	assert.Equal(t, NarrationLeadIn+" Card 12. Passport. Card 3. Shadow. Card 27. Runway.", text)
}

func TestNarration_SpySegmentMatchesTemplate(t *testing.T) {
	// Position 1 holds a spy symbol; the text must not tell it apart.
	clues := []game.Clue{
		{Card: 1, Symbol: "Boarding pass"},
		{Card: 2, Symbol: "Umbrella"},
		{Card: 3, Symbol: "Duty free"},
	}
	text := strings.TrimPrefix(Narration(clues), NarrationLeadIn+" ")

	rebuilt := make([]string, 0, len(clues))
	for _, c := range clues {
		seg := ClueSegment(c.Card, c.Symbol)
		assert.Regexp(t, `^`+segmentPattern.String()+`$`, seg)
		rebuilt = append(rebuilt, seg)
	}
	assert.Equal(t, strings.Join(rebuilt, " "), text)
}

func TestClueSegment_NormalizesPunctuation(t *testing.T) {
	assert.Equal(t, "Card 4. Control tower.", ClueSegment(4, "Control tower."))
	assert.Equal(t, "Card 4. Control tower.", ClueSegment(4, " Control tower!  "))
}

func TestNarration_NoClues(t *testing.T) {
	assert.Equal(t, NarrationLeadIn, Narration(nil))
}

func TestPlayerList(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, "Nobody has joined yet."},
		{[]string{"Ann"}, "One player has joined: Ann."},
		{[]string{"Ann", "Bo"}, "2 players have joined: Ann and Bo."},
		{[]string{"Ann", "Bo", "Cy"}, "3 players have joined: Ann, Bo and Cy."},
	}
	for _, tt := range tests {
		players := make([]*models.Player, len(tt.names))
		for i, n := range tt.names {
			players[i] = &models.Player{Name: n}
		}
		assert.Equal(t, tt.want, PlayerList(players))
	}
}

func TestJoinConfirmation(t *testing.T) {
	assert.Equal(t, "Welcome Ann, you have card 7. Remember it.", JoinConfirmation("Ann", 7))
}
