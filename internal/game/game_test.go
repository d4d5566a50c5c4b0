package game

import (
	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// stuckRand always returns the same draw.
type stuckRand struct{ n int }

func (r stuckRand) IntN(n int) int { return r.n % n }

// seqRand replays fixed draws in order.
type seqRand struct {
	draws []int
	i     int
}

func (r *seqRand) IntN(n int) int {
	v := r.draws[r.i%len(r.draws)] % n
	r.i++
	return v
}

func newSession() *models.GameSession {
	return models.NewGameSession("s-1", testTime)
}

func fullTable(locations ...string) models.CardSymbolTable {
	table := models.CardSymbolTable{}
	for _, loc := range append([]string{models.SpyLocation}, locations...) {
		table[loc] = map[int]string{}
		for card := MinCard; card <= MaxCard; card++ {
			table[loc][card] = loc + " clue"
		}
	}
	return table
}
