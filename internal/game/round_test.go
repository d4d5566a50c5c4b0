package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

func joined(t *testing.T, names ...string) *models.GameSession {
	t.Helper()
	s := newSession()
	rng := NewRand(11)
	for _, n := range names {
		_, err := AddPlayer(s, n, rng)
		require.NoError(t, err)
	}
	return s
}

func TestStartRound_AssignsLocationSpyAndClues(t *testing.T) {
	s := joined(t, "Ann", "Bo", "Cy")
	locations := []string{"Airport", "Bank"}

	round, err := StartRound(s, locations, fullTable(locations...), NewRand(5))
	require.NoError(t, err)

	assert.Contains(t, locations, s.Location)
	assert.Equal(t, s.Location, round.Location)
	require.Len(t, round.Clues, 3)

	spies := 0
	for i, p := range s.Players {
		clue := round.Clues[i]
		assert.Equal(t, i, clue.Position)
		assert.Equal(t, p.Card, clue.Card)
		if p.Role == models.RoleSpy {
			spies++
			assert.Equal(t, round.SpyIndex, i)
			assert.Equal(t, "Spy clue", clue.Symbol)
		} else {
			assert.Equal(t, models.RoleRegular, p.Role)
			assert.Equal(t, s.Location+" clue", clue.Symbol)
		}
	}
	assert.Equal(t, 1, spies)
	assert.Equal(t, round.SpyIndex, s.SpyIndex())
	assert.Equal(t, 1, s.Round)
}

func TestStartRound_ResetsRoundState(t *testing.T) {
	s := joined(t, "Ann", "Bo")
	s.State = models.RoundState{QuestionCount: 9, AskedQuestionIndex: 4, ExpectedAnswer: 2, PlayerAskedIndex: 1}
	s.QuestionsAsked = []string{"q1", "q2"}

	_, err := StartRound(s, []string{"Beach"}, fullTable("Beach"), NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, models.RoundState{
		QuestionCount:      0,
		AskedQuestionIndex: 0,
		ExpectedAnswer:     0,
		PlayerAskedIndex:   -1,
	}, s.State)
	assert.Empty(t, s.QuestionsAsked)
}

func TestStartRound_SameSeedSameRound(t *testing.T) {
	locations := []string{"Airport", "Bank", "Beach"}
	table := fullTable(locations...)

	a := joined(t, "Ann", "Bo", "Cy", "Di")
	b := joined(t, "Ann", "Bo", "Cy", "Di")
	require.Equal(t, a.Cards(), b.Cards())

	ra, err := StartRound(a, locations, table, NewRand(99))
	require.NoError(t, err)
	rb, err := StartRound(b, locations, table, NewRand(99))
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
}

func TestStartRound_RepeatMovesSpy(t *testing.T) {
	s := joined(t, "Ann", "Bo", "Cy")
	rng := &seqRand{draws: []int{0, 0, 1, 2}}

	_, err := StartRound(s, []string{"Airport", "Bank"}, fullTable("Airport", "Bank"), rng)
	require.NoError(t, err)
	assert.Equal(t, "Airport", s.Location)
	assert.Equal(t, 0, s.SpyIndex())

	_, err = StartRound(s, []string{"Airport", "Bank"}, fullTable("Airport", "Bank"), rng)
	require.NoError(t, err)
	assert.Equal(t, "Bank", s.Location)
	assert.Equal(t, 2, s.SpyIndex())
	assert.Equal(t, 2, s.Round)
}

func TestStartRound_UnknownSymbolLeavesSessionUntouched(t *testing.T) {
	s := joined(t, "Ann", "Bo")
	table := fullTable("Airport")
	delete(table["Airport"], s.Players[1].Card)
	before := s.Clone()

	// location 0, spy 0: Bo reads from the incomplete Airport table.
	_, err := StartRound(s, []string{"Airport"}, table, stuckRand{})
	require.ErrorIs(t, err, ErrUnknownCardSymbol)

	var symErr *UnknownCardSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "Airport", symErr.Location)
	assert.Equal(t, s.Players[1].Card, symErr.Card)
	assert.Equal(t, before, s)
}

func TestStartRound_MissingLocationEntry(t *testing.T) {
	s := joined(t, "Ann", "Bo")
	_, err := StartRound(s, []string{"Casino"}, fullTable("Airport"), &seqRand{draws: []int{0, 1}})
	require.ErrorIs(t, err, ErrUnknownCardSymbol)
	assert.Empty(t, s.Location)
}

func TestStartRound_Preconditions(t *testing.T) {
	_, err := StartRound(newSession(), []string{"Airport"}, fullTable("Airport"), NewRand(1))
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = StartRound(joined(t, "Ann"), nil, fullTable(), NewRand(1))
	assert.ErrorIs(t, err, ErrNoLocations)
}
