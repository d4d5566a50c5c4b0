package models

import "time"

// GameSession is the persisted record of one game, keyed by ID.
type GameSession struct {
	ID             string     `json:"id"`
	Players        []*Player  `json:"players"`
	Location       string     `json:"location,omitempty"`
	QuestionsAsked []string   `json:"questionsAsked"`
	Round          int        `json:"round"`
	State          RoundState `json:"state"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewGameSession returns an empty session with no players and no location.
func NewGameSession(id string, now time.Time) *GameSession {
	return &GameSession{
		ID:             id,
		Players:        []*Player{},
		QuestionsAsked: []string{},
		State:          BaselineRoundState(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Cards returns the dealt card ids in join order.
func (s *GameSession) Cards() []int {
	cards := make([]int, len(s.Players))
	for i, p := range s.Players {
		cards[i] = p.Card
	}
	return cards
}

// HasCard reports whether card has already been dealt in this session.
func (s *GameSession) HasCard(card int) bool {
	for _, p := range s.Players {
		if p.Card == card {
			return true
		}
	}
	return false
}

// FindPlayer returns the index of the player with the given name, or -1.
func (s *GameSession) FindPlayer(name string) int {
	key := NormalizeName(name)
	for i, p := range s.Players {
		if NormalizeName(p.Name) == key {
			return i
		}
	}
	return -1
}

// SpyIndex returns the position holding the spy role, or -1 before the first round.
func (s *GameSession) SpyIndex() int {
	for i, p := range s.Players {
		if p.Role == RoleSpy {
			return i
		}
	}
	return -1
}

// Status derives the lifecycle phase from the record.
func (s *GameSession) Status() SessionStatus {
	if s.Round == 0 || s.Location == "" {
		return StatusJoining
	}
	return StatusRoundActive
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		pc := *p
		c.Players[i] = &pc
	}
	c.QuestionsAsked = append([]string{}, s.QuestionsAsked...)
	return &c
}
