package store

import (
	"encoding/json"
	"fmt"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

func encodeSession(s *models.GameSession) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	return data, nil
}

func decodeSession(data []byte) (*models.GameSession, error) {
	var s models.GameSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if s.Players == nil {
		s.Players = []*models.Player{}
	}
	if s.QuestionsAsked == nil {
		s.QuestionsAsked = []string{}
	}
	return &s, nil
}

// stamped returns a copy of s carrying the version and time it is about to be written with.
func stamped(s *models.GameSession, version int64, nowMs int64) *models.GameSession {
	c := s.Clone()
	c.Version = version
	c.UpdatedAt = msToTime(nowMs)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = c.UpdatedAt
	}
	return c
}
