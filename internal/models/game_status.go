package models

// SessionStatus represents the current phase of a session
type SessionStatus string

const (
	StatusJoining     SessionStatus = "joining"
	StatusRoundActive SessionStatus = "round_active"
)
