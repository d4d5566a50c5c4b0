package models

import "strings"

// Role is the part a player has in the current round
type Role string

const (
	RoleRegular Role = "regular"
	RoleSpy     Role = "spy"
)

// Player represents a joined player and the card dealt to them
type Player struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Card  int     `json:"card"`
	Role  Role    `json:"role"`
}

// NormalizeName folds a spoken name into the form used for uniqueness checks.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
