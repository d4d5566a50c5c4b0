package game

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePlayer   = errors.New("player already joined")
	ErrInvalidPlayerName = errors.New("player name is empty")
	ErrDomainExhausted   = errors.New("no cards left to deal")
	ErrNoPlayers         = errors.New("no players have joined")
	ErrNoLocations       = errors.New("location index is empty")
	ErrUnknownCardSymbol = errors.New("unknown card symbol")
)

// UnknownCardSymbolError reports a symbol table that does not cover a dealt card.
type UnknownCardSymbolError struct {
	Location string
	Card     int
}

func (e *UnknownCardSymbolError) Error() string {
	return fmt.Sprintf("unknown card symbol: location=%q card=%d", e.Location, e.Card)
}

func (e *UnknownCardSymbolError) Is(target error) bool { return target == ErrUnknownCardSymbol }
