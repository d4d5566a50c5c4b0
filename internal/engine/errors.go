package engine

import (
	"errors"
	"fmt"

	"github.com/aaronzipp/voice-spyfall/internal/game"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrAlreadyExists     = errors.New("session already exists")
	ErrInvalidSessionID  = errors.New("session id is empty")
	ErrRepositoryFailure = errors.New("repository failure")
	ErrConflict          = errors.New("session changed too often during the update")

	ErrDuplicatePlayer   = game.ErrDuplicatePlayer
	ErrInvalidPlayerName = game.ErrInvalidPlayerName
	ErrDomainExhausted   = game.ErrDomainExhausted
	ErrNoPlayers         = game.ErrNoPlayers
	ErrNoLocations       = game.ErrNoLocations
	ErrUnknownCardSymbol = game.ErrUnknownCardSymbol
)

// RepositoryError wraps a failure reported by a storage collaborator.
type RepositoryError struct {
	Op        string
	SessionID string
	Err       error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s %s: repository failure: %v", e.Op, e.SessionID, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func (e *RepositoryError) Is(target error) bool { return target == ErrRepositoryFailure }

// Kind names an error category for callers that branch on it.
type Kind string

const (
	KindNone              Kind = ""
	KindSessionNotFound   Kind = "SessionNotFound"
	KindAlreadyExists     Kind = "AlreadyExists"
	KindInvalidSessionID  Kind = "InvalidSessionID"
	KindDuplicatePlayer   Kind = "DuplicatePlayer"
	KindInvalidPlayerName Kind = "InvalidPlayerName"
	KindDomainExhausted   Kind = "DomainExhausted"
	KindNoPlayers         Kind = "NoPlayers"
	KindNoLocations       Kind = "NoLocations"
	KindUnknownCardSymbol Kind = "UnknownCardSymbol"
	KindConflict          Kind = "Conflict"
	KindRepositoryFailure Kind = "RepositoryFailure"
	KindUnknown           Kind = "Unknown"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrSessionNotFound, KindSessionNotFound},
	{ErrAlreadyExists, KindAlreadyExists},
	{ErrInvalidSessionID, KindInvalidSessionID},
	{ErrDuplicatePlayer, KindDuplicatePlayer},
	{ErrInvalidPlayerName, KindInvalidPlayerName},
	{ErrDomainExhausted, KindDomainExhausted},
	{ErrNoPlayers, KindNoPlayers},
	{ErrNoLocations, KindNoLocations},
	{ErrUnknownCardSymbol, KindUnknownCardSymbol},
	{ErrConflict, KindConflict},
	{ErrRepositoryFailure, KindRepositoryFailure},
}

// KindOf classifies err. Unclassified errors report KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
