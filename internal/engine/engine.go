// Package engine runs game sessions against a session repository and a
// location reference. It is the only entry point the request layer uses.
package engine

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/models"
	"github.com/aaronzipp/voice-spyfall/internal/render"
	"github.com/aaronzipp/voice-spyfall/internal/store"
)

// DefaultWriteRetries is how many times a read-modify-write is redone after a version conflict.
const DefaultWriteRetries = 3

// SessionRepository stores one GameSession per id. Upsert must reject a write
// whose Version is not the stored one with store.ErrVersionConflict.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.GameSession, error)
	Insert(ctx context.Context, session *models.GameSession) error
	Upsert(ctx context.Context, session *models.GameSession) error
}

// LocationReference supplies the read-only location data.
type LocationReference interface {
	LocationIndex(ctx context.Context) ([]string, error)
	CardSymbolTable(ctx context.Context) (models.CardSymbolTable, error)
}

// QuestionPhase is notified once a round has been persisted.
type QuestionPhase interface {
	RoundStarted(ctx context.Context, session *models.GameSession) error
}

// Engine is safe for concurrent use.
type Engine struct {
	sessions  SessionRepository
	reference LocationReference
	rng       game.Rand
	log       logrus.FieldLogger
	locks     *sessionLocks
	retries   int
	questions QuestionPhase
	now       func() time.Time
}

type Option func(*Engine)

// WithRand replaces the process-wide entropy source, typically with game.NewRand(seed) in tests.
func WithRand(rng game.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

func WithWriteRetries(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.retries = n
		}
	}
}

func WithQuestionPhase(q QuestionPhase) Option {
	return func(e *Engine) { e.questions = q }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(sessions SessionRepository, reference LocationReference, opts ...Option) *Engine {
	e := &Engine{
		sessions:  sessions,
		reference: reference,
		locks:     newSessionLocks(),
		retries:   DefaultWriteRetries,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = game.NewEntropyRand()
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = l
	}
	return e
}

// CreateSession stores a new empty session under id.
func (e *Engine) CreateSession(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	log := e.log.WithFields(logrus.Fields{"op": "create_session", "session_id": id})

	err := e.sessions.Insert(ctx, models.NewGameSession(id, e.now().UTC()))
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyExists
	case err != nil:
		return e.repositoryFailure(log, "create_session", id, err)
	}
	log.Info("session created")
	return nil
}

// AddPlayer deals name a card in session id and returns it.
func (e *Engine) AddPlayer(ctx context.Context, id, name string) (int, error) {
	log := e.log.WithFields(logrus.Fields{"op": "add_player", "session_id": id, "player": name})

	var card, count int
	err := e.update(ctx, log, "add_player", id, func(s *models.GameSession) error {
		c, err := game.AddPlayer(s, name, e.rng)
		if err != nil {
			return err
		}
		card, count = c, len(s.Players)
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.WithField("players", count).Info("player joined")
	return card, nil
}

// StartRound starts a new round in session id and returns the clue narration.
func (e *Engine) StartRound(ctx context.Context, id string) (string, error) {
	log := e.log.WithFields(logrus.Fields{"op": "start_round", "session_id": id})

	locations, err := e.reference.LocationIndex(ctx)
	if err != nil {
		return "", e.repositoryFailure(log, "location_index", id, err)
	}
	table, err := e.reference.CardSymbolTable(ctx)
	if err != nil {
		return "", e.repositoryFailure(log, "card_symbol_table", id, err)
	}

	var (
		round   *game.Round
		session *models.GameSession
	)
	err = e.update(ctx, log, "start_round", id, func(s *models.GameSession) error {
		r, err := game.StartRound(s, locations, table, e.rng)
		if err != nil {
			return err
		}
		round, session = r, s
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUnknownCardSymbol) {
			log.WithError(err).Error("reference data does not cover a dealt card")
		}
		return "", err
	}

	log.WithFields(logrus.Fields{"round": round.Number, "players": len(round.Clues)}).Info("round started")
	log.WithField("location", round.Location).Debug("location drawn")

	if e.questions != nil {
		if err := e.questions.RoundStarted(ctx, session); err != nil {
			log.WithError(err).Warn("question phase failed to start")
		}
	}
	return render.Narration(round.Clues), nil
}

// Session returns the stored session.
func (e *Engine) Session(ctx context.Context, id string) (*models.GameSession, error) {
	s, err := e.sessions.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrSessionNotFound
	case err != nil:
		return nil, e.repositoryFailure(e.log.WithField("session_id", id), "get_session", id, err)
	}
	return s, nil
}

// HasQuestionPhase reports whether a question phase is wired in.
func (e *Engine) HasQuestionPhase() bool { return e.questions != nil }

// update runs a read-modify-write of one session. Writers inside this process
// queue on the session lock; writers elsewhere are caught by the version check
// and the whole cycle is redone.
func (e *Engine) update(ctx context.Context, log logrus.FieldLogger, op, id string, mutate func(*models.GameSession) error) error {
	unlock := e.locks.Lock(id)
	defer unlock()

	for attempt := 0; attempt <= e.retries; attempt++ {
		s, err := e.sessions.Get(ctx, id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrSessionNotFound
		case err != nil:
			return e.repositoryFailure(log, op, id, err)
		}

		if err := mutate(s); err != nil {
			return err
		}

		err = e.sessions.Upsert(ctx, s)
		if errors.Is(err, store.ErrVersionConflict) {
			log.WithField("attempt", attempt+1).Debug("version conflict, retrying")
			continue
		}
		if err != nil {
			return e.repositoryFailure(log, op, id, err)
		}
		return nil
	}
	log.Warn("gave up after repeated version conflicts")
	return ErrConflict
}

func (e *Engine) repositoryFailure(log logrus.FieldLogger, op, id string, err error) error {
	log.WithError(err).Error("repository call failed")
	return &RepositoryError{Op: op, SessionID: id, Err: err}
}
