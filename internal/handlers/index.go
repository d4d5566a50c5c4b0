package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// Engine is the part of the session engine the handlers drive
type Engine interface {
	CreateSession(ctx context.Context, id string) error
	AddPlayer(ctx context.Context, id, name string) (int, error)
	StartRound(ctx context.Context, id string) (string, error)
	Session(ctx context.Context, id string) (*models.GameSession, error)
	HasQuestionPhase() bool
}

// Context holds shared application dependencies
type Context struct {
	Engine Engine
	Log    logrus.FieldLogger
}

// Routes registers every endpoint on a new mux
func (ctx *Context) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /skill", ctx.HandleSkill)
	mux.HandleFunc("GET /sessions/{id}/qr.png", ctx.HandleSessionQR)
	mux.HandleFunc("GET /health", ctx.HandleHealth)
	return mux
}

// HandleHealth answers liveness probes
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
