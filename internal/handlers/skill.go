package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/voice-spyfall/internal/engine"
	"github.com/aaronzipp/voice-spyfall/internal/models"
	"github.com/aaronzipp/voice-spyfall/internal/render"
)

const maxSkillBody = 64 << 10

// SkillRequest is a voice request whose intent has already been resolved
type SkillRequest struct {
	SessionID   string            `json:"sessionId"`
	RequestType string            `json:"requestType"`
	Intent      string            `json:"intent,omitempty"`
	Slots       map[string]string `json:"slots,omitempty"`
}

// SkillResponse is what the voice platform speaks back
type SkillResponse struct {
	SessionID        string      `json:"sessionId"`
	Speech           string      `json:"speech"`
	Reprompt         string      `json:"reprompt,omitempty"`
	ShouldEndSession bool        `json:"shouldEndSession"`
	Card             int         `json:"card,omitempty"`
	ErrorKind        engine.Kind `json:"errorKind,omitempty"`
}

func ask(speech, reprompt string) SkillResponse {
	return SkillResponse{Speech: speech, Reprompt: reprompt}
}

func tell(speech string) SkillResponse {
	return SkillResponse{Speech: speech, ShouldEndSession: true}
}

// HandleSkill dispatches one voice request
func (ctx *Context) HandleSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSkillBody)).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	log := ctx.Log.WithFields(logrus.Fields{
		"session_id":   req.SessionID,
		"request_type": req.RequestType,
		"intent":       req.Intent,
	})

	var resp SkillResponse
	switch req.RequestType {
	case RequestLaunch:
		log.Info("session started")
		resp = ask(MsgWelcome, MsgWelcomeReprompt)
	case RequestIntent:
		resp = ctx.handleIntent(r, log, req)
	case RequestSessionEnded:
		log.Info("session ended")
		resp = SkillResponse{ShouldEndSession: true}
	default:
		http.Error(w, "Unknown request type", http.StatusBadRequest)
		return
	}

	resp.SessionID = req.SessionID
	writeJSON(w, http.StatusOK, resp)
}

func (ctx *Context) handleIntent(r *http.Request, log logrus.FieldLogger, req SkillRequest) SkillResponse {
	switch req.Intent {
	case IntentCancel:
		return tell(MsgCancel)
	case IntentStop:
		return tell(MsgStop)
	case IntentHelp:
		return ask(MsgHelp, MsgHelp)
	case IntentStartGame:
		err := ctx.Engine.CreateSession(r.Context(), req.SessionID)
		if errors.Is(err, engine.ErrAlreadyExists) {
			session, err := ctx.Engine.Session(r.Context(), req.SessionID)
			if err != nil {
				return failure(log, err)
			}
			return ask(MsgAlreadyStarted+" "+render.PlayerList(session.Players), MsgAddAnother)
		}
		if err != nil {
			return failure(log, err)
		}
		return ask(MsgStartGame, MsgAddAnother)
	case IntentAddPlayer:
		name := strings.TrimSpace(req.Slots[SlotName])
		card, err := ctx.Engine.AddPlayer(r.Context(), req.SessionID, name)
		if err != nil {
			return failure(log, err)
		}
		resp := ask(render.JoinConfirmation(name, card)+" "+MsgAddAnother, MsgAddAnother)
		resp.Card = card
		return resp
	case IntentPlayGame:
		narration, err := ctx.Engine.StartRound(r.Context(), req.SessionID)
		if err != nil {
			return failure(log, err)
		}
		return ask(narration, MsgRoundReprompt)
	case IntentStartQuestions:
		return ctx.startQuestions(r, log, req)
	default:
		return ask(MsgFallback, MsgFallback)
	}
}

func (ctx *Context) startQuestions(r *http.Request, log logrus.FieldLogger, req SkillRequest) SkillResponse {
	if !ctx.Engine.HasQuestionPhase() {
		return ask(MsgQuestionsPending, MsgRoundReprompt)
	}
	session, err := ctx.Engine.Session(r.Context(), req.SessionID)
	if err != nil {
		return failure(log, err)
	}
	if session.Status() != models.StatusRoundActive {
		return ask(MsgRoundReprompt, MsgRoundReprompt)
	}
	return ask(MsgQuestionsStarted, MsgRoundReprompt)
}

// failure turns an engine error into an apology. The session is kept open so
// the table can retry.
func failure(log logrus.FieldLogger, err error) SkillResponse {
	kind := engine.KindOf(err)
	var speech string
	switch kind {
	case engine.KindSessionNotFound, engine.KindInvalidSessionID:
		speech = MsgNoSession
	case engine.KindDuplicatePlayer:
		speech = MsgDuplicatePlayer
	case engine.KindInvalidPlayerName:
		speech = MsgInvalidName
	case engine.KindDomainExhausted:
		speech = MsgTableFull
	case engine.KindNoPlayers:
		speech = MsgNoPlayers
	case engine.KindConflict:
		speech = MsgBusy
	default:
		log.WithError(err).WithField("error_kind", kind).Error("request failed")
		speech = MsgError
	}
	resp := ask(speech, speech)
	resp.ErrorKind = kind
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
