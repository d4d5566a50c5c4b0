package handlers

import (
	"errors"
	"net/http"

	"github.com/skip2/go-qrcode"

	"github.com/aaronzipp/voice-spyfall/internal/engine"
)

// QRSize is the edge length of the session QR image in pixels
const QRSize = 256

// HandleSessionQR renders the session id as a PNG QR code
func (ctx *Context) HandleSessionQR(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := ctx.Engine.Session(r.Context(), id); err != nil {
		if errors.Is(err, engine.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		ctx.Log.WithError(err).WithField("session_id", id).Error("loading session for qr code")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(id, qrcode.Medium, QRSize)
	if err != nil {
		ctx.Log.WithError(err).WithField("session_id", id).Error("encoding qr code")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
