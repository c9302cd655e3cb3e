package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"moodlog/internal/logging"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	op := "internal/handlers/respond.go respondJSON"

	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("failed to encode response")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("op", op).Msg("failed to write response")
	}
}

func respondText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
