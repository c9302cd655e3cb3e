package handlers

import (
	"errors"
	"io"
	"net/http"

	"moodlog/internal/logging"
	"moodlog/internal/models"
	"moodlog/internal/storage"
	"moodlog/internal/usecases"
)

// maxBodyBytes caps a POST /moods body. Larger bodies are rejected as
// invalid JSON.
const maxBodyBytes = 1 << 20

const (
	msgMissingMood = "Missing 'mood'"
	msgInvalidJSON = "Invalid JSON"
)

type MoodHandler struct {
	storage *storage.MoodStorage
}

func NewMoodHandler(s *storage.MoodStorage) *MoodHandler {
	return &MoodHandler{storage: s}
}

// GET /moods
func (mh *MoodHandler) HandleListMoods(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, mh.storage.ListAll())
}

// POST /moods
func (mh *MoodHandler) HandleCreateMood(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/moods.go HandleCreateMood"

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("op", op).Msg("could not read body")
		respondJSON(w, r, http.StatusBadRequest, models.APIError{Error: msgInvalidJSON})
		return
	}

	input, err := usecases.ParseMoodInput(body)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("op", op).Msg("rejected mood")

		msg := msgInvalidJSON
		if errors.Is(err, usecases.ErrMissingMood) {
			msg = msgMissingMood
		}
		respondJSON(w, r, http.StatusBadRequest, models.APIError{Error: msg})
		return
	}

	entry := mh.storage.Append(input.Mood, input.Comment)

	logging.Ctx(r.Context()).Info().
		Int("id", entry.ID).
		Str("mood", entry.Mood).
		Msg("mood recorded")

	respondJSON(w, r, http.StatusCreated, entry)
}

// GET /moods/stats
func (mh *MoodHandler) HandleMoodStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, mh.storage.CountByMood())
}
