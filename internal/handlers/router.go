package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"moodlog/internal/storage"
)

// NewRouter wires the mood API and falls back to static files under docRoot
// for every other method and path.
func NewRouter(st *storage.MoodStorage, docRoot string) http.Handler {
	moods := NewMoodHandler(st)
	static := NewStaticHandler(docRoot)

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(CORS) // outside Recoverer so a 500 still carries the headers
	r.Use(Recoverer)

	r.Get("/moods", moods.HandleListMoods)
	r.Post("/moods", moods.HandleCreateMood)
	r.Get("/moods/stats", moods.HandleMoodStats)

	r.NotFound(static.ServeHTTP)
	r.MethodNotAllowed(static.ServeHTTP)

	return r
}
