package storage

import (
	"sync"
	"time"

	"moodlog/internal/models"
)

// NoDataLabel groups entries whose label is empty when counting.
const NoDataLabel = "no data"

// MoodStorage keeps mood entries in process memory. Entries are held in
// creation order; ListAll reverses them so the newest comes first.
type MoodStorage struct {
	mu      sync.RWMutex
	entries []models.Mood
	now     func() time.Time
}

func NewMoodStorage() *MoodStorage {
	return &MoodStorage{
		entries: []models.Mood{},
		now:     time.Now,
	}
}

// Append records a new entry. The id is the store size before insertion plus
// one, not an independent counter.
func (st *MoodStorage) Append(mood, comment string) models.Mood {
	st.mu.Lock()
	defer st.mu.Unlock()

	createdAt := st.now().UTC()

	entry := models.Mood{
		ID:        len(st.entries) + 1,
		Mood:      mood,
		Comment:   comment,
		Date:      createdAt.Format(models.DateLayout),
		CreatedAt: createdAt,
	}

	st.entries = append(st.entries, entry)

	return entry
}

// ListAll returns a snapshot of every entry, most recent first.
func (st *MoodStorage) ListAll() []models.Mood {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]models.Mood, 0, len(st.entries))
	for i := len(st.entries) - 1; i >= 0; i-- {
		out = append(out, st.entries[i])
	}

	return out
}

// CountByMood groups entries by label. Labels appear in the order they are
// first seen walking from the newest entry to the oldest.
func (st *MoodStorage) CountByMood() []models.MoodCount {
	st.mu.RLock()
	defer st.mu.RUnlock()

	index := make(map[string]int)
	stats := []models.MoodCount{}

	for i := len(st.entries) - 1; i >= 0; i-- {
		key := st.entries[i].Mood
		if key == "" {
			key = NoDataLabel
		}

		if pos, ok := index[key]; ok {
			stats[pos].Count++
			continue
		}

		index[key] = len(stats)
		stats = append(stats, models.MoodCount{Mood: key, Count: 1})
	}

	return stats
}

func (st *MoodStorage) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.entries)
}
