package models

import (
	"time"
)

// DateLayout matches the ISO-8601 shape browsers produce with toISOString.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type Mood struct {
	ID        int       `json:"id"`
	Mood      string    `json:"mood"`
	Comment   string    `json:"comment"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"-"`
}

// MoodInput is the accepted body of POST /moods.
type MoodInput struct {
	Mood    string `json:"mood" validate:"required"`
	Comment string `json:"comment"`
}
