package models

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type APIError struct {
	Error string `json:"error"`
}
