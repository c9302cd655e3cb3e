package usecases

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"moodlog/internal/models"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON body")
	ErrMissingMood = errors.New("missing mood")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ParseMoodInput decodes a fully collected POST /moods body. An empty body
// counts as an empty object. Anything that is not a JSON object, or carries a
// field of the wrong type, is ErrInvalidJSON; an absent or empty mood is
// ErrMissingMood.
func ParseMoodInput(body []byte) (models.MoodInput, error) {
	op := "internal/usecases/parsing.go ParseMoodInput"

	var input models.MoodInput

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}

	if trimmed[0] != '{' {
		return models.MoodInput{}, fmt.Errorf("%s: body is not an object: %w", op, ErrInvalidJSON)
	}

	// Keys match exactly; struct decoding would also accept "Mood" or "MOOD".
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return models.MoodInput{}, fmt.Errorf("%s: %v: %w", op, err, ErrInvalidJSON)
	}

	if raw, ok := fields["mood"]; ok {
		if err := json.Unmarshal(raw, &input.Mood); err != nil {
			return models.MoodInput{}, fmt.Errorf("%s: mood: %v: %w", op, err, ErrInvalidJSON)
		}
	}
	if raw, ok := fields["comment"]; ok {
		if err := json.Unmarshal(raw, &input.Comment); err != nil {
			return models.MoodInput{}, fmt.Errorf("%s: comment: %v: %w", op, err, ErrInvalidJSON)
		}
	}

	if err := getValidator().Struct(input); err != nil {
		return models.MoodInput{}, fmt.Errorf("%s: %v: %w", op, err, ErrMissingMood)
	}

	return input, nil
}
