package makerspace

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
}

func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	}
	return ""
}

// Workshop is one scheduled session. The schedule is a static snapshot:
// Past is set in the seed data, not derived from the clock.
type Workshop struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    Location
	Instructor  string
	Difficulty  Difficulty
	Category    string
	SpotsTotal  int
	SpotsFilled int
	// TrackID marks the session as the in-person step of that track.
	TrackID string
	Past    bool
}

func (w Workshop) SpotsLeft() int { return w.SpotsTotal - w.SpotsFilled }

func (w Workshop) Full() bool { return w.SpotsLeft() == 0 }

func (w Workshop) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: workshop id is required", ErrInvalidConfiguration)
	}
	if strings.TrimSpace(w.Title) == "" {
		return fmt.Errorf("%w: workshop %q: title is required", ErrInvalidConfiguration, w.ID)
	}
	if w.Date.IsZero() {
		return fmt.Errorf("%w: workshop %q: date is required", ErrInvalidConfiguration, w.ID)
	}
	if _, err := ParseLocation(string(w.Location)); err != nil {
		return fmt.Errorf("workshop %q: %w", w.ID, err)
	}
	if _, err := ParseDifficulty(string(w.Difficulty)); err != nil {
		return fmt.Errorf("workshop %q: %w", w.ID, err)
	}
	if w.SpotsTotal <= 0 || w.SpotsFilled < 0 || w.SpotsFilled > w.SpotsTotal {
		return fmt.Errorf("%w: workshop %q: %d of %d spots filled", ErrInvalidConfiguration, w.ID, w.SpotsFilled, w.SpotsTotal)
	}
	return nil
}

// WorkshopFilter holds optional constraints; zero values match everything.
type WorkshopFilter struct {
	Past    *bool
	TrackID string
}
