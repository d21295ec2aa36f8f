package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the per-day mood label. Values are lowercase on the wire.
type Mood string

const (
	MoodGood    Mood = "good"
	MoodAverage Mood = "average"
	MoodBad     Mood = "bad"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodGood, MoodAverage, MoodBad:
		return true
	}
	return false
}

// MoodEntry tags one calendar day with a mood. At most one entry exists per
// (user, day); writing again overwrites. There is no delete path.
type MoodEntry struct {
	UserID    uuid.UUID
	EntryDate string
	Mood      Mood
	UpdatedAt time.Time
}

// ParseDay validates a calendar-day string ("YYYY-MM-DD").
func ParseDay(s string) (string, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return "", NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t.Format(DayFormat), nil
}
