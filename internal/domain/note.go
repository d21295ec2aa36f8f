package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-day layout used for note entry dates and mood keys.
const DayFormat = "2006-01-02"

// Note is a single journal entry. Ownership is by UserID: every query is
// scoped to the owning user and a note is never visible across accounts.
//
// CreatedAt is server-assigned at insert time and is the sole sort key for
// display order. EntryDate is the logical calendar day ("YYYY-MM-DD") the
// entry belongs to, computed at write time; it never changes on edit.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Text      string
	EntryDate string
	CreatedAt time.Time
}

// Day returns t formatted as a calendar-day string in UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}
