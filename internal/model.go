package internal

import (
	"time"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/dial"
)

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// CheckIn is one completed morning check-in: the sleep dial result plus the
// gratitude, intention and mindset steps of the wizard.
type CheckIn struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Date         string         `json:"date"` // 2006-01-02
	Bedtime      dial.ClockTime `json:"bedtime"`
	WakeTime     dial.ClockTime `json:"wake_time"`
	SleepQuality int            `json:"sleep_quality"` // 1–10 scale
	Gratitude    []string       `json:"gratitude,omitempty"`
	Intention    string         `json:"intention,omitempty"`
	Mindset      string         `json:"mindset,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// SleepDuration is the forward travel from bedtime to wake time, wrapping
// across midnight.
func (c *CheckIn) SleepDuration() time.Duration {
	return dial.Duration(c.Bedtime, c.WakeTime)
}

// Note is a book-vault entry.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contact is a dating-tracker entry.
type Contact struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	MetAt     string     `json:"met_at,omitempty"` // where they met
	Status    string     `json:"status"`           // interested, dating, paused, ended
	LastSeen  *time.Time `json:"last_seen,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
