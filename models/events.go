package models

import "time"

// GameEvent is one entry in the cross-game upcoming-events calendar.
type GameEvent struct {
	ID          string    `json:"id"`
	GameID      string    `json:"gameId"`
	GameName    string    `json:"gameName"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // wipe, season, update, event
	StartDate   time.Time `json:"startDate"`
	Confirmed   bool      `json:"confirmed"`
	Description string    `json:"description,omitempty"`
}

// EventCSVRow is the flattened shape used for the calendar CSV export.
type EventCSVRow struct {
	Game      string `csv:"game"`
	Title     string `csv:"title"`
	Type      string `csv:"type"`
	StartDate string `csv:"start_date"`
	Confirmed bool   `csv:"confirmed"`
	Details   string `csv:"details,omitempty"`
}
