package scrapers

import "time"

// GameSpec is the table-driven configuration for one tracked game: its
// publisher's known release hour, typical cycle length and the plausibility
// window a scraped date must land in to be believed.
type GameSpec struct {
	ID         string
	Name       string
	CacheLabel string

	// ReleaseHourUTC models the publisher's usual release hour; extracted
	// dates carry it so countdowns point at the real moment, not midnight.
	ReleaseHourUTC int

	// CycleDays is the typical gap between resets, used to synthesize
	// lastWipe and to project estimates when no source confirms a date.
	CycleDays int

	// Plausibility window: a scraped date closer than MinNoticeDays or
	// further than MaxNoticeDays is rejected and the next source is tried.
	MinNoticeDays int
	MaxNoticeDays int

	Frequency        string
	DefaultEventType string
	// EventTitle is what the cross-game calendar calls this game's reset.
	EventTitle string
}

// Plausible reports whether a candidate date falls inside the game's window.
func (s GameSpec) Plausible(date, now time.Time) bool {
	days := date.Sub(now).Hours() / 24
	return days >= float64(s.MinNoticeDays) && days <= float64(s.MaxNoticeDays)
}

// Cycle returns the cycle length as a duration.
func (s GameSpec) Cycle() time.Duration {
	return time.Duration(s.CycleDays) * 24 * time.Hour
}

// Specs lists every tracked game. Hours and cycle lengths reflect each
// publisher's observed release habits.
var Specs = []GameSpec{
	{ID: "rust", Name: "Rust", CacheLabel: "wipe", ReleaseHourUTC: 19, CycleDays: 30, MinNoticeDays: 0, MaxNoticeDays: 45,
		Frequency: "Monthly (First Thursday at 7PM UTC)", DefaultEventType: "update", EventTitle: "Force Wipe"},
	{ID: "tarkov", Name: "Escape from Tarkov", CacheLabel: "wipe", ReleaseHourUTC: 12, CycleDays: 180, MinNoticeDays: 1, MaxNoticeDays: 240,
		Frequency: "Every 6 months (approx)", DefaultEventType: "update", EventTitle: "Wipe"},
	{ID: "poe", Name: "Path of Exile", CacheLabel: "league", ReleaseHourUTC: 19, CycleDays: 90, MinNoticeDays: 1, MaxNoticeDays: 120,
		Frequency: "Every 3 months (13 weeks)", DefaultEventType: "league", EventTitle: "New League"},
	{ID: "poe2", Name: "Path of Exile 2", CacheLabel: "league", ReleaseHourUTC: 19, CycleDays: 90, MinNoticeDays: 1, MaxNoticeDays: 120,
		Frequency: "Every ~3 months", DefaultEventType: "league", EventTitle: "New League"},
	{ID: "fortnite", Name: "Fortnite", CacheLabel: "season", ReleaseHourUTC: 13, CycleDays: 70, MinNoticeDays: 0, MaxNoticeDays: 120,
		Frequency: "Seasonal (60-90 days)", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "diablo4", Name: "Diablo 4", CacheLabel: "season", ReleaseHourUTC: 18, CycleDays: 90, MinNoticeDays: 3, MaxNoticeDays: 120,
		Frequency: "Every 3 months (Seasonal)", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "lastepoch", Name: "Last Epoch", CacheLabel: "cycle", ReleaseHourUTC: 17, CycleDays: 120, MinNoticeDays: 3, MaxNoticeDays: 150,
		Frequency: "Every 3-4 months (Cycles)", DefaultEventType: "league", EventTitle: "New Cycle"},
	{ID: "valorant", Name: "Valorant", CacheLabel: "act", ReleaseHourUTC: 21, CycleDays: 60, MinNoticeDays: 3, MaxNoticeDays: 90,
		Frequency: "Every ~2 months (6 acts per year)", DefaultEventType: "season", EventTitle: "New Act"},
	{ID: "lol", Name: "League of Legends", CacheLabel: "split", ReleaseHourUTC: 19, CycleDays: 120, MinNoticeDays: 3, MaxNoticeDays: 150,
		Frequency: "Every ~4 months (3 splits per year)", DefaultEventType: "season", EventTitle: "New Split"},
	{ID: "tft", Name: "Teamfight Tactics", CacheLabel: "set", ReleaseHourUTC: 18, CycleDays: 120, MinNoticeDays: 3, MaxNoticeDays: 150,
		Frequency: "Every ~4 months", DefaultEventType: "season", EventTitle: "New Set"},
	{ID: "apex", Name: "Apex Legends", CacheLabel: "season", ReleaseHourUTC: 17, CycleDays: 90, MinNoticeDays: 3, MaxNoticeDays: 120,
		Frequency: "Every ~3 months (90 days)", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "cod", Name: "Call of Duty Warzone", CacheLabel: "season", ReleaseHourUTC: 16, CycleDays: 65, MinNoticeDays: 3, MaxNoticeDays: 90,
		Frequency: "Every ~2 months (60-70 days)", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "rocketleague", Name: "Rocket League", CacheLabel: "season", ReleaseHourUTC: 17, CycleDays: 105, MinNoticeDays: 3, MaxNoticeDays: 130,
		Frequency: "Every ~3-4 months", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "dbd", Name: "Dead by Daylight", CacheLabel: "chapter", ReleaseHourUTC: 16, CycleDays: 90, MinNoticeDays: 3, MaxNoticeDays: 120,
		Frequency: "Every 3 months", DefaultEventType: "season", EventTitle: "New Chapter"},
	{ID: "pubg", Name: "PUBG: Battlegrounds", CacheLabel: "season", ReleaseHourUTC: 14, CycleDays: 60, MinNoticeDays: 3, MaxNoticeDays: 90,
		Frequency: "Every ~2-3 months", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "overwatch2", Name: "Overwatch 2", CacheLabel: "season", ReleaseHourUTC: 18, CycleDays: 63, MinNoticeDays: 0, MaxNoticeDays: 90,
		Frequency: "Every ~9 weeks", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "destiny2", Name: "Destiny 2", CacheLabel: "season", ReleaseHourUTC: 17, CycleDays: 90, MinNoticeDays: 0, MaxNoticeDays: 120,
		Frequency: "Every ~3 months", DefaultEventType: "season", EventTitle: "New Episode"},
	{ID: "r6siege", Name: "Rainbow Six Siege", CacheLabel: "season", ReleaseHourUTC: 14, CycleDays: 90, MinNoticeDays: 0, MaxNoticeDays: 120,
		Frequency: "Every ~3 months (4 seasons per year)", DefaultEventType: "season", EventTitle: "New Season"},
	{ID: "warframe", Name: "Warframe", CacheLabel: "update", ReleaseHourUTC: 18, CycleDays: 90, MinNoticeDays: 0, MaxNoticeDays: 180,
		Frequency: "Major updates 2-4 times per year", DefaultEventType: "update", EventTitle: "Major Update"},
}

// SpecByID returns the spec for a game ID.
func SpecByID(id string) (GameSpec, bool) {
	for _, s := range Specs {
		if s.ID == id {
			return s, true
		}
	}
	return GameSpec{}, false
}
