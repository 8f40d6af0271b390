// Package dates finds calendar dates inside scraped announcement text.
//
// Sources rarely agree on a format: "December 3, 2025", "Dec 3rd", "3 December",
// "2025-12-03", "in 45 days" all show up in the wild. Matches are evaluated in
// the order they appear in the text and the first plausible future date wins.
package dates

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Options carries the per-game knobs for date construction.
type Options struct {
	// HourUTC is the publisher's known release hour; extracted dates are
	// pinned to it (e.g. Rust wipes at 19:00 UTC, Valorant acts at 21:00).
	HourUTC int
	// Now is the reference clock. Only dates strictly after Now are candidates.
	Now time.Time
}

var monthIndex = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

var (
	monthDayRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s*(\d{4})\b)?`)
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\b(?:,?\s*(\d{4})\b)?`)
	isoRe      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	relativeRe = regexp.MustCompile(`(?i)\bin\s+(\d{1,3})\s+days?\b`)
)

type candidate struct {
	offset int
	date   time.Time
}

// FirstFuture returns the first date mentioned in the text that lies strictly
// in the future. A date with no explicit year defaults to the current year;
// if that puts it in the past it is skipped rather than rolled into next
// year, and scanning continues to a later mention in the text.
func FirstFuture(text string, opts Options) (time.Time, bool) {
	cands := scan(text, opts)
	for _, c := range cands {
		if c.date.After(opts.Now) {
			return c.date, true
		}
	}
	return time.Time{}, false
}

// AllFuture returns every future date mentioned in the text, earliest first.
// Used by sources that list many dates (wiki season tables, news feeds).
func AllFuture(text string, opts Options) []time.Time {
	var out []time.Time
	for _, c := range scan(text, opts) {
		if c.date.After(opts.Now) {
			out = append(out, c.date)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// scan collects candidates from every pattern, ordered by position in the text.
func scan(text string, opts Options) []candidate {
	var cands []candidate

	for _, m := range monthDayRe.FindAllStringSubmatchIndex(text, -1) {
		month, ok := monthIndex[strings.ToLower(slice(text, m, 1))]
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(slice(text, m, 2))
		if d, ok := build(opts, yearOrCurrent(text, m, 3, opts), month, day); ok {
			cands = append(cands, candidate{m[0], d})
		}
	}

	for _, m := range dayMonthRe.FindAllStringSubmatchIndex(text, -1) {
		month, ok := monthIndex[strings.ToLower(slice(text, m, 2))]
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(slice(text, m, 1))
		if d, ok := build(opts, yearOrCurrent(text, m, 3, opts), month, day); ok {
			cands = append(cands, candidate{m[0], d})
		}
	}

	for _, m := range isoRe.FindAllStringSubmatchIndex(text, -1) {
		year, _ := strconv.Atoi(slice(text, m, 1))
		monthNum, _ := strconv.Atoi(slice(text, m, 2))
		day, _ := strconv.Atoi(slice(text, m, 3))
		if monthNum < 1 || monthNum > 12 {
			continue
		}
		if d, ok := build(opts, year, time.Month(monthNum), day); ok {
			cands = append(cands, candidate{m[0], d})
		}
	}

	for _, m := range relativeRe.FindAllStringSubmatchIndex(text, -1) {
		days, _ := strconv.Atoi(slice(text, m, 1))
		if days < 1 || days > 365 {
			continue
		}
		cands = append(cands, candidate{m[0], opts.Now.AddDate(0, 0, days)})
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].offset < cands[j].offset })
	return cands
}

func build(opts Options, year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, month, day, opts.HourUTC, 0, 0, 0, time.UTC), true
}

func yearOrCurrent(text string, m []int, group int, opts Options) int {
	if s := slice(text, m, group); s != "" {
		y, _ := strconv.Atoi(s)
		return y
	}
	return opts.Now.Year()
}

func slice(text string, m []int, group int) string {
	if m[2*group] < 0 {
		return ""
	}
	return text[m[2*group]:m[2*group+1]]
}
