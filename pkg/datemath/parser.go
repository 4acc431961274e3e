// Package datemath resolves relative date phrases ("tomorrow", "next friday",
// "in 3 days") into absolute times. The AI task parser uses it so the LLM can
// return human phrasing instead of guessing at timestamps.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts relative date strings to absolute time.Time values
// in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone name, e.g. "UTC".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a relative phrase against base (usually time.Now()).
// Unknown phrases fall back to the start of the base day rather than erroring,
// so a sloppy LLM answer still yields a usable due date.
func (p *Parser) Parse(phrase string, base time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch phrase {
	case "today", "tonight":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(base.AddDate(0, 0, 7)), nil
	case "end of week":
		return p.upcomingWeekday(base, time.Sunday), nil
	}

	if strings.HasPrefix(phrase, "in ") {
		return p.parseOffset(phrase, base)
	}
	if rest, ok := strings.CutPrefix(phrase, "next "); ok {
		wd, found := weekdays[rest]
		if !found {
			return base, fmt.Errorf("unknown weekday: %q", rest)
		}
		return p.upcomingWeekday(base, wd), nil
	}

	return p.startOfDay(base), nil
}

func (p *Parser) parseOffset(phrase string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// upcomingWeekday returns the next occurrence of wd strictly after base's day.
func (p *Parser) upcomingWeekday(base time.Time, wd time.Weekday) time.Time {
	days := int(wd - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return p.startOfDay(base.AddDate(0, 0, days))
}

// startOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
