// Calendar-date normalization against the operating timezone.
//
// Launch dates are day-granular: the stored value is always the UTC instant
// of local midnight in the operating timezone. Session expiry reuses the
// same primitive (next local midnight).
package timex

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

const defaultZone = "America/Sao_Paulo"

var loc = mustLoad(defaultZone)

func mustLoad(name string) *time.Location {
	l, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] timezone %q unavailable, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return l
}

// Init switches the operating timezone (called once from main with the
// configured zone). Invalid names keep the current location.
func Init(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	l, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] OPERATING_TZ %q invalid, keeping %s: %v", name, loc, err)
		return
	}
	loc = l
}

func Location() *time.Location { return loc }

// ParseCalendarDate accepts "YYYY-MM-DD", "DD/MM/YYYY" or, as a fallback, a
// parseable RFC3339 instant, and returns the UTC instant of local midnight
// of that calendar day. Three-token dates are disambiguated by the length of
// the third token: 4 digits means the year comes last (DD/MM/YYYY family).
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if !strings.ContainsAny(s, "T ") {
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
		if len(parts) == 3 {
			return fromTokens(parts, s)
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return LocalMidnightUTC(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func fromTokens(parts []string, raw string) (time.Time, error) {
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
		}
		nums[i] = n
	}

	var y, m, d int
	if len(parts[2]) == 4 {
		d, m, y = nums[0], nums[1], nums[2]
	} else {
		y, m, d = nums[0], nums[1], nums[2]
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", raw)
	}

	local := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	// reject normalized overflow like 31/02
	if local.Year() != y || local.Month() != time.Month(m) || local.Day() != d {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", raw)
	}
	return local.UTC(), nil
}

// LocalMidnightUTC truncates an instant to its calendar day in the operating
// timezone and returns that day's local midnight as a UTC instant.
func LocalMidnightUTC(t time.Time) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc).UTC()
}

// NextLocalMidnight returns the first local midnight strictly after now.
// Used as the session expiry policy.
func NextLocalMidnight(now time.Time) time.Time {
	lt := now.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day()+1, 0, 0, 0, 0, loc)
}

// IsFutureDay reports whether t falls on a calendar day strictly after now's
// day in the operating timezone. Same-day is not future.
func IsFutureDay(t, now time.Time) bool {
	return LocalMidnightUTC(t).After(LocalMidnightUTC(now))
}
