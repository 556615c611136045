package timex

import (
	"testing"
	"time"
)

func TestParseCalendarDateFormats(t *testing.T) {
	iso, err := ParseCalendarDate("2025-03-05")
	if err != nil {
		t.Fatalf("ParseCalendarDate(2025-03-05): %v", err)
	}
	br, err := ParseCalendarDate("05/03/2025")
	if err != nil {
		t.Fatalf("ParseCalendarDate(05/03/2025): %v", err)
	}
	if !iso.Equal(br) {
		t.Fatalf("same calendar day parsed to different instants: %v vs %v", iso, br)
	}

	local := iso.In(Location())
	if local.Hour() != 0 || local.Minute() != 0 {
		t.Fatalf("expected local midnight, got %v", local)
	}
	if iso.Location() != time.UTC {
		t.Fatalf("stored instant must be UTC, got %v", iso.Location())
	}
}

func TestParseCalendarDateThirdTokenRule(t *testing.T) {
	// third token length 4 → year last (DD/MM/YYYY family), even with dashes
	got, err := ParseCalendarDate("05-03-2025")
	if err != nil {
		t.Fatalf("ParseCalendarDate(05-03-2025): %v", err)
	}
	want, _ := ParseCalendarDate("2025-03-05")
	if !got.Equal(want) {
		t.Fatalf("05-03-2025 = %v, want %v", got, want)
	}
}

func TestParseCalendarDateRFC3339Fallback(t *testing.T) {
	got, err := ParseCalendarDate("2025-03-05T17:45:00Z")
	if err != nil {
		t.Fatalf("RFC3339 fallback: %v", err)
	}
	want, _ := ParseCalendarDate("2025-03-05")
	if !got.Equal(want) {
		t.Fatalf("instant not normalized to local midnight: %v, want %v", got, want)
	}
}

func TestParseCalendarDateRejects(t *testing.T) {
	for _, in := range []string{"", "31/02/2025", "2025-13-01", "05/03", "abc", "2025/03/05/01"} {
		if _, err := ParseCalendarDate(in); err == nil {
			t.Errorf("ParseCalendarDate(%q): expected error", in)
		}
	}
}

func TestNextLocalMidnight(t *testing.T) {
	now := time.Date(2025, 3, 5, 22, 30, 0, 0, Location())
	next := NextLocalMidnight(now)

	local := next.In(Location())
	if local.Hour() != 0 || local.Day() != 6 {
		t.Fatalf("expected midnight of March 6, got %v", local)
	}
	if !next.After(now) {
		t.Fatalf("next midnight %v not after now %v", next, now)
	}
}

func TestIsFutureDay(t *testing.T) {
	now := time.Date(2025, 3, 5, 8, 0, 0, 0, Location())

	sameDayLater := time.Date(2025, 3, 5, 23, 0, 0, 0, Location())
	if IsFutureDay(sameDayLater, now) {
		t.Error("same calendar day must not count as future")
	}

	tomorrow := time.Date(2025, 3, 6, 0, 0, 0, 0, Location())
	if !IsFutureDay(tomorrow, now) {
		t.Error("next calendar day must count as future")
	}

	yesterday := time.Date(2025, 3, 4, 23, 59, 0, 0, Location())
	if IsFutureDay(yesterday, now) {
		t.Error("past day must not count as future")
	}
}
