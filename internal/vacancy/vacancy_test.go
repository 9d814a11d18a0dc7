package vacancy

import (
	"errors"
	"testing"
	"time"

	"github.com/jimezsa/hhwatch/internal/models"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2024-01-15T10:30:00+0300", time.Date(2024, 1, 15, 10, 30, 0, 30*int(time.Millisecond), time.Local)},
		{"2024-01-15T10:30:00+5", time.Date(2024, 1, 15, 10, 30, 0, 500*int(time.Millisecond), time.Local)},
		{"2024-01-15T10:30:00+000001", time.Date(2024, 1, 15, 10, 30, 0, int(time.Microsecond), time.Local)},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.value)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error = %v", tc.value, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseTimestampRejects(t *testing.T) {
	cases := []string{
		"",
		"2024-01-15",
		"2024-01-15T10:30:00",
		"2024-01-15T10:30:00+",
		"2024-01-15T10:30:00-0500",
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+03:00",
		"2024-01-15T10:30:00+1234567",
		"2024-13-15T10:30:00+0300",
	}

	for _, value := range cases {
		_, err := ParseTimestamp(value)
		if err == nil {
			t.Fatalf("ParseTimestamp(%q) error = nil, want error", value)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseTimestamp(%q) error = %T, want *ParseError", value, err)
		}
		if parseErr.Value != value {
			t.Fatalf("ParseError.Value = %q, want %q", parseErr.Value, value)
		}
	}
}

func TestDaysSince(t *testing.T) {
	published := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		now  time.Time
		want int
	}{
		{published, 0},
		{published.Add(23 * time.Hour), 0},
		{published.Add(24 * time.Hour), 1},
		{published.Add(5*24*time.Hour + time.Minute), 5},
		{published.Add(-time.Hour), -1},
		{published.Add(-24 * time.Hour), -1},
	}
	for _, tc := range cases {
		if got := DaysSince(published, tc.now); got != tc.want {
			t.Fatalf("DaysSince(%v) = %d, want %d", tc.now.Sub(published), got, tc.want)
		}
	}
}

func TestSortByPublishedDescending(t *testing.T) {
	input := []models.Vacancy{
		{ID: "old", PublishedAt: "2024-01-01T09:00:00+0300"},
		{ID: "new", PublishedAt: "2024-01-03T09:00:00+0300"},
		{ID: "mid", PublishedAt: "2024-01-02T09:00:00+0300"},
		{ID: "mid-later", PublishedAt: "2024-01-02T18:00:00+0300"},
	}

	got, err := SortByPublished(input)
	if err != nil {
		t.Fatalf("SortByPublished() error = %v", err)
	}
	if len(got) != len(input) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(input))
	}
	want := []string{"new", "mid-later", "mid", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Published.Before(got[i].Published) {
			t.Fatalf("entries %d and %d out of order", i-1, i)
		}
	}
	if input[0].ID != "old" {
		t.Fatalf("input slice was modified")
	}
}

func TestSortByPublishedFailsWholeBatch(t *testing.T) {
	input := []models.Vacancy{
		{ID: "ok", PublishedAt: "2024-01-01T09:00:00+0300"},
		{ID: "bad", PublishedAt: "yesterday"},
	}
	got, err := SortByPublished(input)
	if err == nil {
		t.Fatalf("SortByPublished() error = nil, want error")
	}
	if got != nil {
		t.Fatalf("SortByPublished() returned %d entries on error", len(got))
	}
}

func TestFilterByKeyword(t *testing.T) {
	entries := []Entry{
		{Vacancy: models.Vacancy{ID: "1", Name: "Senior Backend Engineer"}},
		{Vacancy: models.Vacancy{ID: "2", Name: "Python Developer"}},
		{Vacancy: models.Vacancy{ID: "3", Name: "engineering manager"}},
	}

	cases := []struct {
		keyword string
		want    []string
	}{
		{"engineer", []string{"1", "3"}},
		{"ENGINEER", []string{"1", "3"}},
		{"Developer", []string{"2"}},
		{"", []string{"1", "2", "3"}},
		{"rust", nil},
	}

	for _, tc := range cases {
		got := FilterByKeyword(entries, tc.keyword)
		if len(got) != len(tc.want) {
			t.Fatalf("FilterByKeyword(%q) len = %d, want %d", tc.keyword, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("FilterByKeyword(%q)[%d] = %s, want %s", tc.keyword, i, got[i].ID, id)
			}
		}
	}
}
