package vacancy

import (
	"sort"
	"strings"
	"time"

	"github.com/jimezsa/hhwatch/internal/models"
)

// Entry pairs a vacancy with its parsed publication time.
type Entry struct {
	models.Vacancy
	Published time.Time
}

// SortByPublished returns a new slice ordered newest first. One malformed
// timestamp fails the whole batch.
func SortByPublished(vacancies []models.Vacancy) ([]Entry, error) {
	entries := make([]Entry, 0, len(vacancies))
	for _, v := range vacancies {
		published, err := ParseTimestamp(v.PublishedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Vacancy: v, Published: published})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Published.After(entries[j].Published)
	})
	return entries, nil
}

// FilterByKeyword keeps entries whose title contains keyword, ignoring case.
// An empty keyword keeps everything.
func FilterByKeyword(entries []Entry, keyword string) []Entry {
	needle := strings.ToLower(keyword)
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			out = append(out, entry)
		}
	}
	return out
}
