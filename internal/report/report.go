package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jimezsa/hhwatch/internal/models"
	"github.com/jimezsa/hhwatch/internal/vacancy"
)

const DefaultPath = "jobs.txt"

const notEnoughData = "not enough data"

type Report struct {
	Request models.SearchRequest
	Entries []vacancy.Entry
	// Now is the reference time for listing ages.
	Now time.Time
}

// WriteFile renders r in memory and replaces path in a single write, so a
// render failure leaves the previous report untouched.
func WriteFile(path string, r Report) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func Render(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Total %d vacancies found for query %s in the last %d days\n\n",
		len(r.Entries), r.Request.Text, r.Request.PeriodDays); err != nil {
		return err
	}

	for i, entry := range r.Entries {
		lines := []string{
			fmt.Sprintf("%d) Vacancy: %s", i+1, safe(entry.Name)),
			fmt.Sprintf("Name company: %s", safe(entry.Employer.Name)),
			salaryLine(entry.Salary),
			fmt.Sprintf("More info: %s", safe(entry.AlternateURL)),
			fmt.Sprintf("Published %d day(s) ago", vacancy.DaysSince(entry.Published, r.Now)),
			"",
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	if !r.Request.CollectStats {
		return nil
	}

	stats := Compute(r.Entries)
	for _, line := range []string{
		"Average salary offer: " + stats.Offer.String(),
		"Average salary FROM: " + stats.From.String(),
		"Average salary TO: " + stats.To.String(),
	} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func salaryLine(salary *models.Salary) string {
	if salary == nil || (salary.From == nil && salary.To == nil) {
		return "Salary not specified"
	}
	currency := safe(salary.Currency)
	switch {
	case salary.From != nil && salary.To != nil:
		return strings.TrimSpace(fmt.Sprintf("Salary from %d to %d %s", *salary.From, *salary.To, currency))
	case salary.From != nil:
		return strings.TrimSpace(fmt.Sprintf("Salary from %d %s", *salary.From, currency))
	default:
		return strings.TrimSpace(fmt.Sprintf("Salary to %d %s", *salary.To, currency))
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}
