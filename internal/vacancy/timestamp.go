package vacancy

import (
	"fmt"
	"time"
)

const (
	wallLayout = "2006-01-02T15:04:05"
	maxFracLen = 6
)

// ParseError reports a published_at value that does not match the
// expected layout.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse timestamp %q: %s", e.Value, e.Reason)
}

// ParseTimestamp reads "YYYY-MM-DDTHH:MM:SS+F" where F is one to six digits
// taken as a fraction of a second, microsecond precision, right-padded.
// The result is a wall-clock time in the local zone.
//
// The API sends a UTC offset in that position ("+0300"), so the offset is
// read as 30ms and otherwise ignored, and negative offsets do not parse.
// Report ages and ordering depend on this behaviour; keep it until the
// report format is allowed to change.
func ParseTimestamp(value string) (time.Time, error) {
	if len(value) < len(wallLayout)+2 {
		return time.Time{}, &ParseError{Value: value, Reason: "too short"}
	}

	wall, rest := value[:len(wallLayout)], value[len(wallLayout):]
	ts, err := time.ParseInLocation(wallLayout, wall, time.Local)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Reason: err.Error()}
	}

	if rest[0] != '+' {
		return time.Time{}, &ParseError{Value: value, Reason: fmt.Sprintf("expected '+' after seconds, got %q", rest[0])}
	}
	frac := rest[1:]
	if len(frac) == 0 || len(frac) > maxFracLen {
		return time.Time{}, &ParseError{Value: value, Reason: "fraction must have 1 to 6 digits"}
	}

	micros := 0
	for _, r := range frac {
		if r < '0' || r > '9' {
			return time.Time{}, &ParseError{Value: value, Reason: "fraction must be numeric"}
		}
		micros = micros*10 + int(r-'0')
	}
	micros *= pow10(maxFracLen - len(frac))

	return ts.Add(time.Duration(micros) * time.Microsecond), nil
}

func pow10(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

// DaysSince returns whole days between published and now, rounded down.
func DaysSince(published, now time.Time) int {
	const day = 24 * time.Hour
	elapsed := now.Sub(published)
	days := int(elapsed / day)
	if elapsed < 0 && elapsed%day != 0 {
		days--
	}
	return days
}
