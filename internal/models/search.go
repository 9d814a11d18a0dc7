package models

import "strings"

// Experience is the experience bracket accepted by the API.
type Experience string

const (
	ExperienceNone         Experience = "noExperience"
	ExperienceBetween1And3 Experience = "between1And3"
	ExperienceBetween3And6 Experience = "between3And6"
	ExperienceMoreThan6    Experience = "moreThan6"
)

const (
	DefaultPeriodDays = 7
	DefaultArea       = 53
)

var Experiences = []Experience{
	ExperienceNone,
	ExperienceBetween1And3,
	ExperienceBetween3And6,
	ExperienceMoreThan6,
}

// ParseExperience matches value against the known brackets, ignoring case.
func ParseExperience(value string) (Experience, bool) {
	value = strings.TrimSpace(value)
	for _, exp := range Experiences {
		if strings.EqualFold(value, string(exp)) {
			return exp, true
		}
	}
	return "", false
}

// SearchRequest captures everything one pipeline run needs.
type SearchRequest struct {
	Text           string
	Keyword        string
	PeriodDays     int
	Experience     Experience
	OnlyWithSalary bool
	Area           int
	CollectStats   bool
}
