package cmd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jimezsa/hhwatch/internal/models"
	"github.com/jimezsa/hhwatch/internal/ui"
)

const experiencePrompt = `Enter your work experience (default is noExperience):
  noExperience - no experience,
  between1And3 - from 1 year to 3 years,
  between3And6 - from 3 to 6 years,
  moreThan6 - more than 6 years`

// promptSearchRequest asks the interactive questions once. Missing input
// (closed stdin) yields the defaults.
func promptSearchRequest(in io.Reader, u *ui.UI, area int) (models.SearchRequest, error) {
	scanner := bufio.NewScanner(in)
	ask := func(question string) string {
		u.Prompt(question)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	req := models.SearchRequest{Area: area}
	req.Text = ask("Enter your search query:")
	req.Keyword = ask("Enter a keyword in the search (optional):")
	req.PeriodDays = parsePeriod(ask("Enter the number of days within which the job search is performed (default is 7):"))

	rawExperience := ask(experiencePrompt)
	experience, ok := parseExperience(rawExperience)
	if !ok {
		u.Warnf("Unknown experience %q, using %s", rawExperience, experience)
	}
	req.Experience = experience

	req.OnlyWithSalary = parseYes(ask("Only with the stated salary? YES/NO"))
	req.CollectStats = parseYes(ask("Collect salary statistics? YES/NO"))

	if err := scanner.Err(); err != nil {
		return req, err
	}
	return req, nil
}

// parsePeriod accepts a plain non-negative integer and falls back to the
// default for anything else.
func parsePeriod(value string) int {
	if value == "" {
		return models.DefaultPeriodDays
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return models.DefaultPeriodDays
		}
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return models.DefaultPeriodDays
	}
	return days
}

// parseExperience reports false only for a non-empty unknown value.
func parseExperience(value string) (models.Experience, bool) {
	if strings.TrimSpace(value) == "" {
		return models.ExperienceNone, true
	}
	if exp, ok := models.ParseExperience(value); ok {
		return exp, true
	}
	return models.ExperienceNone, false
}

func parseYes(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "yes")
}
