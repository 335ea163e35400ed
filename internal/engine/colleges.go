package engine

import (
	"fmt"
	"sort"
	"strings"

	"career_advisor_backend/internal/model"
)

// CollegeQuery carries the user's filtering preferences. A zero Budget
// means no fee ceiling.
type CollegeQuery struct {
	CourseCode        string
	City              string
	Country           string
	Abroad            bool
	Budget            int
	IncludePrivate    bool
	IncludeGovernment bool
}

// RankedCollege pairs a surviving college with its transient proximity
// score (2 for a city match, 1 otherwise). The score is internal ranking
// state; Project strips it before results cross the API boundary.
type RankedCollege struct {
	College   model.College
	CityScore int
}

// RankColleges filters the catalog by course offering, geography, budget
// and ownership, then ranks survivors by city proximity and fee. Malformed
// catalog records fail fast so bad data gets rejected upstream instead of
// silently filtered.
func RankColleges(colleges []model.College, q CollegeQuery) ([]RankedCollege, error) {
	if q.Budget < 0 {
		return nil, fmt.Errorf("college query: budget must not be negative, got %d", q.Budget)
	}

	out := make([]RankedCollege, 0)
	for i, c := range colleges {
		if err := validateCollege(c); err != nil {
			return nil, fmt.Errorf("college record %d (%q): %w", i, c.Name, err)
		}
		if !offersCourse(c.Courses, q.CourseCode) {
			continue
		}
		domestic := strings.EqualFold(c.Country, q.Country)
		if q.Abroad == domestic {
			continue
		}
		if q.Budget > 0 && c.FeesPerYear > q.Budget {
			continue
		}
		if !q.IncludePrivate && !c.IsGovernment {
			continue
		}
		if !q.IncludeGovernment && c.IsGovernment {
			continue
		}

		score := 1
		if strings.EqualFold(c.City, q.City) {
			score = 2
		}
		out = append(out, RankedCollege{College: c, CityScore: score})
	}

	// Same-city colleges first, cheapest first within each tier. Stable,
	// so colleges tied on both keys keep catalog order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CityScore != out[j].CityScore {
			return out[i].CityScore > out[j].CityScore
		}
		return out[i].College.FeesPerYear < out[j].College.FeesPerYear
	})
	return out, nil
}

// Project maps ranked results back to the bare college shape, dropping
// the proximity annotation.
func Project(ranked []RankedCollege) []model.College {
	out := make([]model.College, len(ranked))
	for i, r := range ranked {
		out[i] = r.College
	}
	return out
}

func validateCollege(c model.College) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("missing required field name")
	case strings.TrimSpace(c.Country) == "":
		return fmt.Errorf("missing required field country")
	case strings.TrimSpace(c.Courses) == "":
		return fmt.Errorf("missing required field courses")
	case c.FeesPerYear < 0:
		return fmt.Errorf("field fees_per_year must not be negative, got %d", c.FeesPerYear)
	}
	return nil
}

// offersCourse checks the comma-joined course list for an exact,
// case-sensitive code match.
func offersCourse(courses, code string) bool {
	for _, c := range strings.Split(courses, ",") {
		if strings.TrimSpace(c) == code {
			return true
		}
	}
	return false
}
