package engine

import (
	"math"
	"sort"
)

// CourseFit is one ranked recommendation: a course code and a 0-100 fit
// score. Fit scores are recomputed on every request and never persisted.
type CourseFit struct {
	Code string `json:"code"`
	Fit  int    `json:"fit"`
}

const maxRecommendations = 6

// RecommendCourses ranks candidate courses for a user. Candidates are the
// set union of the stream's course list, the personality type's course
// list, and the dream course if given. Unknown streams and personality
// types simply seed nothing; an empty union yields an empty slice.
//
// Fit starts at a base of 50 and rewards aptitude and academics relative
// to course difficulty, with flat bonuses for personality alignment (+8)
// and the dream course (+10), clamped into [0,100].
func (c *Catalog) RecommendCourses(stream string, boardMarks float64, aptitude20 int, personality, dreamCourse string) []CourseFit {
	candidates := map[string]bool{}
	for _, code := range c.streamCourses[stream] {
		candidates[code] = true
	}
	personalityList := c.personalityCourses[personality]
	for _, code := range personalityList {
		candidates[code] = true
	}
	if dreamCourse != "" {
		candidates[dreamCourse] = true
	}

	academics20 := NormalizeScore(boardMarks)

	results := make([]CourseFit, 0, len(candidates))
	for code := range candidates {
		diff := c.Difficulty(code)
		reach := float64(diff-60) / 4

		fit := 50.0
		fit += (float64(aptitude20) - reach) * 1.5
		fit += (float64(academics20) - reach) * 1.2
		if containsCode(personalityList, code) {
			fit += 8
		}
		if dreamCourse == code {
			fit += 10
		}

		results = append(results, CourseFit{Code: code, Fit: clampFit(fit)})
	}

	// Highest fit first; among equal fits the easier course wins. Code
	// order settles full ties so the ranking is stable across runs.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Fit != results[j].Fit {
			return results[i].Fit > results[j].Fit
		}
		di, dj := c.Difficulty(results[i].Code), c.Difficulty(results[j].Code)
		if di != dj {
			return di < dj
		}
		return results[i].Code < results[j].Code
	})

	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	return results
}

func clampFit(fit float64) int {
	r := math.Round(fit)
	return int(math.Max(0, math.Min(100, r)))
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
