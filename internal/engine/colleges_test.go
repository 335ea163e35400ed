package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career_advisor_backend/internal/model"
)

func testCatalogColleges() []model.College {
	return []model.College{
		{Name: "National Institute of Technology", Country: "India", City: "Delhi", IsGovernment: true, Courses: "CSE,ECE,ME", FeesPerYear: 150000},
		{Name: "Metro Private University", Country: "India", City: "Delhi", IsGovernment: false, Courses: "CSE, BBA, DESIGN", FeesPerYear: 420000},
		{Name: "Coastal Engineering College", Country: "India", City: "Chennai", IsGovernment: false, Courses: "CSE,ME,BIO", FeesPerYear: 250000},
		{Name: "State Arts College", Country: "India", City: "Mumbai", IsGovernment: true, Courses: "BA,PSY,JOUR", FeesPerYear: 40000},
		{Name: "Technical University of Munich", Country: "Germany", City: "Munich", IsGovernment: true, Courses: "CSE,ME,AI", FeesPerYear: 30000},
		{Name: "Bay State University", Country: "USA", City: "Boston", IsGovernment: false, Courses: "CSE,DS,AI", FeesPerYear: 3200000},
	}
}

func domesticQuery() CollegeQuery {
	return CollegeQuery{
		CourseCode:        "CSE",
		City:              "Delhi",
		Country:           "India",
		Abroad:            false,
		Budget:            0,
		IncludePrivate:    true,
		IncludeGovernment: true,
	}
}

func collegeNames(ranked []RankedCollege) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.College.Name
	}
	return names
}

func TestRankColleges_FiltersAndRanks(t *testing.T) {
	ranked, err := RankColleges(testCatalogColleges(), domesticQuery())
	require.NoError(t, err)

	// Same-city colleges lead, cheapest first within each tier.
	assert.Equal(t, []string{
		"National Institute of Technology",
		"Metro Private University",
		"Coastal Engineering College",
	}, collegeNames(ranked))
	assert.Equal(t, 2, ranked[0].CityScore)
	assert.Equal(t, 2, ranked[1].CityScore)
	assert.Equal(t, 1, ranked[2].CityScore)
}

func TestRankColleges_CourseMembership(t *testing.T) {
	q := domesticQuery()
	q.CourseCode = "PSY"
	q.City = "Mumbai"

	ranked, err := RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "State Arts College", ranked[0].College.Name)

	// Codes match exactly and case-sensitively.
	q.CourseCode = "psy"
	ranked, err = RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankColleges_AbroadFlag(t *testing.T) {
	q := domesticQuery()
	q.Abroad = true

	ranked, err := RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.NotEqual(t, "India", r.College.Country)
	}
	// Country comparison is case-insensitive.
	q.Country = "INDIA"
	again, err := RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	assert.Equal(t, ranked, again)
}

func TestRankColleges_BudgetCeiling(t *testing.T) {
	t.Run("zero budget imposes no ceiling", func(t *testing.T) {
		ranked, err := RankColleges(testCatalogColleges(), domesticQuery())
		require.NoError(t, err)
		assert.Len(t, ranked, 3)
	})

	t.Run("budget excludes colleges above it", func(t *testing.T) {
		q := domesticQuery()
		q.Budget = 200000
		ranked, err := RankColleges(testCatalogColleges(), q)
		require.NoError(t, err)
		assert.Equal(t, []string{"National Institute of Technology"}, collegeNames(ranked))
	})

	t.Run("negative budget is a contract violation", func(t *testing.T) {
		q := domesticQuery()
		q.Budget = -1
		_, err := RankColleges(testCatalogColleges(), q)
		assert.ErrorContains(t, err, "budget")
	})
}

func TestRankColleges_OwnershipFlags(t *testing.T) {
	q := domesticQuery()
	q.IncludePrivate = false
	ranked, err := RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"National Institute of Technology"}, collegeNames(ranked))

	q = domesticQuery()
	q.IncludeGovernment = false
	ranked, err = RankColleges(testCatalogColleges(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Metro Private University", "Coastal Engineering College"}, collegeNames(ranked))
}

func TestRankColleges_Idempotent(t *testing.T) {
	first, err := RankColleges(testCatalogColleges(), domesticQuery())
	require.NoError(t, err)
	second, err := RankColleges(testCatalogColleges(), domesticQuery())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankColleges_MalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		college model.College
		wantIn  string
	}{
		{"missing name", model.College{Country: "India", Courses: "CSE"}, "name"},
		{"missing country", model.College{Name: "X College", Courses: "CSE"}, "country"},
		{"missing courses", model.College{Name: "X College", Country: "India"}, "courses"},
		{"negative fee", model.College{Name: "X College", Country: "India", Courses: "CSE", FeesPerYear: -5}, "fees_per_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RankColleges([]model.College{tt.college}, domesticQuery())
			assert.ErrorContains(t, err, tt.wantIn)
		})
	}
}

func TestProject_StripsAnnotation(t *testing.T) {
	ranked, err := RankColleges(testCatalogColleges(), domesticQuery())
	require.NoError(t, err)

	projected := Project(ranked)
	require.Len(t, projected, len(ranked))
	for i, c := range projected {
		assert.Equal(t, ranked[i].College, c)
	}
}
