package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCourses_ScienceAnalyticalDreamCSE(t *testing.T) {
	cat := NewCatalog()

	got := cat.RecommendCourses("Science", 90, 18, "Analytical", "CSE")

	require.Len(t, got, 6)
	// Dream (+10) and personality (+8) bonuses push CSE to the cap.
	assert.Equal(t, CourseFit{Code: "CSE", Fit: 100}, got[0])
	// BIO and DS tie at 92; the easier course (BIO, 70 vs 82) ranks first.
	want := []CourseFit{
		{Code: "CSE", Fit: 100},
		{Code: "ME", Fit: 96},
		{Code: "FIN", Fit: 94},
		{Code: "BIO", Fit: 92},
		{Code: "DS", Fit: 92},
		{Code: "AI", Fit: 90},
	}
	assert.Equal(t, want, got)

	for _, cf := range got {
		assert.GreaterOrEqual(t, cf.Fit, 0)
		assert.LessOrEqual(t, cf.Fit, 100)
	}
}

func TestRecommendCourses_UnknownSeedsAreEmpty(t *testing.T) {
	cat := NewCatalog()

	t.Run("no seeds at all", func(t *testing.T) {
		got := cat.RecommendCourses("Astrology", 50, 10, "Impulsive", "")
		assert.Empty(t, got)
	})

	t.Run("dream course alone is a candidate", func(t *testing.T) {
		got := cat.RecommendCourses("Astrology", 0, 0, "Impulsive", "CSE")
		require.Len(t, got, 1)
		assert.Equal(t, "CSE", got[0].Code)
		// 50 - 5*1.5 - 5*1.2 + 10, rounded.
		assert.Equal(t, 47, got[0].Fit)
	})

	t.Run("dream course outside the catalog gets default difficulty", func(t *testing.T) {
		got := cat.RecommendCourses("Astrology", 100, 20, "Impulsive", "XYZ")
		require.Len(t, got, 1)
		assert.Equal(t, "XYZ", got[0].Code)
		// Difficulty defaults to 60, so reach is zero: 50+30+24+10 caps at 100.
		assert.Equal(t, 100, got[0].Fit)
	})
}

func TestRecommendCourses_CapsAtSix(t *testing.T) {
	cat := NewCatalog()

	// Science ∪ Analytical ∪ dream JOUR = 8 distinct candidates.
	got := cat.RecommendCourses("Science", 75, 12, "Analytical", "JOUR")
	assert.Len(t, got, 6)

	seen := map[string]bool{}
	for _, cf := range got {
		assert.False(t, seen[cf.Code], "course %s recommended twice", cf.Code)
		seen[cf.Code] = true
	}
}

// Fit is monotonic in aptitude for every course: the aptitude coefficient
// is a constant 1.5, so raising aptitude20 can never lower a fit score.
// Clamping at 100 makes the relation non-strict.
func TestRecommendCourses_MonotonicInAptitude(t *testing.T) {
	cat := NewCatalog()

	prev := map[string]int{}
	for apt := 0; apt <= 20; apt++ {
		got := cat.RecommendCourses("Science", 50, apt, "", "")
		require.NotEmpty(t, got)
		for _, cf := range got {
			if last, ok := prev[cf.Code]; ok {
				assert.GreaterOrEqual(t, cf.Fit, last,
					"fit for %s dropped when aptitude rose to %d", cf.Code, apt)
			}
			prev[cf.Code] = cf.Fit
		}
	}
}

func TestRecommendCourses_Deterministic(t *testing.T) {
	cat := NewCatalog()

	first := cat.RecommendCourses("Commerce", 62.5, 9, "Social", "CA")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cat.RecommendCourses("Commerce", 62.5, 9, "Social", "CA"))
	}
}
