package engine

// Catalog holds the static reference tables the recommender scores
// against: which courses each stream and personality type seeds, how hard
// each course is, and its display label. Built once at startup and passed
// in explicitly so the scoring functions stay testable in isolation.
type Catalog struct {
	streamCourses      map[string][]string
	personalityCourses map[string][]string
	courseDifficulty   map[string]int
	courseLabels       map[string]string
}

// defaultDifficulty is assumed for course codes outside the catalog, so a
// user-declared dream course never fails a lookup.
const defaultDifficulty = 60

func NewCatalog() *Catalog {
	return &Catalog{
		streamCourses: map[string][]string{
			"Science":  {"CSE", "ECE", "ME", "BIO", "DS", "AI"},
			"Commerce": {"BBA", "BCom", "CA", "CS", "FIN", "DS"},
			"Arts":     {"BA", "LAW", "PSY", "DESIGN", "JOUR"},
		},
		personalityCourses: map[string][]string{
			"Analytical": {"CSE", "AI", "DS", "FIN", "ME"},
			"Creative":   {"DESIGN", "JOUR", "BA", "CSE"},
			"Social":     {"BBA", "LAW", "PSY", "JOUR"},
			"Practical":  {"ME", "ECE", "BIO"},
		},
		courseDifficulty: map[string]int{
			"CSE": 80, "AI": 85, "DS": 82, "ECE": 78, "ME": 75, "BIO": 70,
			"BBA": 60, "BCom": 65, "CA": 85, "CS": 80, "FIN": 78,
			"BA": 55, "LAW": 75, "PSY": 65, "DESIGN": 60, "JOUR": 58,
		},
		courseLabels: map[string]string{
			"CSE":    "Computer Science & Engineering",
			"AI":     "Artificial Intelligence",
			"DS":     "Data Science",
			"ECE":    "Electronics & Communication",
			"ME":     "Mechanical Engineering",
			"BIO":    "Biotechnology/Biology",
			"BBA":    "Bachelor of Business Administration",
			"BCom":   "Bachelor of Commerce",
			"CA":     "Chartered Accountancy",
			"CS":     "Company Secretary",
			"FIN":    "Finance/Investment",
			"BA":     "Bachelor of Arts",
			"LAW":    "Law (LLB)",
			"PSY":    "Psychology",
			"DESIGN": "Design/UI-UX",
			"JOUR":   "Journalism & Mass Comm.",
		},
	}
}

// Difficulty returns the course's difficulty rating, or the default for
// codes outside the catalog.
func (c *Catalog) Difficulty(code string) int {
	if d, ok := c.courseDifficulty[code]; ok {
		return d
	}
	return defaultDifficulty
}

// Label returns the display label for a course code, falling back to the
// code itself for unknown courses.
func (c *Catalog) Label(code string) string {
	if l, ok := c.courseLabels[code]; ok {
		return l
	}
	return code
}
