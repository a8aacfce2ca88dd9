package catalog

// CategoryPair keys the compromise table. Lookup tries the pair as given,
// then reversed.
type CategoryPair struct {
	First  Category
	Second Category
}

// CompromiseRule is a static recommendation for a category pair.
type CompromiseRule struct {
	Suggestion  string
	Description string
	Careers     []string
	Explanation string
}

// compromiseRules is keyed by ordered category pair. A duplicate pair is a
// compile error here, which pins down the single surviving payload for
// (technology, government).
var compromiseRules = map[CategoryPair]CompromiseRule{
	{CategoryTechnology, CategoryGovernment}: {
		Suggestion:  "Government IT / Gaming in PSUs",
		Description: "Use your tech skills in secure government IT roles or explore gaming wings in government organizations",
		Careers:     []string{"NIC IT Specialist", "PSU Software Developer", "Government Digital Transformation Projects", "E-Governance"},
		Explanation: "Many PSUs and government organizations now have IT wings where you can develop applications and systems",
	},
	{CategoryCreative, CategoryGovernment}: {
		Suggestion:  "Government Media & Cultural Sector",
		Description: "Combine creativity with government job security",
		Careers:     []string{"Directorate of Cultural Affairs", "Doordarshan", "All India Radio", "Government Press"},
		Explanation: "Government has various media and cultural departments that need creative professionals",
	},
	{CategoryHealthcare, CategoryGovernment}: {
		Suggestion:  "Government Healthcare Sector",
		Description: "Best of both worlds - medical career with government job security",
		Careers:     []string{"Government Doctor", "AIIMS", "PHC Doctor", "Railway Doctor", "CGHS"},
		Explanation: "Government hospitals and health departments offer excellent job security with good salaries",
	},
	{CategoryBusiness, CategoryGovernment}: {
		Suggestion:  "Government Management Roles",
		Description: "Business skills with government stability",
		Careers:     []string{"PSU Manager", "Banking Officer", "Government Administrative Roles"},
		Explanation: "PSUs and government banks offer management positions with excellent benefits",
	},
	{CategoryScience, CategoryGovernment}: {
		Suggestion:  "Government Research Institutes",
		Description: "Scientific research with government job security",
		Careers:     []string{"DRDO", "ISRO", "CSIR", "ICAR", "DAE", "Research Scientist"},
		Explanation: "Top research institutes in India offer excellent career opportunities with job security",
	},
}

// defaultCompromise is returned when neither ordering of the pair is in the table.
var defaultCompromise = CompromiseRule{
	Suggestion:  "Explore Related Fields",
	Description: "Consider careers that blend both interests",
	Careers:     []string{"Research combined careers", "Consultant roles", "Government + Private hybrid"},
	Explanation: "Both career paths have merit - discuss further to find common ground",
}

// CompromiseFor resolves the compromise rule for a category pair, checking
// both orderings before falling back to the generic suggestion.
func CompromiseFor(first, second Category) CompromiseRule {
	if rule, ok := compromiseRules[CategoryPair{first, second}]; ok {
		return rule
	}
	if rule, ok := compromiseRules[CategoryPair{second, first}]; ok {
		return rule
	}
	return defaultCompromise
}
