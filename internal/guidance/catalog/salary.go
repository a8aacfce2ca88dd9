package catalog

import "strings"

// SalaryBand breaks a career's pay into experience tiers.
type SalaryBand struct {
	Entry      string
	Mid        string
	Senior     string
	GrowthRate string
}

// DefaultSalaryBand is used when no career title matches.
var DefaultSalaryBand = SalaryBand{
	Entry:      "₹3-5 LPA",
	Mid:        "₹8-15 LPA",
	Senior:     "₹20-40 LPA",
	GrowthRate: "15-20% annually",
}

type salaryEntry struct {
	Title string
	Band  SalaryBand
}

// Matching is by title substring against the stored career name, in order.
var salaryBands = []salaryEntry{
	{"Software Developer", SalaryBand{"₹4-8 LPA", "₹12-25 LPA", "₹30-50+ LPA", "20-25% annually"}},
	{"Graphic Designer", SalaryBand{"₹2-4 LPA", "₹6-12 LPA", "₹15-25 LPA", "12-18% annually"}},
	{"Singer", SalaryBand{"₹2-5 LPA", "₹8-15 LPA", "₹20-50+ LPA", "Variable"}},
	{"Dancer", SalaryBand{"₹2-5 LPA", "₹8-18 LPA", "₹20-40+ LPA", "15-20% annually"}},
	{"Doctor", SalaryBand{"₹6-12 LPA", "₹15-30 LPA", "₹40-100+ LPA", "18-25% annually"}},
	{"Research Scientist", SalaryBand{"₹4-8 LPA", "₹12-20 LPA", "₹25-45 LPA", "12-18% annually"}},
	{"Business Analyst", SalaryBand{"₹4-8 LPA", "₹10-20 LPA", "₹25-40 LPA", "15-20% annually"}},
	{"Data Scientist", SalaryBand{"₹6-12 LPA", "₹15-30 LPA", "₹35-60+ LPA", "22-28% annually"}},
	{"Digital Marketing Manager", SalaryBand{"₹3-6 LPA", "₹8-15 LPA", "₹20-35 LPA", "18-22% annually"}},
	{"Healthcare Administrator", SalaryBand{"₹4-8 LPA", "₹10-18 LPA", "₹22-40 LPA", "14-18% annually"}},
}

// SalaryBandFor returns the salary band whose title occurs in career
// (case-insensitive), or the default band.
func SalaryBandFor(career string) SalaryBand {
	lower := strings.ToLower(career)
	for _, e := range salaryBands {
		if strings.Contains(lower, strings.ToLower(e.Title)) {
			return e.Band
		}
	}
	return DefaultSalaryBand
}
