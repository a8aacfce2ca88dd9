package catalog

import "strings"

// CollegeInfo lists recommended institutes and entrance exams for a career.
type CollegeInfo struct {
	Colleges     []string
	EntranceExam string
}

// DefaultCollegeInfo is used when no career title matches.
var DefaultCollegeInfo = CollegeInfo{
	Colleges:     []string{"IIT Bombay", "IIT Delhi", "NIT Trichy", "BITS Pilani"},
	EntranceExam: "JEE Main, JEE Advanced",
}

type collegeEntry struct {
	Title string
	Info  CollegeInfo
}

var collegeLookup = []collegeEntry{
	{"Software Developer", CollegeInfo{
		Colleges:     []string{"IIT Bombay", "IIT Delhi", "IIT Bangalore", "NIT Trichy", "BITS Pilani", "VIT Vellore", "COEP Pune"},
		EntranceExam: "JEE Main, JEE Advanced, BITSAT, VITEEE"}},
	{"Graphic Designer", CollegeInfo{
		Colleges:     []string{"National Institute of Design", "MIT Institute of Design", "Pearl Academy", "Shrishti School of Design", "JD Institute"},
		EntranceExam: "NID DAT, UCEED, NIFT"}},
	{"Singer", CollegeInfo{
		Colleges:     []string{"Berklee College of Music", "Bhatkhande Music Institute", "Shankar Mahadevan Academy", "KM Music Conservatory"},
		EntranceExam: "Audition Based"}},
	{"Dancer", CollegeInfo{
		Colleges:     []string{"Kalakshetra Foundation", "National School of Drama", "Pingal Khan Academy", "Mudra Institute"},
		EntranceExam: "Audition Based"}},
	{"Doctor", CollegeInfo{
		Colleges:     []string{"AIIMS Delhi", "PGIMER Chandigarh", "CMC Vellore", "SGPGI Lucknow", "KEM Mumbai", "Grant Medical College"},
		EntranceExam: "NEET PG, NEET UG"}},
	{"Research Scientist", CollegeInfo{
		Colleges:     []string{"IISc Bangalore", "IIT Delhi", "IIT Bombay", "TIFR Mumbai", "IACS Kolkata", "IITs"},
		EntranceExam: "JEE Advanced, GATE, JEST"}},
	{"Business Analyst", CollegeInfo{
		Colleges:     []string{"IIM Ahmedabad", "IIM Bangalore", "IIM Calcutta", "ISB Hyderabad", "JBIMS Mumbai", "SP Jain"},
		EntranceExam: "CAT, XAT, GMAT"}},
	{"Data Scientist", CollegeInfo{
		Colleges:     []string{"IIT Bombay", "IIT Delhi", "IIIT Bangalore", "BITS Pilani", "Great Lakes", "UpGrad"},
		EntranceExam: "GATE, GRE, CAT"}},
	{"Digital Marketing Manager", CollegeInfo{
		Colleges:     []string{"Digital Marketing Institute", "IIDE Mumbai", "Manipal ProLearn", "Simplilearn", "UpGrad"},
		EntranceExam: "No specific exam required"}},
	{"Healthcare Administrator", CollegeInfo{
		Colleges:     []string{"AIIMS", "IIM Ahmedabad (Healthcare)", "TISS Mumbai", "NIHFW", "Apollo Hospitals Training"},
		EntranceExam: "CAT, TISSNET"}},
}

// CollegesFor returns the college info whose title occurs in career
// (case-insensitive), or the default.
func CollegesFor(career string) CollegeInfo {
	lower := strings.ToLower(career)
	for _, e := range collegeLookup {
		if strings.Contains(lower, strings.ToLower(e.Title)) {
			return e.Info
		}
	}
	return DefaultCollegeInfo
}
