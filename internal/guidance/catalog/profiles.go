package catalog

// CareerProfile describes one recommendable career. Keys are stable
// identifiers shared by the quiz scorer, the suggestion ranker and the
// salary/college lookups.
type CareerProfile struct {
	Key            string
	Career         string
	Skills         string
	Courses        string
	Salary         string
	FutureScope    string
	StudyPlan      string
	Stability      string
	RiskLevel      string
	GovernmentPath string
}

// Profiles is the career catalog in its canonical order. Ranking ties and
// quiz-score ties both resolve by position in this slice, so the order is
// part of the contract.
var Profiles = []CareerProfile{
	{
		Key:            "technology",
		Career:         "Software Developer/Engineer",
		Skills:         "Programming (Python, Java, JavaScript), Data Structures, Algorithms, Problem Solving, Database Management",
		Courses:        "Computer Science Degree, Full Stack Development, Cloud Computing, Machine Learning",
		Salary:         "₹5-25 LPA (Entry to Senior)",
		FutureScope:    "High demand, remote work options, continuous growth opportunities",
		StudyPlan:      "Year 1: Learn Python/HTML/CSS || Year 2: JavaScript & React || Year 3: Projects & Internship || Year 4: Full Stack & Placement",
		Stability:      "Medium-High",
		RiskLevel:      "Medium",
		GovernmentPath: "Can apply for government IT positions, PSU jobs, and banking sector IT roles",
	},
	{
		Key:            "drawing",
		Career:         "Graphic Designer / Illustrator",
		Skills:         "Adobe Photoshop, Illustrator, Figma, Typography, Color Theory, Visual Design, Creativity",
		Courses:        "Graphic Design Certification, Fine Arts, Animation, UX Design, Digital Art",
		Salary:         "₹3-15 LPA (Entry to Senior)",
		FutureScope:    "Freelance opportunities, digital media growth, brand identity design",
		StudyPlan:      "Year 1: Learn Design Tools (PS/AI) || Year 2: Typography & Color Theory || Year 3: Portfolio Building || Year 4: Freelancing/Job",
		Stability:      "Medium",
		RiskLevel:      "Medium-High",
		GovernmentPath: "Limited government opportunities - can work in government media units, publications, and cultural departments",
	},
	{
		Key:            "singing",
		Career:         "Professional Singer / Music Composer",
		Skills:         "Vocal Training, Music Theory, Keyboard/Instrument, Recording, Stage Performance, Songwriting",
		Courses:        "Music Certification, Classical Training, Audio Engineering, Music Production",
		Salary:         "₹3-20+ LPA (varies by fame)",
		FutureScope:    "Music industry, streaming platforms, live performances, content creation",
		StudyPlan:      "Year 1: Vocal Training || Year 2: Music Theory & Instruments || Year 3: Recording & Production || Year 4: Live Shows & Albums",
		Stability:      "Low-Medium",
		RiskLevel:      "High",
		GovernmentPath: "Can work in All India Radio, Doordarshan, Sangeet Natak Akademi, and cultural ministry positions",
	},
	{
		Key:            "dancing",
		Career:         "Professional Dancer / Choreographer",
		Skills:         "Various Dance Forms, Choreography, Stage Performance, Fitness, Expression, Teaching",
		Courses:        "Dance Certification, Performing Arts, Choreography Courses, Dance Therapy",
		Salary:         "₹3-18 LPA (Entry to Senior)",
		FutureScope:    "Bollywood, stage shows, choreography, dance studios, online content",
		StudyPlan:      "Year 1: Basic Dance Forms || Year 2: Advanced Choreography || Year 3: Stage Performances || Year 4: Industry Work",
		Stability:      "Low-Medium",
		RiskLevel:      "High",
		GovernmentPath: "Can work in cultural ministry, Sangeet Natak Akademi, and government dance troupes",
	},
	{
		Key:            "biology",
		Career:         "Doctor / Medical Professional",
		Skills:         "Medical Knowledge, Patient Care, Diagnosis, Surgery, Research, Communication",
		Courses:        "MBBS, MD, MS, Nursing, Pharmacy, Biotechnology, Medical Research",
		Salary:         "₹6-50+ LPA (varies by specialization)",
		FutureScope:    "High demand, healthcare industry growth, research opportunities",
		StudyPlan:      "Year 1-2: NEET Prep || Year 3-5: MBBS Studies || Year 6-7: Internship || Year 8+: Specialization",
		Stability:      "Very High",
		RiskLevel:      "Low",
		GovernmentPath: "Excellent government opportunities - Government doctors, AIIMS, PHC, CGHS, Railway doctors, ESI doctors, and municipal corporation positions",
	},
	{
		Key:            "science",
		Career:         "Research Scientist",
		Skills:         "Scientific Methods, Research, Data Analysis, Laboratory Skills, Critical Thinking, Publications",
		Courses:        "B.Sc/M.Sc, PhD, JEE, Research Fellowships, Indian Institute of Science",
		Salary:         "₹4-20 LPA (Entry to Senior)",
		FutureScope:    "Research institutes, universities, DRDO, ISRO, pharmaceutical companies",
		StudyPlan:      "Year 1-2: Foundation (PCM) || Year 3-4: B.Sc Focus || Year 5-6: M.Sc || Year 7+: PhD/Research",
		Stability:      "Medium-High",
		RiskLevel:      "Low-Medium",
		GovernmentPath: "Excellent - DRDO, ISRO, CSIR, ICAR, DAE, Indian research institutes, and university positions",
	},
	{
		Key:            "business",
		Career:         "Business Analyst",
		Skills:         "Data Analysis, SQL, Excel, Communication, Problem Solving, Domain Knowledge",
		Courses:        "MBA, Business Analytics Certification, Tableau/PowerBI",
		Salary:         "₹5-20 LPA (Entry to Senior)",
		FutureScope:    "High demand across industries, consulting opportunities",
		StudyPlan:      "Year 1-2: Graduation || Year 3: Aptitude & CAT Prep || Year 4-5: MBA || Year 6+: Job",
		Stability:      "Medium-High",
		RiskLevel:      "Medium",
		GovernmentPath: "MBA in government management institutes, government PSUs, and administrative roles through competitive exams",
	},
	{
		Key:            "data",
		Career:         "Data Scientist",
		Skills:         "Python, R, Statistics, Machine Learning, Data Visualization, SQL, Big Data",
		Courses:        "Data Science Certification, Machine Learning, Deep Learning",
		Salary:         "₹6-30 LPA (Entry to Senior)",
		FutureScope:    "Very high demand, AI/ML integration, excellent growth",
		StudyPlan:      "Year 1: Python & Statistics || Year 2: Machine Learning || Year 3: Projects & Kaggle || Year 4: Data Science Job",
		Stability:      "Medium-High",
		RiskLevel:      "Medium",
		GovernmentPath: "Growing opportunities in government analytics projects, NIC, NITI Aayog, and data-driven government initiatives",
	},
	{
		Key:            "marketing",
		Career:         "Digital Marketing Manager",
		Skills:         "SEO, SEM, Social Media, Content Creation, Analytics, Email Marketing",
		Courses:        "Digital Marketing Certification, Google Ads, Analytics",
		Salary:         "₹4-15 LPA (Entry to Senior)",
		FutureScope:    "E-commerce boom, remote work options, growing field",
		StudyPlan:      "Year 1: SEO & Social Media || Year 2: Google Ads & Analytics || Year 3: Live Projects || Year 4: Digital Marketing Job",
		Stability:      "Medium",
		RiskLevel:      "Medium-High",
		GovernmentPath: "Limited - can work in tourism ministry, cultural ministry, and government advertising agencies",
	},
	{
		Key:            "healthcare",
		Career:         "Healthcare Administrator",
		Skills:         "Healthcare Management, Medical Terminology, Data Analysis, Leadership",
		Courses:        "Healthcare Management MBA, Hospital Administration, Public Health",
		Salary:         "₹5-20 LPA (Entry to Senior)",
		FutureScope:    "Stable growth, healthcare industry expansion",
		StudyPlan:      "Year 1-2: Graduation || Year 3: Healthcare Mgmt Prep || Year 4-5: MBA Healthcare || Year 6+: Hospital Job",
		Stability:      "High",
		RiskLevel:      "Low",
		GovernmentPath: "Excellent - Government hospitals, AIIMS, PHC, municipal health departments, and health ministry positions",
	},
}

var profilesByKey = func() map[string]*CareerProfile {
	m := make(map[string]*CareerProfile, len(Profiles))
	for i := range Profiles {
		m[Profiles[i].Key] = &Profiles[i]
	}
	return m
}()

// ProfileByKey returns the profile for key, or nil if the key is unknown.
func ProfileByKey(key string) *CareerProfile {
	return profilesByKey[key]
}

// CategoryGroups maps display groups to the profile keys they contain.
// Used to surface related careers next to a suggestion.
var CategoryGroups = map[string][]string{
	"Technology":         {"technology", "data"},
	"Healthcare":         {"biology", "healthcare"},
	"Business & Finance": {"business"},
	"Creative Arts":      {"drawing", "singing", "dancing"},
	"Education":          {"teacher"},
	"Science & Research": {"science"},
	"Marketing":          {"marketing"},
}

// RelatedCareers returns profiles sharing a category group with key,
// excluding key itself, capped at limit.
func RelatedCareers(key string, limit int) []*CareerProfile {
	var related []*CareerProfile
	for _, group := range CategoryGroups {
		found := false
		for _, k := range group {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		for _, k := range group {
			if k == key {
				continue
			}
			if p := ProfileByKey(k); p != nil {
				related = append(related, p)
			}
		}
		break
	}
	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	return related
}
