// Package knowledge holds the curated guidance corpus and the TF-IDF index
// used to resolve free-form questions against it. Entries are multilingual;
// English text is mandatory, Marathi and Hindi translations are optional and
// fall back to English.
package knowledge

import "career-guidance-workers/internal/guidance/langdetect"

// Entry is one answerable topic: a stable key, a coarse category tag, the
// keyword phrases used for exact matching, and per-language response text.
type Entry struct {
	Key      string
	Category string
	Keywords []string
	Text     map[langdetect.Language]string
}

// TextFor returns the entry text in the requested language, falling back to
// English when no translation exists.
func (e *Entry) TextFor(lang langdetect.Language) string {
	if text, ok := e.Text[lang]; ok && text != "" {
		return text
	}
	return e.Text[langdetect.English]
}

// EntryByKey returns the entry with the given key, or nil.
func EntryByKey(key string) *Entry {
	for i := range Entries {
		if Entries[i].Key == key {
			return &Entries[i]
		}
	}
	return nil
}

// Entries is the guidance corpus in scan order. Exact keyword matching walks
// this slice front to back and returns the first hit, so more specific topics
// (named exams) sit before generic ones (generic "exam", "job" topics).
var Entries = []Entry{
	{
		Key:      "mpsc",
		Category: "exam",
		Keywords: []string{"mpsc", "maharashtra public service", "state service", "rajya sev"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📋 MPSC (Maharashtra Public Service Commission)</h3>

<strong>Exam Pattern:</strong>
• State Services (Pre) - 100 questions, 200 marks, 2 hours
• State Services (Main) - 9 papers (Preliminary qualifying)
• Interview - 275 marks

<strong>Eligibility:</strong>
• Graduate in any stream
• Age: 18-38 years (varies by category)

<strong>2-Year Study Plan:</strong>
<b>Year 1:</b> exam pattern, Marathi & English, Basic GS, History, Geography, Polity, Current Affairs
<b>Year 2:</b> optional subject, answer writing, full mock tests, final revision

<strong>Recommended Books:</strong>
• History - Spectrum (Modern India)
• Geography - Majid Husain
• Polity - Laxmikant
• Economy - Ramesh Singh

<strong>Salary after selection:</strong> ₹40,000-₹1,50,000/month`,
			langdetect.Marathi: `<h3>📋 MPSC (महाराष्ट्र लोकसेवा आयोग)</h3>

<strong>परीक्षा पद्धत:</strong>
• राज्य सेवा (प्रारंभिक) - 100 प्रश्न, 200 गुण
• राज्य सेवा (मुख्य) - 9 पेपर
• मुलाखत - 275 गुण

<strong>पात्रता:</strong>
• कोणत्याही विद्याशाखेची पदवी
• वय: 18-38 वर्ष

<strong>2 वर्ष अभ्यास योजना:</strong>
<strong>वर्ष 1:</strong> परीक्षा पद्धत, मराठी व इंग्रजी, इतिहास, भूगोल, चालू घडामोडी
<strong>वर्ष 2:</strong> पर्यायी विषय, उत्तर लेखन, मॉक टेस्ट

<strong>पुस्तके:</strong> लक्ष्मीकांत, स्पेक्ट्रम

<strong>पगार:</strong> ₹40,000-₹1,50,000/महिना`,
			langdetect.Hindi: `<h3>MPSC - Maharashtra Public Service Commission</h3>
<strong>Exam Pattern:</strong>
- State Services (Pre) - 100 questions, 200 marks
- State Services (Main) - 9 papers
- Interview - 275 marks

<strong>Eligibility:</strong> Graduate, Age 18-38 years
<strong>2-Year Plan:</strong> Year 1: Pattern, Basic GS, History. Year 2: Optional, Answer Writing, Mocks
<strong>Books:</strong> Laxmikant, Spectrum
<strong>Salary:</strong> ₹40,000-₹1,50,000/month`,
		},
	},
	{
		Key:      "upsc",
		Category: "exam",
		Keywords: []string{"upsc", "union public service", "ias", "ips", "ifs", "civil service"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🏛️ UPSC (Union Public Service Commission)</h3>

<strong>Exam Pattern:</strong>
• Prelims - GS I (100 questions, 200 marks) + CSAT (80 questions, 200 marks)
• Mains - 9 papers (1750 marks)
• Interview - 275 marks
• Total: 2025 marks

<strong>Eligibility:</strong>
• Graduate in any stream
• Age: 21-32 years (general category)
• Attempts: 6 (general)

<strong>3-Year Preparation Plan:</strong>
<b>Year 1 - Foundation:</b> syllabus, Ancient & Medieval History, Modern History, Geography, Polity, Economy basics
<b>Year 2 - Advanced:</b> Economy, Environment, Science & Technology, Current Affairs, optional subject
<b>Year 3 - Revision:</b> answer writing, test series, mocks, final revision

<strong>Recommended Books:</strong>
• History - NCERTs, Spectrum
• Geography - NCERTs, Majid Husain
• Polity - Laxmikant
• Economy - Ramesh Singh, Economic Survey

<strong>Salary after selection:</strong>
• IAS: ₹56,100-₹2,50,000/month
• IPS: ₹56,100-₹2,25,000/month`,
			langdetect.Marathi: `<h3>🏛️ UPSC (संघ लोकसेवा आयोग)</h3>

<strong>परीक्षा पद्धत:</strong>
• प्रारंभिक - GS I + CSAT
• मुख्य - 9 पेपर (1750 गुण)
• मुलाखत - 275 गुण

<strong>पात्रता:</strong>
• पदवीधर
• वय: 21-32 वर्ष

<strong>3 वर्ष तयारी योजना:</strong>
वर्ष 1: NCERT, इतिहास, भूगोल
वर्ष 2: राज्यव्यवस्था, अर्थशास्त्र
वर्ष 3: मॉक टेस्ट, पुनरावलोकन

<strong>पुस्तके:</strong> NCERT, लक्ष्मीकांत, स्पेक्ट्रम

<strong>पगार:</strong> ₹56,100-₹2,50,000/महिना`,
			langdetect.Hindi: `<h3>UPSC - Union Public Service Commission</h3>
<strong>Exam Pattern:</strong>
- Prelims - GS I + CSAT
- Mains - 9 papers (1750 marks)
- Interview - 275 marks

<strong>Eligibility:</strong> Graduate, Age 21-32 years
<strong>3-Year Plan:</strong> Year 1: Foundation. Year 2: Polity, Economy. Year 3: Revision, Mocks
<strong>Books:</strong> NCERTs, Laxmikant, Spectrum
<strong>Salary:</strong> ₹56,100-₹2,50,000/month`,
		},
	},
	{
		Key:      "jee",
		Category: "exam",
		Keywords: []string{"jee", "joint entrance", "iit", "engineering", "tech", "computer science"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🔬 JEE (Joint Entrance Examination)</h3>

<strong>Exam Pattern:</strong>
• JEE Main - 90 questions, 300 marks (NTA conducts 4 times/year)
• JEE Advanced - 54 questions, 180 marks (IIT conducts)

<strong>Eligibility:</strong>
• 10+2 with PCM (Physics, Chemistry, Mathematics)
• Age: No upper limit

<strong>2-Year Preparation Plan:</strong>
<b>Class 11:</b> Mechanics, Mole Concept, Waves, Thermodynamics, Algebra, full syllabus
<b>Class 12:</b> Class 12th topics, full syllabus revision, mock tests, problem solving

<strong>Top IITs:</strong>
• IIT Bombay, Delhi, Madras, Kharagpur
• Average Package: ₹15-50 LPA

<strong>Career Options:</strong>
• Software Engineer, Data Scientist
• Machine Learning, AI
• Civil, Mechanical, Electrical Engineering`,
			langdetect.Marathi: `<h3>🔬 JEE (Joint Entrance Examination)</h3>

<strong>परीक्षा पद्धत:</strong>
• JEE Main - 90 प्रश्न, 300 गुण
• JEE Advanced - 54 प्रश्न, 180 गुण

<strong>पात्रता:</strong>
• 10+2 PCM सह

<strong>Top IITs:</strong> IIT Bombay, Delhi, Madras

<strong>पगार:</strong> ₹15-50 LPA`,
			langdetect.Hindi: `<h3>JEE - Joint Entrance Examination</h3>
<strong>Exam:</strong> JEE Main + Advanced
<strong>Eligibility:</strong> 10+2 with PCM
<strong>2-Year Plan:</strong> Class 11-12 syllabus
<strong>Top IITs:</strong> Bombay, Delhi, Madras, Kharagpur
<strong>Package:</strong> ₹15-50 LPA`,
		},
	},
	{
		Key:      "neet",
		Category: "exam",
		Keywords: []string{"neet", "medical", "mbbs", "doctor", "nursing", "bhms", "bams"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>⚕️ NEET (National Eligibility cum Entrance Test)</h3>

<strong>Exam Pattern:</strong>
• 180 questions, 720 marks
• Physics - 45, Chemistry - 45, Biology - 90 questions
• Duration - 3 hours 20 minutes

<strong>Eligibility:</strong>
• 10+2 with PCB (Physics, Chemistry, Biology)
• Age: 17-25 years

<strong>2-Year Preparation Plan:</strong>
<b>Year 1:</b> Mechanics, Basic Chemistry, Diversity, Cell, Modern Physics, Organic Chemistry, Human Physiology
<b>Year 2:</b> Class 12th syllabus, full revision, mock tests, final preparation

<strong>Medical Courses:</strong>
• MBBS (5.5 years) - Doctor
• BDS (5 years) - Dentist
• BAMS (5.5 years) - Ayurveda
• BHMS (5.5 years) - Homeopathy
• BSc Nursing (4 years)

<strong>Top Colleges:</strong>
• AIIMS Delhi, PGIMER, CMC Vellore
• Fees: ₹1,000-₹2,00,000/year (govt)
• Stipend during internship: ₹20,000+/month`,
			langdetect.Marathi: `<h3>⚕️ NEET (National Eligibility cum Entrance Test)</h3>

<strong>परीक्षा पद्धत:</strong>
• 180 प्रश्न, 720 गुण
• Physics, Chemistry, Biology

<strong>पात्रता:</strong>
• 10+2 PCB सह

<strong>Medical Courses:</strong>
• MBBS - डॉक्टर
• BDS - दंतचिकित्सक
• BAMS - आयुर्वेद
• BHMS - होमिओपॅथी

<strong>Top Colleges:</strong> AIIMS Delhi, PGIMER`,
			langdetect.Hindi: `<h3>NEET - National Eligibility cum Entrance Test</h3>
<strong>Exam:</strong> 180 questions, 720 marks
<strong>Subjects:</strong> Physics, Chemistry, Biology
<strong>Courses:</strong> MBBS, BDS, BAMS, BHMS, Nursing
<strong>Top Colleges:</strong> AIIMS, PGIMER, CMC`,
		},
	},
	{
		Key:      "army",
		Category: "career",
		Keywords: []string{"army", "defence", "military", "nda", "cds", "ssb", "afcat", "air force", "navy", "territorial army"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎖️ Indian Defence Forces Careers</h3>

<strong>Entry Options:</strong>
<b>1. NDA (National Defence Academy)</b> - 10+2 pass, Age 16.5-19.5, Stipend ₹56,100+
<b>2. CDS (Combined Defence Services)</b> - Graduate, Age 20-24, Written + SSB Interview
<b>3. AFCAT (Air Force)</b> - Graduate, entries in Flying, Technical, Ground Duty
<b>4. Indian Navy</b> - 10+2 (PCM) or Graduate

<strong>SSB Interview Process:</strong>
• Day 1: Screening (OIR, PP&DT)
• Day 2-4: Psychological Tests
• Day 5: Conference

<strong>Physical Standards:</strong>
• Height: 157 cm (varies)
• 1.6 km run: 6 minutes 30 seconds
• Eye vision: 6/6 (correctable)

<strong>Salary (Lieutenant):</strong> ₹56,100 + Allowances (DA, HRA, TA)
<strong>Total Benefits:</strong> Free accommodation, medical, pension`,
			langdetect.Marathi: `<h3>🎖️ भारतीय सेना</h3>

<strong>प्रवेश पर्याय:</strong>
• NDA (10+2) - वय 16.5-19.5 वर्ष
• CDS (पदवीधर) - वय 20-24 वर्ष
• AFCAT (वायुसेना)

<strong>SSB प्रक्रिया:</strong> 5 दिवस

<strong>शारीरिक:</strong> उंची 157 सेमी, 1.6 किमी धावणे

<strong>पगार:</strong> ₹56,100 + भत्ते`,
			langdetect.Hindi: `<h3>Indian Defence Forces</h3>
<strong>Entries:</strong> NDA, CDS, AFCAT, TA
<strong>Age:</strong> 16.5-24 years
<strong>Process:</strong> Written + SSB (5 days)
<strong>Physical:</strong> 157cm height, 1.6km run
<strong>Salary:</strong> ₹56,100 + allowances`,
		},
	},
	{
		Key:      "commerce",
		Category: "career",
		Keywords: []string{"commerce", "bcom", "bba", "mba", "ca", "cma", "cs", "accountant", "banking", "finance"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>💼 Commerce & Finance Careers</h3>

<strong>Popular Courses:</strong>
<b>1. B.Com</b> - 3 years, Accounting, Economics, Tax. Salary: ₹3-8 LPA
<b>2. BBA</b> - 3 years, Management, Marketing, Finance. Salary: ₹4-12 LPA
<b>3. CA (Chartered Accountant)</b> - 4-5 years including articleship. Salary: ₹6-20 LPA
<b>4. CMA</b> - 2-3 years. Salary: ₹5-15 LPA
<b>5. CS (Company Secretary)</b> - 2-3 years. Salary: ₹4-12 LPA
<b>6. MBA</b> - 2 years, Finance/Marketing/HR/Operations. Salary: ₹8-50 LPA

<strong>Banking Careers:</strong>
• PO (Probationary Officer) - ₹8-15 LPA
• Clerk - ₹4-8 LPA
• Exams: SBI PO, IBPS PO, RBI`,
			langdetect.Marathi: `<h3>💼 व्यापार आणि वित्त</h3>

<strong>लोकप्रिय कोर्सेस:</strong>
• B.Com - 3 वर्ष, ₹3-8 LPA
• BBA - 3 वर्ष, ₹4-12 LPA
• CA - 4-5 वर्ष, ₹6-20 LPA
• MBA - 2 वर्ष, ₹8-50 LPA

<strong>Banking:</strong> PO, Clerk - ₹4-15 LPA`,
			langdetect.Hindi: `<h3>Commerce Careers</h3>
<strong>Courses:</strong> B.Com, BBA, CA, CMA, MBA
<strong>Salary:</strong> ₹3-50 LPA
<strong>Banking:</strong> PO, Clerk positions`,
		},
	},
	{
		Key:      "arts",
		Category: "career",
		Keywords: []string{"arts", "ba", "journalism", "psychology", "sociology", "history", "language", "law", "llb"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎭 Arts & Humanities Careers</h3>

<strong>Popular Courses:</strong>
<b>1. BA</b> - 3 years. History, Political Science, Sociology, Psychology, Economics. Salary: ₹3-8 LPA
<b>2. BA LLB (Law)</b> - 5 years. Top: NLSIU, NALSAR, NUJS. Salary: ₹5-15 LPA
<b>3. Journalism & Mass Communication</b> - 3 years. Top: IIMC, Jamia, ACJ. Salary: ₹4-12 LPA
<b>4. Psychology</b> - BSc/MSc. Salary: ₹4-20 LPA (Clinical Psychologist)
<b>5. Hotel Management</b> - 3-4 years. Top: IHM Mumbai, Delhi. Salary: ₹4-15 LPA
<b>6. Fashion Design</b> - 3-4 years. Top: NIFT, FDDI. Salary: ₹4-20 LPA

<strong>Career Options:</strong>
• Teacher/Professor, Civil Services, Content Writer, Social Worker, Law`,
			langdetect.Marathi: `<h3>🎭 कला आणि मानववंशशास्त्र</h3>

<strong>कोर्सेस:</strong>
• BA - 3 वर्ष
• BA LLB - 5 वर्ष
• Journalism - 3 वर्ष
• Psychology
• Hotel Management

<strong>पगार:</strong> ₹3-20 LPA`,
			langdetect.Hindi: `<h3>Arts Careers</h3>
<strong>Courses:</strong> BA, BA LLB, Journalism, Psychology
<strong>Salary:</strong> ₹3-20 LPA`,
		},
	},
	{
		Key:      "preparation",
		Category: "guidance",
		Keywords: []string{"preparation", "study", "how to prepare", "strategy", "tips", "plan", "timetable", "tenth", "twelfth"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📚 Exam Preparation Strategy</h3>

<strong>General Tips:</strong>
<b>1. Understand the Syllabus</b> - download official syllabus, know weightage
<b>2. Create a Study Plan</b> - 6-8 hours effective study daily, weekly chapters, monthly revision
<b>3. Quality Study Material</b> - NCERT first, then reference books, finally test series
<b>4. Practice is Key</b> - previous year questions (PYQs), regular mock tests, analyze mistakes
<b>5. Current Affairs</b> - daily newspaper (The Hindu, Indian Express), monthly magazines
<b>6. Revision Strategy</b> - first within 7 days, second within 30 days, final before exam
<b>7. Stay Healthy</b> - 7-8 hours sleep, regular exercise, healthy diet

<strong>For 10th/12th Students:</strong>
• Focus on basics, NCERT is sufficient, previous year board papers`,
			langdetect.Marathi: `<h3>📚 परीक्षा तयारी</h3>

<strong>सामान्य टिप्स:</strong>
• अभ्यासक्रम समजून घेणे
• दैनिक 6-8 तास अभ्यास
• मॉक टेस्ट घेणे
• चालू घडामोडी वाचणे

<strong>शारीरिक:</strong> 7-8 तास झोप, व्यायाम`,
			langdetect.Hindi: `<h3>Exam Preparation</h3>
<strong>Tips:</strong>
- Understand syllabus
- 6-8 hours daily study
- Mock tests
- Current affairs
- Health: sleep, exercise`,
		},
	},
	{
		Key:      "salary",
		Category: "guidance",
		Keywords: []string{"salary", "package", "income", "earn", "money", "scope", "future", "demand"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>💰 Career Salary & Future Scope</h3>

<strong>High Salary Careers (₹10-50+ LPA):</strong>
• Software Engineer (IT) - ₹8-40 LPA
• Data Scientist - ₹8-35 LPA
• Doctor (MBBS) - ₹6-50+ LPA
• Investment Banker - ₹12-50 LPA
• MBA (Top IIMs) - ₹15-50 LPA
• Pilot - ₹15-80 LPA

<strong>Medium Salary Careers (₹5-15 LPA):</strong>
• Teacher/Professor, Accountant (CA), Graphic Designer, Digital Marketer, Journalist

<strong>Government Jobs (₹4-20 LPA):</strong>
• Bank PO, SSC Jobs, State PSC, UPSC (IAS/IPS), Defence

<strong>Future Growth Sectors:</strong>
• Artificial Intelligence & Machine Learning
• Data Science & Analytics
• Cloud Computing, Cybersecurity
• Renewable Energy, Healthcare Technology
• E-commerce & Digital Marketing

<strong>Highest Demanded Skills 2024:</strong>
1. Python Programming
2. Data Analysis
3. Digital Marketing
4. Cloud Computing
5. AI/ML`,
			langdetect.Marathi: `<h3>💰 पगार आणि भविष्य</h3>

<strong>उच्च पगार:</strong>
• Software Engineer - ₹8-40 LPA
• Data Scientist - ₹8-35 LPA
• Doctor - ₹6-50 LPA
• MBA - ₹15-50 LPA

<strong>सरकारी नोकऱ्या:</strong>
• Bank PO - ₹8-15 LPA
• IAS/IPS - ₹6-25 LPA

<strong>भविष्यातील वाढ:</strong>
• AI/ML, Data Science
• Cloud Computing
• Cybersecurity`,
			langdetect.Hindi: `<h3>Salary & Scope</h3>
<strong>High Salary:</strong> ₹10-50+ LPA (IT, Doctor, MBA)
<strong>Medium:</strong> ₹5-15 LPA (Teacher, CA, Designer)
<strong>Government:</strong> ₹4-20 LPA
<strong>Future:</strong> AI, Data Science, Cloud`,
		},
	},
	{
		Key:      "college",
		Category: "college",
		Keywords: []string{"college", "university", "institute", "admission", "fees", "best", "top", "rank"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎓 Top Colleges in India</h3>

<strong>Engineering (IITs):</strong>
• IIT Bombay - ₹2,09,050/year
• IIT Delhi - ₹2,23,000/year
• IIT Madras - ₹2,20,000/year

<strong>Medical:</strong>
• AIIMS Delhi - ₹1,628/year
• PGIMER Chandigarh - ₹3,000/year
• CMC Vellore - ₹45,000/year

<strong>Commerce:</strong>
• SRCC Delhi - ₹18,000/year
• St. Xavier's Mumbai - ₹1,16,000/year

<strong>Law:</strong>
• NLSIU Bangalore - ₹2,80,000/year
• NALSAR Hyderabad - ₹2,50,000/year

<strong>Management:</strong>
• IIM Ahmedabad - ₹23,00,000/year
• IIM Bangalore - ₹25,00,000/year

<strong>Admission Tips:</strong>
• Apply early, prepare for entrance exams, check eligibility, consider location and fees`,
			langdetect.Marathi: `<h3>🎓 महाविद्यालये</h3>

<strong>Engineering:</strong> IIT Bombay, Delhi, Madras
<strong>Medical:</strong> AIIMS Delhi, PGIMER
<strong>Commerce:</strong> SRCC, St. Xavier's
<strong>Law:</strong> NLSIU, NALSAR
<strong>Management:</strong> IIM A, B, C`,
			langdetect.Hindi: `<h3>Top Colleges</h3>
<strong>Engineering:</strong> IITs
<strong>Medical:</strong> AIIMS, PGIMER
<strong>Commerce:</strong> SRCC, Xavier's
<strong>Law:</strong> NLSIU, NALSAR
<strong>Management:</strong> IIMs`,
		},
	},
	{
		Key:      "course",
		Category: "course",
		Keywords: []string{"course", "certificate", "diploma", "degree", "training", "certification", "online", "short term"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📖 Popular Courses After 12th</h3>

<strong>Science Stream (PCM):</strong>
• B.Tech/BE - 4 years
• B.Sc Physics/Chemistry/Maths - 3 years
• B.Arch - 5 years, BCA - 3 years

<strong>Science Stream (PCB):</strong>
• MBBS - 5.5 years, BDS - 5 years
• BAMS/BHMS - 5.5 years
• BSc Nursing, Pharmacy - 4 years

<strong>Commerce Stream:</strong>
• B.Com, BBA - 3 years
• CA/CMA/CS - 3-5 years

<strong>Arts Stream:</strong>
• BA - 3 years, BA LLB - 5 years
• BFA - 4 years, Journalism - 3 years

<strong>Online Courses (Free/Cheap):</strong>
• Python - Coursera, edX
• Digital Marketing - Google Digital Garage
• Data Science - Kaggle, Udemy
• Web Development - freeCodeCamp

<strong>Short-term Certificates:</strong>
• TEFL, Digital Marketing, Graphic Design, Data Analytics - 3-6 months`,
			langdetect.Marathi: `<h3>📖 कोर्सेस</h3>

<strong>Science PCM:</strong> B.Tech - 4 वर्ष, B.Sc - 3 वर्ष, BCA - 3 वर्ष
<strong>Science PCB:</strong> MBBS - 5.5 वर्ष, BAMS/BHMS - 5.5 वर्ष
<strong>Commerce:</strong> B.Com, BBA - 3 वर्ष, CA - 4-5 वर्ष
<strong>Arts:</strong> BA - 3 वर्ष, BA LLB - 5 वर्ष
<strong>Online:</strong> Python, Digital Marketing`,
			langdetect.Hindi: `<h3>Courses After 12th</h3>
<strong>Science:</strong> B.Tech, MBBS, B.Sc
<strong>Commerce:</strong> B.Com, BBA, CA
<strong>Arts:</strong> BA, BA LLB
<strong>Online:</strong> Python, Digital Marketing`,
		},
	},
	{
		Key:      "job",
		Category: "job",
		Keywords: []string{"job", "placement", "internship", "hiring", "vacancy", "recruitment", "career", "work"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>💼 Job & Career Guidance</h3>

<strong>How to Get a Job:</strong>
<b>1. Build Skills</b> - technical skills, communication, problem-solving, teamwork
<b>2. Create Professional Profile</b> - LinkedIn, resume, portfolio
<b>3. Apply Strategically</b> - company websites, job portals (Naukri, Indeed, Monster), campus placements
<b>4. Prepare for Interviews</b> - research company, mock interviews, dress professionally

<strong>High-Demand Jobs 2024:</strong>
• Software Developer, Data Analyst, Digital Marketer
• Project Manager, Cybersecurity Expert, Cloud Engineer

<strong>Internship Platforms:</strong>
• Internshala, LinkedIn, LetsIntern

<strong>Average Starting Salaries:</strong>
• IT Sector: ₹4-10 LPA
• Finance: ₹5-12 LPA
• Marketing: ₹4-8 LPA
• Core Jobs: ₹3-7 LPA`,
			langdetect.Hindi: `<h3>Jobs</h3>
<strong>Tips:</strong> Build skills, LinkedIn, Resume
<strong>High Demand:</strong> Developer, Data Analyst
<strong>Platforms:</strong> Naukri, Indeed, Internshala`,
		},
	},
	{
		Key:      "scholarship",
		Category: "guidance",
		Keywords: []string{"scholarship", "fellowship", "grant", "financial aid", "free education", "merit"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎁 Scholarships in India</h3>

<strong>Central Government:</strong>
• National Means-cum-Merit Scholarship - ₹12,000/year
• Central Sector Scheme - ₹20,000/year
• Prime Minister's Scholarship - ₹2,50,000/year

<strong>Private/NGO:</strong>
• Tata Trusts Scholarship
• KVPY (Kishore Vaigyanik Protsahan Yojana) - ₹1,00,000/year
• INSPIRE Scholarship - ₹80,000/year

<strong>For Minorities:</strong>
• Pre-Matric, Post-Matric, Merit-cum-Means Scholarships

<strong>How to Apply:</strong>
1. Visit National Scholarship Portal (scholarships.gov.in)
2. Check eligibility, gather documents
3. Apply before deadline

<strong>Tips:</strong> start early, keep documents ready, apply to multiple scholarships`,
			langdetect.Marathi: `<h3>🎁 शिष्यवृत्त्या</h3>

<strong>केंद्रीय:</strong>
• National Means-cum-Merit - ₹12,000/year

<strong>खाजगी:</strong>
• Tata Trusts, KVPY, INSPIRE

<strong>Apply:</strong> scholarships.gov.in`,
		},
	},
	{
		Key:      "exams",
		Category: "exam",
		Keywords: []string{"exam", "competitive", "entrance", "test", "ssc", "rrb", "bank po", "clat", "gate"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📝 Competitive Exams in India</h3>

<strong>Banking Exams:</strong>
• SBI PO - Graduate, Age 21-30
• IBPS PO - Graduate, Age 20-30
• RBI Grade B - Graduate, Age 21-30

<strong>SSC Exams:</strong>
• SSC CGL - Graduate, Age 18-32
• SSC CHSL - 10+2, Age 18-27
• SSC MTS - 10th, Age 18-25

<strong>Railway Exams:</strong>
• RRB NTPC - 10+2, Age 18-33
• RRB Group D - 10th, Age 18-33

<strong>Other Exams:</strong>
• CLAT - Law, GATE - Engineering PG
• CAT - MBA entrance, XAT - MBA (XLRI)

<strong>Exam Pattern (General):</strong>
• Tier 1: Objective, Tier 2: Mains/Descriptive, Tier 3: Skill Test/Interview

<strong>Preparation Time:</strong>
• Bank PO: 6-12 months, SSC: 8-12 months, Railway: 6-10 months`,
			langdetect.Marathi: `<h3>📝 स्पर्धात्मक परीक्षा</h3>

<strong>Banking:</strong> SBI PO, IBPS PO, Clerk
<strong>SSC:</strong> CGL, CHSL, MTS
<strong>Railway:</strong> NTPC, Group D
<strong>Law:</strong> CLAT
<strong>Management:</strong> CAT, XAT`,
			langdetect.Hindi: `<h3>Competitive Exams</h3>
<strong>Banking:</strong> PO, Clerk
<strong>SSC:</strong> CGL, CHSL
<strong>Railway:</strong> NTPC, Group D
<strong>Other:</strong> CLAT, GATE, CAT`,
		},
	},
	{
		Key:      "after10",
		Category: "guidance",
		Keywords: []string{"after 10th", "10th pass", "class 10", "career after 10"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎓 Career Options After 10th</h3>

<strong>Science Stream (PCB):</strong> Medical (NEET) preparation, Paramedical courses
<strong>Science Stream (PCM):</strong> Engineering (IIT-JEE), Polytechnic (Diploma), Architecture
<strong>Commerce Stream:</strong> Commerce with/without Maths
<strong>Arts/Humanities:</strong> Humanities, Fine Arts, Music/Dance

<strong>Vocational Courses:</strong>
• ITI (Industrial Training Institute)
• Diploma in Engineering, Fashion Designing
• Hotel Management, Computer Applications

<strong>Government Jobs after 10th:</strong>
• SSC GD, Army (10+2 entries), Police, Railway Group D

<strong>Skills to Develop:</strong>
• Basic computer skills, English communication, Mathematics, soft skills`,
			langdetect.Marathi: `<h3>10 वी नंतर</h3>

<strong>Science:</strong> PCM, PCB
<strong>Commerce / Arts</strong>
<strong>Vocational:</strong> ITI, Polytechnic`,
			langdetect.Hindi: `<h3>After 10th</h3>
<strong>Streams:</strong> Science, Commerce, Arts
<strong>Vocational:</strong> ITI, Diploma
<strong>Jobs:</strong> SSC GD, Army`,
		},
	},
	{
		Key:      "after12",
		Category: "guidance",
		Keywords: []string{"after 12th", "12th pass", "class 12", "career after 12", "what to do after"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎓 Career Options After 12th</h3>

<strong>Science (PCB - Medical):</strong>
• MBBS, BDS, BAMS, BHMS, B.V.Sc
• Nursing, Pharmacy, Physiotherapy, Paramedical

<strong>Science (PCM - Engineering):</strong>
• B.Tech/BE in various branches
• B.Arch, B.Sc, BCA

<strong>Commerce:</strong>
• B.Com, BBA, BAF
• CA, CS, CMA (Foundation)

<strong>Arts:</strong>
• BA in various subjects
• BA LLB, BFA, BJMC, Psychology

<strong>Other Options:</strong>
• NDA (10+2 entry), Hotel Management (IHM)
• Fashion Design (NIFT), Animation, Gaming

<strong>Diploma Courses:</strong>
• Polytechnic Diplomas, ITI Trades, Vocational Training`,
			langdetect.Marathi: `<h3>12 वी नंतर</h3>

<strong>Science PCB:</strong> MBBS, BDS, BAMS
<strong>Science PCM:</strong> B.Tech, B.Arch
<strong>Commerce:</strong> B.Com, BBA, CA
<strong>Arts:</strong> BA, BA LLB, Journalism
<strong>Other:</strong> NDA, Hotel Management`,
			langdetect.Hindi: `<h3>After 12th</h3>
<strong>Science:</strong> MBBS, B.Tech
<strong>Commerce:</strong> B.Com, BBA, CA
<strong>Arts:</strong> BA, Law
<strong>Other:</strong> NDA, Hotel Management`,
		},
	},
	{
		Key:      "skill",
		Category: "guidance",
		Keywords: []string{"skill", "skills", "ability", "learn", "training", "improve", "develop"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🛠️ Important Skills for Success</h3>

<strong>Technical Skills:</strong>
• Programming (Python, Java, C++)
• Data Analysis (Excel, SQL, Tableau)
• Digital Marketing, Cloud Computing
• AI/Machine Learning basics

<strong>Soft Skills:</strong>
• Communication, Problem Solving, Critical Thinking
• Time Management, Teamwork, Adaptability

<strong>How to Develop Skills:</strong>
<b>1. Online Courses</b> - Coursera, edX, Udemy, freeCodeCamp, Khan Academy
<b>2. Practice</b> - personal projects, internships, freelancing
<b>3. Certifications</b> - Google Digital Garage, Microsoft Learn, AWS Free Tier

<strong>Top Skills by Industry:</strong>
• IT: Python, Cloud, Cybersecurity
• Finance: Excel, Financial Modeling
• Marketing: SEO, Content, Analytics`,
			langdetect.Hindi: `<h3>Skills</h3>
<strong>Technical:</strong> Python, Data Analysis
<strong>Soft:</strong> Communication, Problem Solving
<strong>Learn:</strong> Online courses, Practice`,
		},
	},
	{
		Key:      "internship",
		Category: "job",
		Keywords: []string{"internship", "intern", "training", "work experience", "summer"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>💼 Internship Guide</h3>

<strong>Why Internships Matter:</strong>
• Real work experience, industry exposure
• Resume building, network building, chance of pre-placement

<strong>Where to Find:</strong>
• Internshala, LinkedIn, College TPO
• Company websites, AngelList (startups)

<strong>Types:</strong>
• Summer Internship (2-3 months)
• Winter Internship (1-2 months)
• Virtual/Remote Internship

<strong>Stipend (Average):</strong>
• IT/Software: ₹5,000-25,000/month
• Marketing: ₹3,000-15,000/month
• Finance: ₹5,000-20,000/month

<strong>Top Companies for Internships:</strong>
• Google, Microsoft, Amazon, startups, investment banks`,
			langdetect.Marathi: `<h3>💼 इंटर्नशिप</h3>

<strong>प्लॅटफॉर्म:</strong>
• Internshala
• LinkedIn

<strong>प्रकार:</strong> Summer, Winter, Virtual

<strong>स्टायपेंड:</strong> ₹3,000-25,000/महिना`,
		},
	},
	{
		Key:      "gate",
		Category: "exam",
		Keywords: []string{"gate", "gate exam", "gate result", "gate score", "psu"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>🎯 GATE Exam (Graduate Aptitude Test in Engineering)</h3>

<strong>About GATE:</strong>
• For Engineering PG admissions
• Also for PSU recruitment
• Conducted by IIT (rotates yearly)

<strong>Eligibility:</strong>
• B.Tech/BE graduate (or final year), no age limit

<strong>Exam Pattern:</strong>
• 65 questions, 100 marks
• General Aptitude: 10, Technical: 55
• Duration: 3 hours

<strong>PSU Recruitment through GATE:</strong>
• ONGC, IOCL, BHEL, NTPC
• Salary: ₹8-20 LPA

<strong>Top Institutes for PG:</strong>
• IIT Bombay, Delhi, Madras, IISc Bangalore

<strong>Preparation:</strong>
• 8-12 months recommended, focus on basics, previous papers, mock tests`,
			langdetect.Hindi: `<h3>GATE</h3>
<strong>For:</strong> Engineering PG, PSU jobs
<strong>Salary:</strong> ₹8-20 LPA`,
		},
	},
	{
		Key:      "clat",
		Category: "exam",
		Keywords: []string{"clat", "law exam", "llb", "llm", "legal", "lawyer"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>⚖️ CLAT (Common Law Admission Test)</h3>

<strong>About CLAT:</strong>
• For 5-year integrated LLB courses, also LLM
• 22 NLUs participate

<strong>Eligibility:</strong>
• 10+2 pass (45% General, 40% SC/ST), no upper age limit

<strong>Exam Pattern:</strong>
• 150 questions, 150 marks
• English, GK, Legal Reasoning, Logical, Quantitative
• Duration: 2 hours

<strong>Top NLUs:</strong>
• NLSIU Bangalore, NALSAR Hyderabad, NUJS Kolkata

<strong>Career Options:</strong>
• Corporate Lawyer - ₹8-50 LPA
• Judge (after LLB + Judiciary), Legal Analyst, Litigation

<strong>Salary:</strong>
• Freshers: ₹5-12 LPA
• After 5 years: ₹15-40+ LPA`,
			langdetect.Marathi: `<h3>⚖️ CLAT</h3>

<strong>कोर्स:</strong> 5 वर्ष LLB

<strong>Top NLUs:</strong> Bangalore, Hyderabad, Kolkata

<strong>पगार:</strong> ₹5-50 LPA`,
			langdetect.Hindi: `<h3>CLAT</h3>
<strong>Course:</strong> 5-year LLB
<strong>Top:</strong> NLSIU, NALSAR, NUJS
<strong>Salary:</strong> ₹5-50 LPA`,
		},
	},
	{
		Key:      "diploma",
		Category: "course",
		Keywords: []string{"diploma", "polytechnic", "iti", "vocational", "certificate course"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📜 Diploma & Vocational Courses</h3>

<strong>Polytechnic Diplomas (3 years):</strong>
• Civil, Mechanical, Electrical Engineering
• Computer Science, Electronics & Communication

<strong>After 10th ITI Courses:</strong>
• Electrician, Fitter, Welder, Carpenter, Plumber, Mechanic

<strong>Short-term Courses (6 months-1 year):</strong>
• Computer Hardware, Web Designing, Tally
• Spoken English, Beautician, Tailoring

<strong>Career Opportunities:</strong>
• Junior Engineer - ₹3-8 LPA
• ITI Trades - ₹3-6 LPA
• Skilled Worker - ₹3-10 LPA

<strong>Benefits:</strong>
• Quick job opportunities, practical skills, less duration than degree`,
			langdetect.Marathi: `<h3>📜 डिप्लोमा</h3>

<strong>Polytechnic:</strong> 3 वर्ष
• Civil, Mechanical, Electrical

<strong>ITI:</strong>
• Electrician, Fitter, Welder

<strong>Short-term:</strong> Hardware, Web Designing`,
		},
	},
	{
		Key:      "mba",
		Category: "course",
		Keywords: []string{"mba", "master of business", "management", "pgdm", "executive mba"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>📈 MBA (Master of Business Administration)</h3>

<strong>About MBA:</strong>
• Duration: 2 years
• Full-time, Part-time, Executive options

<strong>Top IIMs:</strong>
• IIM Ahmedabad (₹25 LPA avg), Bangalore, Calcutta, Lucknow, Indore

<strong>Other Top B-Schools:</strong>
• XLRI Jamshedpur, FMS Delhi, SP Jain Mumbai, ISB Hyderabad, Symbiosis

<strong>Specializations:</strong>
• Finance, Marketing, HR, Operations
• Business Analytics, Digital Marketing, Entrepreneurship

<strong>Entrance Exams:</strong>
• CAT, XAT, SNAP, MAT, CMAT

<strong>Eligibility:</strong>
• Graduate in any stream (50%), work experience not mandatory for most

<strong>Salary:</strong>
• Top IIMs: ₹20-50 LPA
• Other IIMs: ₹12-25 LPA
• Private B-Schools: ₹8-15 LPA`,
			langdetect.Marathi: `<h3>📈 MBA</h3>

<strong>Top:</strong> IIM A, B, C, L
<strong>Duration:</strong> 2 वर्ष

<strong>Specializations:</strong> Finance, Marketing, HR

<strong>पगार:</strong> ₹12-50 LPA`,
			langdetect.Hindi: `<h3>MBA</h3>
<strong>Top:</strong> IIMs, XLRI, FMS
<strong>Duration:</strong> 2 years
<strong>Salary:</strong> ₹12-50 LPA`,
		},
	},
	{
		Key:      "teaching",
		Category: "career",
		Keywords: []string{"teacher", "teaching", "professor", "education", "tutor", "coaching"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>👨‍🏫 Teaching & Education Careers</h3>

<strong>School Teaching:</strong>
• TGT (Trained Graduate Teacher) - 10+2 + B.Ed
• PGT (Post Graduate Teacher) - Post Graduate + B.Ed
• Salary: ₹4-12 LPA

<strong>Higher Education:</strong>
• Assistant Professor - ₹8-15 LPA
• Associate Professor - ₹15-25 LPA
• Professor - ₹20-50 LPA

<strong>Entrance Exams:</strong>
• CTET, State TET
• UGC NET (for Assistant Professor), SET

<strong>Coaching/Private Tutor:</strong>
• Average: ₹500-2000/hour
• Online tutoring: ₹300-1000/hour

<strong>Online Teaching:</strong>
• Byju's, Unacademy, Vedantu
• Salary: ₹6-20 LPA`,
			langdetect.Marathi: `<h3>👨‍🏫 शिक्षण</h3>

<strong>School:</strong> TGT, PGT - ₹4-12 LPA
<strong>College:</strong> Professor - ₹8-50 LPA
<strong>Coaching:</strong> ₹500-2000/hour`,
			langdetect.Hindi: `<h3>Teaching Careers</h3>
<strong>School:</strong> TGT, PGT
<strong>College:</strong> Professor
<strong>Salary:</strong> ₹4-50 LPA`,
		},
	},
	{
		Key:      "it",
		Category: "career",
		Keywords: []string{"it job", "software", "developer", "programmer", "coding", "tech job", "google", "amazon"},
		Text: map[langdetect.Language]string{
			langdetect.English: `<h3>💻 IT & Software Careers</h3>

<strong>Top IT Companies:</strong>
• Google, Microsoft, Amazon, Meta
• TCS, Infosys, Wipro, HCL
• Startup ecosystem

<strong>Job Roles:</strong>
• Software Developer/Engineer, Full Stack Developer
• Data Scientist, Machine Learning Engineer
• DevOps Engineer, Cloud Engineer
• Cybersecurity Expert, QA Engineer

<strong>Required Skills:</strong>
• Programming: Python, Java, JavaScript, C++
• Web: HTML, CSS, React, Angular
• Database: SQL, MongoDB
• Tools: Git, Docker
• Cloud: AWS, Azure, GCP

<strong>Salary (India):</strong>
• Fresher: ₹4-10 LPA
• 2-3 years: ₹8-18 LPA
• 5+ years: ₹15-40+ LPA
• Top companies: ₹20-80+ LPA

<strong>Preparation:</strong>
• Data Structures & Algorithms, System Design, projects`,
			langdetect.Marathi: `<h3>💻 IT</h3>

<strong>कंपन्या:</strong> Google, Microsoft, TCS

<strong>नोकर्या:</strong> Developer, Data Scientist

<strong>कौशल्य:</strong> Python, Java, JavaScript

<strong>पगार:</strong> ₹4-80 LPA`,
			langdetect.Hindi: `<h3>IT Careers</h3>
<strong>Companies:</strong> Google, Microsoft, Amazon
<strong>Roles:</strong> Developer, Data Scientist
<strong>Skills:</strong> Python, Java, JavaScript
<strong>Salary:</strong> ₹4-80+ LPA`,
		},
	},
}
