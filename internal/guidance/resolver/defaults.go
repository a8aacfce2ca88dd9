package resolver

import "career-guidance-workers/internal/guidance/langdetect"

// defaultResponses are served when neither exact keyword matching nor the
// TF-IDF index produces a confident hit. They double as a capability menu.
var defaultResponses = map[langdetect.Language]string{
	langdetect.English: `<h3>🤖 I'm here to help with career guidance!</h3>

I can answer questions about:

<b>📋 Competitive Exams:</b> MPSC, UPSC, SSC, Bank PO, RRB, JEE, NEET, GATE, CLAT

<b>🎓 Careers:</b> Engineering, Medical, Commerce, Arts, Defence, IT, Teaching, Banking

<b>📚 Courses:</b> After 10th, After 12th, Degree, Diploma, Online, Certificate

<b>💼 Jobs:</b> Government jobs, Private sector, Internships, Skills required

<b>💰 Salary:</b> Career packages, Future scope, Highest paying jobs

<b>🎓 Colleges:</b> Top institutes, Admissions, Fees, Scholarships

<b>📝 Preparation:</b> Study plans, Strategy, Books, Tips

<b>Other:</b> Career change, Skills, Jobs after graduation

Just ask me anything! Examples:
• What courses after 12th science?
• How to prepare for UPSC?
• Salary of software engineer
• Best colleges for MBA`,

	langdetect.Marathi: `<h3>🤖 मी करिअर मार्गदर्शनासाठी मदत करायला आलो आहे!</h3>

मी खालील विषयाबद्दल उत्तर देऊ शकतो:

<b>📋 परीक्षा:</b> MPSC, UPSC, SSC, Bank PO, JEE, NEET

<b>🎓 करिअर:</b> Engineering, Medical, Commerce, Defence, IT

<b>📚 कोर्स:</b> 10वी/12वी नंतर, Diploma, Degree

<b>💰 पगार:</b> Career packages, Future scope

<b>🎓 महाविद्यालये:</b> Top colleges, Fees

फक्त विचारा!`,

	langdetect.Hindi: `<h3>🤖 Main career guidance ke liye yahan hoon!</h3>

Main in topics ke baare mein bata sakta hoon:

<b>Exams:</b> MPSC, UPSC, SSC, JEE, NEET
<b>Careers:</b> Engineering, Medical, Commerce, IT
<b>Courses:</b> After 10th, 12th
<b>Salary:</b> Career packages
<b>Colleges:</b> Top institutes

Bas poochho!`,
}

// DefaultResponse returns the localized fallback text, English when the
// language has no localized variant.
func DefaultResponse(lang langdetect.Language) string {
	if text, ok := defaultResponses[lang]; ok {
		return text
	}
	return defaultResponses[langdetect.English]
}
