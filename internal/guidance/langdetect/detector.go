// Package langdetect classifies short user utterances as English, Hindi or
// Marathi. It is an intentional heuristic, not a statistical model: it
// counts Devanagari runes and hits against curated indicator word lists.
package langdetect

import "strings"

// Language is a supported response language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"

	// Auto asks the resolver to detect the language itself. The detector
	// never returns Auto.
	Auto Language = "auto"
)

// Normalize maps arbitrary input to a concrete language, defaulting to
// English for anything outside {en, hi, mr, auto}.
func Normalize(code string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case Hindi:
		return Hindi
	case Marathi:
		return Marathi
	case Auto:
		return Auto
	default:
		return English
	}
}

// Config carries the detector's empirical constants. They are deliberate
// tunables, loaded from configuration with these defaults rather than
// buried as literals.
type Config struct {
	MarathiIndicators []string
	HindiIndicators   []string
	// Devanagari rune counts are divided by these weights before being
	// added to the respective scores.
	MarathiDevanagariWeight int
	HindiDevanagariWeight   int
	// If indicator scores are inconclusive, text with more than this
	// fraction of Devanagari runes is classified as Marathi.
	DevanagariRatio float64
}

// DefaultConfig returns the tuned indicator lists and weights.
func DefaultConfig() Config {
	return Config{
		MarathiIndicators: []string{
			"आहे", "आहेत", "मी", "तू", "का", "कसा", "काय", "शी", "ला", "मध्ये",
			"वर", "खाली", "पासून", "पर्यंत", "हा", "हे", "ती", "ते", "कोण",
			"कुठे", "किती", "केव्हा", "मग", "पण", "किंवा", "आणि", "नाही",
			"असे", "अशी", "जसे", "जसा", "करू", "होऊ", "द्यावे", "घ्यावे",
			"बाबत", "संबंधी", "कारण", "साठी", "नंतर", "आधी", "वेळेला",
		},
		HindiIndicators: []string{
			"है", "हैं", "मैं", "तू", "क्या", "कैसा", "कौन", "कहाँ", "कितना",
			"कब", "फिर", "लेकिन", "या", "और", "नहीं", "इस", "उस", "जो", "वो",
			"होगा", "करूंगा", "दूंगा", "लेना", "देना", "के लिए", "में", "पर",
			"से", "तक", "बाद", "पहले", "समय",
		},
		MarathiDevanagariWeight: 3,
		HindiDevanagariWeight:   4,
		DevanagariRatio:         0.30,
	}
}

// Detector is safe for concurrent use after construction.
type Detector struct {
	cfg Config
}

// New builds a detector, filling zero-valued tunables from the defaults.
func New(cfg Config) *Detector {
	def := DefaultConfig()
	if len(cfg.MarathiIndicators) == 0 {
		cfg.MarathiIndicators = def.MarathiIndicators
	}
	if len(cfg.HindiIndicators) == 0 {
		cfg.HindiIndicators = def.HindiIndicators
	}
	if cfg.MarathiDevanagariWeight <= 0 {
		cfg.MarathiDevanagariWeight = def.MarathiDevanagariWeight
	}
	if cfg.HindiDevanagariWeight <= 0 {
		cfg.HindiDevanagariWeight = def.HindiDevanagariWeight
	}
	if cfg.DevanagariRatio <= 0 {
		cfg.DevanagariRatio = def.DevanagariRatio
	}
	return &Detector{cfg: cfg}
}

// Detect classifies text as en, hi or mr. Empty or whitespace-only text is
// English. ASCII-only text is always English, since both scores stay zero
// and the Devanagari ratio is zero.
func (d *Detector) Detect(text string) Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return English
	}

	runes := []rune(text)
	devanagari := 0
	for _, r := range runes {
		if r >= 0x0900 && r <= 0x097F {
			devanagari++
		}
	}

	marathiScore := countIndicators(text, d.cfg.MarathiIndicators) + devanagari/d.cfg.MarathiDevanagariWeight
	hindiScore := countIndicators(text, d.cfg.HindiIndicators) + devanagari/d.cfg.HindiDevanagariWeight

	switch {
	case marathiScore > hindiScore && marathiScore > 0:
		return Marathi
	case hindiScore > marathiScore && hindiScore > 0:
		return Hindi
	case float64(devanagari) > float64(len(runes))*d.cfg.DevanagariRatio:
		return Marathi
	default:
		return English
	}
}

func countIndicators(text string, words []string) int {
	score := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			score++
		}
	}
	return score
}
