// Package resolver answers free-form career questions against the knowledge
// corpus. Resolution runs three passes: exact keyword containment in corpus
// order, TF-IDF cosine matching above a confidence threshold, and finally a
// localized default response. A query never resolves to an empty answer.
package resolver

import (
	"strings"

	"career-guidance-workers/internal/guidance/knowledge"
	"career-guidance-workers/internal/guidance/langdetect"
)

// MatchType says which pass produced the answer.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchSemantic MatchType = "semantic"
	MatchDefault  MatchType = "default"
)

// Result is a resolved answer with its provenance.
type Result struct {
	Response   string
	Key        string
	Category   string
	Language   langdetect.Language
	MatchType  MatchType
	Similarity float64
}

// Config tunes the resolver.
type Config struct {
	// SimilarityThreshold is the minimum TF-IDF cosine similarity for the
	// semantic pass. Zero means knowledge.DefaultSimilarityThreshold.
	SimilarityThreshold float64
}

// Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	entries   []knowledge.Entry
	index     *knowledge.Index
	detector  *langdetect.Detector
	threshold float64
}

// New builds a resolver over the given corpus. Pass knowledge.Entries for
// the production corpus.
func New(entries []knowledge.Entry, detector *langdetect.Detector, cfg Config) *Resolver {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = knowledge.DefaultSimilarityThreshold
	}
	if detector == nil {
		detector = langdetect.New(langdetect.Config{})
	}
	return &Resolver{
		entries:   entries,
		index:     knowledge.NewIndex(entries),
		detector:  detector,
		threshold: threshold,
	}
}

// Resolve answers message in the requested language. A requested language of
// Auto or English is overridden by script detection, so Devanagari questions
// get localized answers even when the caller forgot to set the language. An
// explicit Hindi or Marathi request is honored as-is.
func (r *Resolver) Resolve(message string, lang langdetect.Language) Result {
	message = strings.ToLower(strings.TrimSpace(message))

	lang = langdetect.Normalize(string(lang))
	if lang == langdetect.Auto || lang == langdetect.English {
		if detected := r.detector.Detect(message); detected != langdetect.English {
			lang = detected
		} else {
			lang = langdetect.English
		}
	}

	// Exact pass: first keyword containment wins, in corpus order.
	for i := range r.entries {
		e := &r.entries[i]
		for _, kw := range e.Keywords {
			if strings.Contains(message, kw) {
				return Result{
					Response:  e.TextFor(lang),
					Key:       e.Key,
					Category:  e.Category,
					Language:  lang,
					MatchType: MatchExact,
				}
			}
		}
	}

	// Semantic pass: TF-IDF cosine against the corpus.
	if m := r.index.BestMatch(message); m.Entry != nil && m.Similarity > r.threshold {
		return Result{
			Response:   m.Entry.TextFor(lang),
			Key:        m.Entry.Key,
			Category:   m.Entry.Category,
			Language:   lang,
			MatchType:  MatchSemantic,
			Similarity: m.Similarity,
		}
	}

	return Result{
		Response:  DefaultResponse(lang),
		Language:  lang,
		MatchType: MatchDefault,
	}
}
