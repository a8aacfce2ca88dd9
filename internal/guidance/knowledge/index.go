package knowledge

import (
	"math"
	"regexp"
	"strings"

	"career-guidance-workers/internal/guidance/langdetect"
)

const (
	// Only the first part of the English text participates in indexing.
	// Keywords carry most of the signal; the body mostly adds noise terms.
	// Counted in characters, not bytes: entry texts open with emoji and
	// rupee signs that would otherwise eat the budget.
	indexTextPrefixLen = 500

	// DefaultSimilarityThreshold is the minimum cosine similarity for a
	// fuzzy match to be trusted over the localized default response.
	DefaultSimilarityThreshold = 0.05
)

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_+\-]+`)

// English stopwords, pruned before term weighting. Unigrams only; bigrams
// are built from the surviving tokens.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "can": {}, "do": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "how": {}, "i": {}, "if": {}, "in": {}, "is": {}, "it": {},
	"me": {}, "my": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"should": {}, "so": {}, "tell": {}, "that": {}, "the": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "this": {}, "to": {}, "was": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {}, "why": {},
	"will": {}, "with": {}, "you": {}, "your": {},
}

// Index is a TF-IDF index over the knowledge corpus. Documents are the
// entries' keyword phrases plus a prefix of their English text. Build it
// once at startup; lookups are read-only and safe for concurrent use.
type Index struct {
	entries []Entry
	docTF   []map[string]float64
	docFreq map[string]int
	idf     map[string]float64
}

// Match is the best-scoring entry for a query.
type Match struct {
	Entry      *Entry
	Similarity float64
}

// NewIndex builds the index over the given entries. Pass Entries for the
// full corpus.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries: entries,
		docTF:   make([]map[string]float64, len(entries)),
		docFreq: make(map[string]int, 512),
	}
	for i, e := range entries {
		text := e.Text[langdetect.English]
		if runes := []rune(text); len(runes) > indexTextPrefixLen {
			text = string(runes[:indexTextPrefixLen])
		}
		doc := strings.Join(e.Keywords, " ") + " " + text
		tf := termFrequencies(tokenize(doc))
		for term := range tf {
			idx.docFreq[term]++
		}
		idx.docTF[i] = tf
	}
	n := len(entries)
	idx.idf = make(map[string]float64, len(idx.docFreq))
	for term, df := range idx.docFreq {
		// Smoothed IDF keeps terms present in every document at a small
		// positive weight instead of zeroing them out.
		idx.idf[term] = math.Log(float64(1+n)/float64(1+df)) + 1
	}
	return idx
}

// BestMatch returns the highest-cosine entry for the query, or a zero
// similarity when the query shares no terms with the corpus.
func (idx *Index) BestMatch(query string) Match {
	queryTF := termFrequencies(tokenize(query))
	if len(queryTF) == 0 {
		return Match{}
	}

	queryVec := make(map[string]float64, len(queryTF))
	for term, tf := range queryTF {
		if w, ok := idx.idf[term]; ok {
			queryVec[term] = tf * w
		}
	}
	if len(queryVec) == 0 {
		return Match{}
	}

	best := Match{}
	bestAt := -1
	for i := range idx.entries {
		score := idx.cosine(queryVec, idx.docTF[i])
		if score > best.Similarity {
			best.Similarity = score
			bestAt = i
		}
	}
	if bestAt >= 0 {
		best.Entry = &idx.entries[bestAt]
	}
	return best
}

func (idx *Index) cosine(queryVec map[string]float64, docTF map[string]float64) float64 {
	dot := 0.0
	docNorm := 0.0
	for term, tf := range docTF {
		w := tf * idx.idf[term]
		docNorm += w * w
		if qw, ok := queryVec[term]; ok {
			dot += qw * w
		}
	}
	if dot == 0 {
		return 0
	}
	queryNorm := 0.0
	for _, qw := range queryVec {
		queryNorm += qw * qw
	}
	return dot / (math.Sqrt(docNorm) * math.Sqrt(queryNorm))
}

// tokenize lowercases, splits on the token pattern, drops stopwords and
// returns unigrams followed by bigrams of adjacent surviving tokens.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	unigrams := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, skip := stopwords[t]; skip {
			continue
		}
		unigrams = append(unigrams, t)
	}
	out := make([]string, len(unigrams), len(unigrams)*2)
	copy(out, unigrams)
	for i := 0; i+1 < len(unigrams); i++ {
		out = append(out, unigrams[i]+" "+unigrams[i+1])
	}
	return out
}

func termFrequencies(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	total := float64(len(tokens))
	for t := range tf {
		tf[t] /= total
	}
	return tf
}
