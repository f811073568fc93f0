// Package topics extracts coarse topics and word-cloud terms from the
// contents of a result set. Extraction is deterministic: TF-IDF term
// weighting, a fixed number of topics seeded by the heaviest terms, and
// co-occurrence ranking for each topic's remaining terms.
package topics

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// TopicCount is the fixed topic decomposition size.
	TopicCount = 5

	// TermsPerTopic is how many top-weighted terms each topic exposes.
	TermsPerTopic = 6

	// MinDocRunes filters out documents too short to carry topical
	// signal before fitting.
	MinDocRunes = 40
)

// ErrCorpusTooSmall signals that topic display should be skipped with a
// notice; it is never fatal.
var ErrCorpusTooSmall = errors.New("not enough article content for topic extraction")

// Topic is one extracted topic: a seed term and its top co-occurring terms.
type Topic struct {
	Label string
	Terms []string
}

// Model is the fitted decomposition.
type Model struct {
	Topics   []Topic
	DocCount int
}

// TermCount is one word-cloud entry.
type TermCount struct {
	Term  string
	Count int
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"from": true, "by": true, "with": true, "about": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"has": true, "have": true, "had": true, "will": true, "would": true,
	"it": true, "its": true, "this": true, "that": true, "these": true,
	"those": true, "he": true, "she": true, "they": true, "we": true, "you": true,
	"his": true, "her": true, "their": true, "our": true, "not": true, "no": true,
	"said": true, "says": true, "more": true, "also": true, "after": true,
	"into": true, "over": true, "than": true, "who": true, "which": true,
	"what": true, "when": true, "where": true, "how": true, "why": true,
	"chars": true, // NewsAPI truncation marker "[+123 chars]"
}

// Extract fits a topic model over docs. Documents shorter than
// MinDocRunes are dropped first; if nothing survives, ErrCorpusTooSmall
// is returned and the caller skips the panel.
func Extract(docs []string) (*Model, error) {
	var kept [][]string
	for _, d := range docs {
		if len([]rune(d)) < MinDocRunes {
			continue
		}
		kept = append(kept, tokenize(d))
	}
	if len(kept) == 0 {
		return nil, ErrCorpusTooSmall
	}

	// Document frequency per term.
	df := make(map[string]int)
	tfs := make([]map[string]int, len(kept))
	for i, words := range kept {
		tf := make(map[string]int)
		for _, w := range words {
			tf[w]++
		}
		tfs[i] = tf
		for w := range tf {
			df[w]++
		}
	}

	// Aggregate TF-IDF weight per term.
	n := float64(len(kept))
	weight := make(map[string]float64)
	for _, tf := range tfs {
		for w, c := range tf {
			weight[w] += float64(c) * math.Log(1+n/float64(df[w]))
		}
	}

	seeds := topByWeight(weight, TopicCount)
	model := &Model{DocCount: len(kept)}
	for _, seed := range seeds {
		model.Topics = append(model.Topics, Topic{
			Label: seed,
			Terms: coTerms(seed, tfs, weight),
		})
	}
	return model, nil
}

// coTerms ranks terms sharing a document with seed by their weight.
func coTerms(seed string, tfs []map[string]int, weight map[string]float64) []string {
	co := make(map[string]float64)
	for _, tf := range tfs {
		if tf[seed] == 0 {
			continue
		}
		for w := range tf {
			if w != seed {
				co[w] += weight[w]
			}
		}
	}
	terms := topByWeight(co, TermsPerTopic-1)
	return append([]string{seed}, terms...)
}

// topByWeight returns the k heaviest terms, ties broken alphabetically
// so extraction is stable across runs.
func topByWeight(weight map[string]float64, k int) []string {
	terms := make([]string, 0, len(weight))
	for w := range weight {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if weight[terms[i]] != weight[terms[j]] {
			return weight[terms[i]] > weight[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}

// TopTerms returns the n most frequent terms across all docs for the
// word cloud. No minimum document length applies here; a cloud over an
// empty corpus is simply empty.
func TopTerms(docs []string, n int) []TermCount {
	counts := make(map[string]int)
	for _, d := range docs {
		for _, w := range tokenize(d) {
			counts[w]++
		}
	}
	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	out := make([]TermCount, 0, len(terms))
	for _, w := range terms {
		out = append(out, TermCount{Term: w, Count: counts[w]})
	}
	return out
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(w) < 3 || stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Key fingerprints a corpus so fitted models can be cached and
// invalidated when the result set changes.
func Key(docs []string) string {
	h := sha256.New()
	for _, d := range docs {
		h.Write([]byte(d))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// Cache memoizes the last fitted model, keyed by corpus fingerprint.
// Refitting on every rerender is the failure mode this exists to avoid.
type Cache struct {
	key   string
	model *Model
	err   error
}

// Fit returns the cached model when the corpus is unchanged, otherwise
// refits and replaces the cache. The error (ErrCorpusTooSmall) is cached
// alongside, so a too-small corpus is not refitted either.
func (c *Cache) Fit(docs []string) (*Model, error) {
	key := Key(docs)
	if key == c.key && (c.model != nil || c.err != nil) {
		return c.model, c.err
	}
	c.key = key
	c.model, c.err = Extract(docs)
	return c.model, c.err
}
