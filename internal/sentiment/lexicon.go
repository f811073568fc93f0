package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// LexiconScorer is a small VADER-style lexicon scorer: word valences
// summed with negation flips and booster amplification, normalized into
// [-1, 1]. Text with no lexicon hits scores exactly 0 (Neutral).
type LexiconScorer struct{}

// NewLexiconScorer returns the built-in scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// valences roughly follow VADER's scale (-4..4 before normalization).
var valences = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "excellent": 3.2, "best": 3.2, "better": 1.9,
	"win": 2.8, "wins": 2.8, "won": 2.7, "winning": 2.4, "success": 2.7,
	"successful": 2.6, "growth": 1.8, "grow": 1.4, "gains": 1.7, "gain": 1.6,
	"improve": 1.9, "improved": 2.1, "improvement": 1.9, "recovery": 1.8,
	"strong": 2.3, "surge": 1.6, "boost": 1.7, "record": 1.2, "breakthrough": 2.4,
	"hope": 1.9, "hopeful": 2.0, "optimistic": 2.2, "peace": 2.5, "agreement": 1.5,
	"deal": 1.1, "support": 1.7, "benefit": 1.9, "safe": 1.8, "progress": 1.9,
	"celebrate": 2.7, "celebrated": 2.5, "praise": 2.4, "praised": 2.4,
	"thrive": 2.4, "thriving": 2.4, "happy": 2.7, "relief": 1.9, "rescue": 1.6,
	"rescued": 1.9, "innovative": 2.1, "profit": 1.9, "profits": 1.9,
	// negative
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "crisis": -3.1, "disaster": -3.1,
	"war": -2.9, "attack": -2.1, "attacks": -2.1, "kill": -3.7, "killed": -3.5,
	"dead": -3.3, "death": -2.9, "deaths": -2.9, "die": -2.9, "died": -2.8,
	"loss": -1.9, "losses": -1.9, "lose": -2.0, "lost": -1.3, "fail": -2.5,
	"failed": -2.3, "failure": -2.6, "fear": -2.2, "fears": -2.2, "threat": -2.4,
	"threats": -2.4, "risk": -1.1, "risks": -1.1, "crash": -2.6, "collapse": -2.6,
	"fraud": -3.0, "scandal": -2.2, "corruption": -2.7, "violence": -3.1,
	"violent": -2.9, "injured": -2.1, "damage": -2.2, "damaged": -2.0,
	"decline": -1.6, "declined": -1.4, "drop": -1.2, "weak": -1.9, "cuts": -1.3,
	"layoffs": -2.3, "recession": -2.6, "inflation": -1.2, "shortage": -1.7,
	"warning": -1.4, "warns": -1.4, "emergency": -2.2, "toxic": -2.5,
	"lawsuit": -1.6, "ban": -1.6, "banned": -1.8, "protest": -1.2,
	"angry": -2.3, "outrage": -2.7, "chaos": -2.6, "panic": -2.7,
}

// negations flip the valence of the next scored word.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "none": true, "neither": true,
	"nobody": true, "nothing": true, "cannot": true, "cant": true,
	"dont": true, "doesnt": true, "didnt": true, "wont": true, "isnt": true,
	"wasnt": true, "without": true,
}

// boosters amplify or dampen the next scored word.
var boosters = map[string]float64{
	"very": 0.293, "extremely": 0.293, "hugely": 0.293, "incredibly": 0.293,
	"really": 0.2, "highly": 0.2, "deeply": 0.2,
	"slightly": -0.293, "somewhat": -0.2, "barely": -0.293, "marginally": -0.293,
}

// Polarity scores text. It never fails; the error return exists to
// satisfy the collaborator contract shared with remote scorers.
func (s *LexiconScorer) Polarity(text string) (Scores, error) {
	words := tokenize(text)

	var sum float64
	hits := 0
	for i, w := range words {
		v, ok := valences[w]
		if !ok {
			continue
		}
		hits++

		// Look back up to two words for negation and boosting.
		boost := 0.0
		negated := false
		for back := 1; back <= 2 && i-back >= 0; back++ {
			prev := words[i-back]
			if negations[prev] {
				negated = true
			}
			if b, ok := boosters[prev]; ok {
				boost += b
			}
		}

		if v > 0 {
			v += boost
		} else {
			v -= boost
		}
		if negated {
			v = -0.74 * v
		}
		sum += v
	}

	if hits == 0 {
		return Scores{Neutral: 1}, nil
	}
	return Scores{Compound: normalize(sum)}, nil
}

// normalize maps an unbounded valence sum into [-1, 1].
func normalize(sum float64) float64 {
	n := sum / math.Sqrt(sum*sum+15)
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		w = strings.ReplaceAll(w, "'", "")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
