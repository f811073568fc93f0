// Package sentiment defines the polarity-scoring boundary and the label
// thresholds applied to its compound score.
package sentiment

// Label is the article-level sentiment classification.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Scores is the scorer output. Only Compound is consumed downstream; it
// summarizes polarity in [-1, 1], with 0 meaning no signal.
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// Scorer is the external polarity collaborator.
type Scorer interface {
	Polarity(text string) (Scores, error)
}

// LabelFor maps a compound score to a label: >0 Positive, <0 Negative,
// ==0 Neutral.
func LabelFor(compound float64) Label {
	switch {
	case compound > 0:
		return Positive
	case compound < 0:
		return Negative
	default:
		return Neutral
	}
}
