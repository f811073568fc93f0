package sentiment

import "testing"

func TestLabelForThresholds(t *testing.T) {
	tests := []struct {
		compound float64
		want     Label
	}{
		{0.5, Positive},
		{0.0001, Positive},
		{0, Neutral},
		{-0.0001, Negative},
		{-0.2, Negative},
	}
	for _, tt := range tests {
		if got := LabelFor(tt.compound); got != tt.want {
			t.Errorf("LabelFor(%v) = %s, want %s", tt.compound, got, tt.want)
		}
	}
}

func TestEmptyTextIsNeutral(t *testing.T) {
	s := NewLexiconScorer()
	scores, err := s.Polarity("")
	if err != nil {
		t.Fatalf("Polarity: %v", err)
	}
	if scores.Compound != 0 {
		t.Errorf("empty text compound = %v, want 0", scores.Compound)
	}
	if LabelFor(scores.Compound) != Neutral {
		t.Error("empty text must classify Neutral")
	}
}

func TestNoSignalTextIsNeutral(t *testing.T) {
	s := NewLexiconScorer()
	scores, err := s.Polarity("the quarterly committee convened on Tuesday")
	if err != nil {
		t.Fatalf("Polarity: %v", err)
	}
	if scores.Compound != 0 {
		t.Errorf("no-signal compound = %v, want 0", scores.Compound)
	}
}

func TestPositiveText(t *testing.T) {
	s := NewLexiconScorer()
	scores, _ := s.Polarity("An excellent breakthrough brings hope and strong growth")
	if scores.Compound <= 0 {
		t.Errorf("compound = %v, want > 0", scores.Compound)
	}
}

func TestNegativeText(t *testing.T) {
	s := NewLexiconScorer()
	scores, _ := s.Polarity("The crisis worsened as the attack killed dozens")
	if scores.Compound >= 0 {
		t.Errorf("compound = %v, want < 0", scores.Compound)
	}
}

func TestNegationFlips(t *testing.T) {
	s := NewLexiconScorer()
	plain, _ := s.Polarity("the results were good")
	negated, _ := s.Polarity("the results were not good")
	if plain.Compound <= 0 {
		t.Fatalf("plain compound = %v, want > 0", plain.Compound)
	}
	if negated.Compound >= 0 {
		t.Errorf("negated compound = %v, want < 0", negated.Compound)
	}
}

func TestBoosterAmplifies(t *testing.T) {
	s := NewLexiconScorer()
	plain, _ := s.Polarity("a good outcome")
	boosted, _ := s.Polarity("a very good outcome")
	if boosted.Compound <= plain.Compound {
		t.Errorf("boosted %v should exceed plain %v", boosted.Compound, plain.Compound)
	}
}

func TestCompoundBounded(t *testing.T) {
	s := NewLexiconScorer()
	scores, _ := s.Polarity("kill kill kill disaster disaster crisis war death violence chaos panic")
	if scores.Compound < -1 || scores.Compound > 1 {
		t.Errorf("compound %v out of [-1,1]", scores.Compound)
	}
}
