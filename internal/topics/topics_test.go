package topics

import (
	"errors"
	"strings"
	"testing"
)

func longDoc(words ...string) string {
	// Pad every doc past MinDocRunes with neutral filler.
	return strings.Join(words, " ") + " " + strings.Repeat("filler ", 10)
}

func TestExtractEmptyCorpus(t *testing.T) {
	if _, err := Extract(nil); !errors.Is(err, ErrCorpusTooSmall) {
		t.Errorf("expected ErrCorpusTooSmall, got %v", err)
	}
}

func TestExtractAllDocsTooShort(t *testing.T) {
	if _, err := Extract([]string{"tiny", "also tiny"}); !errors.Is(err, ErrCorpusTooSmall) {
		t.Errorf("expected ErrCorpusTooSmall, got %v", err)
	}
}

func TestExtractProducesTopics(t *testing.T) {
	docs := []string{
		longDoc("climate", "warming", "emissions", "climate", "policy"),
		longDoc("climate", "energy", "solar", "wind", "emissions"),
		longDoc("election", "votes", "parliament", "election", "coalition"),
	}
	m, err := Extract(docs)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if m.DocCount != 3 {
		t.Errorf("DocCount = %d, want 3", m.DocCount)
	}
	if len(m.Topics) == 0 || len(m.Topics) > TopicCount {
		t.Fatalf("got %d topics, want 1..%d", len(m.Topics), TopicCount)
	}
	for _, topic := range m.Topics {
		if topic.Label == "" {
			t.Error("topic with empty label")
		}
		if len(topic.Terms) == 0 || topic.Terms[0] != topic.Label {
			t.Errorf("topic terms should lead with the seed: %v", topic.Terms)
		}
		if len(topic.Terms) > TermsPerTopic {
			t.Errorf("topic has %d terms, cap is %d", len(topic.Terms), TermsPerTopic)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	docs := []string{
		longDoc("alpha", "beta", "gamma", "alpha"),
		longDoc("beta", "delta", "alpha", "epsilon"),
	}
	m1, err := Extract(docs)
	if err != nil {
		t.Fatal(err)
	}
	m2, _ := Extract(docs)
	if len(m1.Topics) != len(m2.Topics) {
		t.Fatal("topic count differs between runs")
	}
	for i := range m1.Topics {
		if m1.Topics[i].Label != m2.Topics[i].Label {
			t.Errorf("topic %d label differs: %q vs %q", i, m1.Topics[i].Label, m2.Topics[i].Label)
		}
	}
}

func TestTopTerms(t *testing.T) {
	docs := []string{
		"budget budget budget deficit",
		"budget deficit spending",
	}
	terms := TopTerms(docs, 2)
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(terms))
	}
	if terms[0].Term != "budget" || terms[0].Count != 4 {
		t.Errorf("top term = %+v, want budget x4", terms[0])
	}
	if terms[1].Term != "deficit" || terms[1].Count != 2 {
		t.Errorf("second term = %+v, want deficit x2", terms[1])
	}
}

func TestTopTermsEmpty(t *testing.T) {
	if got := TopTerms(nil, 10); len(got) != 0 {
		t.Errorf("expected no terms, got %v", got)
	}
}

func TestTokenizeDropsStopwordsAndShortWords(t *testing.T) {
	words := tokenize("The cat ran to a big parliament, it said so.")
	for _, w := range words {
		if stopwords[w] {
			t.Errorf("stopword %q survived", w)
		}
		if len(w) < 3 {
			t.Errorf("short word %q survived", w)
		}
	}
}

func TestCacheReusesModelForSameCorpus(t *testing.T) {
	docs := []string{longDoc("climate", "energy", "solar")}
	var c Cache

	m1, err := c.Fit(docs)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	m2, err := c.Fit(docs)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if m1 != m2 {
		t.Error("unchanged corpus should return the cached model pointer")
	}
}

func TestCacheInvalidatesOnCorpusChange(t *testing.T) {
	var c Cache
	m1, err := c.Fit([]string{longDoc("climate", "energy")})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	m2, err := c.Fit([]string{longDoc("election", "votes")})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if m1 == m2 {
		t.Error("changed corpus must refit, not reuse the cache")
	}
}

func TestCacheCachesTooSmallError(t *testing.T) {
	var c Cache
	if _, err := c.Fit([]string{"tiny"}); !errors.Is(err, ErrCorpusTooSmall) {
		t.Fatalf("expected ErrCorpusTooSmall, got %v", err)
	}
	if _, err := c.Fit([]string{"tiny"}); !errors.Is(err, ErrCorpusTooSmall) {
		t.Errorf("cached error lost: %v", err)
	}
}

func TestKeyChangesWithContent(t *testing.T) {
	if Key([]string{"a", "b"}) == Key([]string{"ab"}) {
		t.Error("key must separate document boundaries")
	}
	if Key([]string{"a"}) == Key([]string{"b"}) {
		t.Error("different corpora must have different keys")
	}
}
