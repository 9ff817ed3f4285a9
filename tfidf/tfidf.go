package tfidf

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/deanrtaylor1/docdistance/frequency"
	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/util"
)

// TermFreq maps each word of a document to its share of the document's words
type TermFreq map[string]float64

// DocFreq maps each word to the number of documents containing it
type DocFreq = map[string]int

type InverseDocFreq map[string]float64

type Score struct {
	Term  string  `json:"term"`
	Value float64 `json:"tfidf"`
}

// Scores is ordered by ascending Value, ties by ascending Term
type Scores []Score

// TF computes the term frequency of every word in normalized text
func TF(text string) (TermFreq, error) {
	return ComputeTF(lexer.Words(text))
}

// ComputeTF divides the count of each token by the total number of tokens
func ComputeTF(tokens []string) (TermFreq, error) {
	counts := frequency.Count(tokens)
	//N is the total number of terms (not unique) in the document
	N := counts.Total()
	if N == 0 {
		return nil, fmt.Errorf("%w: document has no words", util.ErrInvalidInput)
	}

	tf := make(TermFreq, len(counts))
	for term, freq := range counts {
		tf[term] = float64(freq) / float64(N)
	}
	return tf, nil
}

// DocumentFrequencies counts, for every word, how many of the documents contain it.
// Repeats within one document are counted once.
func DocumentFrequencies(docs [][]string) DocFreq {
	df := make(DocFreq)
	for _, tokens := range docs {
		for term := range frequency.Count(tokens) {
			df[term] += 1
		}
	}
	return df
}

// IDF computes the inverse document frequency of every word in a collection of normalized texts
func IDF(texts []string) (InverseDocFreq, error) {
	docs := make([][]string, 0, len(texts))
	for _, text := range texts {
		docs = append(docs, lexer.Words(text))
	}
	return ComputeIDF(DocumentFrequencies(docs), len(docs))
}

// ComputeIDF computes log10(N/M) for every word of df, where N is the number of
// documents in the collection and M the number of documents containing the word.
func ComputeIDF(df DocFreq, N int) (InverseDocFreq, error) {
	if N < 1 {
		return nil, fmt.Errorf("%w: collection has no documents", util.ErrInvalidInput)
	}

	idf := make(InverseDocFreq, len(df))
	for term, M := range df {
		if M < 1 || M > N {
			return nil, fmt.Errorf("%w: %q appears in %d of %d documents", util.ErrInvalidInput, term, M, N)
		}
		idf[term] = math.Log10(float64(N) / float64(M))
	}
	return idf, nil
}

// Combine multiplies TF and IDF for every word present in both maps.
// Words missing from either map are dropped.
func Combine(tf TermFreq, idf InverseDocFreq) Scores {
	scores := make(Scores, 0, len(tf))
	for term, termFreq := range tf {
		inverse, ok := idf[term]
		if !ok {
			continue
		}
		scores = append(scores, Score{Term: term, Value: termFreq * inverse})
	}
	slices.SortFunc(scores, func(a, b Score) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Term, b.Term)
	})
	return scores
}

// Top returns the n highest scoring entries, highest first. n <= 0 returns all of them.
func (s Scores) Top(n int) Scores {
	if n <= 0 || n > len(s) {
		n = len(s)
	}
	top := make(Scores, 0, n)
	for i := len(s) - 1; i >= len(s)-n; i-- {
		top = append(top, s[i])
	}
	return top
}
