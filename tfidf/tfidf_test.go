package tfidf

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/deanrtaylor1/docdistance/util"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

type mapLoader map[string]string

func (m mapLoader) Load(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", util.ErrNotFound, path)
	}
	return text, nil
}

func TestTF(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected TermFreq
	}{
		{
			name:     "Basic test",
			input:    "hello world",
			expected: TermFreq{"hello": 0.5, "world": 0.5},
		},
		{
			name:     "Repeated words",
			input:    "a b a a",
			expected: TermFreq{"a": 0.75, "b": 0.25},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tf, err := TF(tc.input)
			if err != nil {
				t.Fatalf("TF() Failed, expected %v, got %v", nil, err)
			}
			if !reflect.DeepEqual(tf, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, tf)
			}
		})
	}
}

func TestTFSumsToOne(t *testing.T) {
	tf, err := TF("the quick brown fox jumps over the lazy dog and the cat")
	if err != nil {
		t.Fatalf("TF() Failed, expected %v, got %v", nil, err)
	}

	var sum float64
	for _, v := range tf {
		if v < 0 || v > 1 {
			t.Errorf("TF() Failed, value %v out of range", v)
		}
		sum += v
	}
	if !almostEqual(sum, 1) {
		t.Errorf("TF() Failed, expected sum %v, got %v", 1, sum)
	}
}

func TestTFEmpty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := TF(input)
		if !errors.Is(err, util.ErrInvalidInput) {
			t.Errorf("TF(%q) Failed, expected %v, got %v", input, util.ErrInvalidInput, err)
		}
	}
}

func TestDocumentFrequencies(t *testing.T) {
	df := DocumentFrequencies([][]string{
		{"hello", "hello", "world"},
		{"hello", "friends"},
	})
	expected := DocFreq{"hello": 2, "world": 1, "friends": 1}
	if !reflect.DeepEqual(df, expected) {
		t.Errorf("DocumentFrequencies() Failed, expected %v, got %v", expected, df)
	}
}

func TestIDF(t *testing.T) {
	idf, err := IDF([]string{"hello world", "hello friends"})
	if err != nil {
		t.Fatalf("IDF() Failed, expected %v, got %v", nil, err)
	}

	expected := map[string]float64{
		"hello":   0,
		"world":   math.Log10(2),
		"friends": math.Log10(2),
	}
	if len(idf) != len(expected) {
		t.Fatalf("IDF() Failed, expected %v, got %v", expected, idf)
	}
	for term, want := range expected {
		got, ok := idf[term]
		if !ok || !almostEqual(got, want) {
			t.Errorf("IDF()[%q] Failed, expected %v, got %v", term, want, got)
		}
	}
}

func TestIDFSingleOccurrence(t *testing.T) {
	idf, err := IDF([]string{"a b", "b c", "b d", "b"})
	if err != nil {
		t.Fatalf("IDF() Failed, expected %v, got %v", nil, err)
	}
	if !almostEqual(idf["a"], math.Log10(4)) {
		t.Errorf("IDF()[a] Failed, expected %v, got %v", math.Log10(4), idf["a"])
	}
	if idf["b"] != 0 {
		t.Errorf("IDF()[b] Failed, expected %v, got %v", 0, idf["b"])
	}
	if _, ok := idf["z"]; ok {
		t.Errorf("IDF() Failed, unexpected entry for a word in no document")
	}
}

func TestIDFEmptyCollection(t *testing.T) {
	_, err := IDF(nil)
	if !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("IDF() Failed, expected %v, got %v", util.ErrInvalidInput, err)
	}
}

func TestComputeIDFInconsistentCounts(t *testing.T) {
	_, err := ComputeIDF(DocFreq{"a": 3}, 2)
	if !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("ComputeIDF() Failed, expected %v, got %v", util.ErrInvalidInput, err)
	}
}

func TestCombine(t *testing.T) {
	tf := TermFreq{"b": 0.25, "a": 0.25, "c": 0.5, "only-tf": 0.1}
	idf := InverseDocFreq{"a": 1, "b": 1, "c": 0.1, "only-idf": 2}

	scores := Combine(tf, idf)

	expectedTerms := []string{"c", "a", "b"}
	if len(scores) != len(expectedTerms) {
		t.Fatalf("Combine() Failed, expected %v entries, got %v", len(expectedTerms), scores)
	}
	for i, term := range expectedTerms {
		if scores[i].Term != term {
			t.Errorf("Combine()[%d] Failed, expected %v, got %v", i, term, scores[i].Term)
		}
	}
	if !almostEqual(scores[0].Value, 0.05) || !almostEqual(scores[1].Value, 0.25) {
		t.Errorf("Combine() Failed, unexpected values %v", scores)
	}
}

func TestCombineEmpty(t *testing.T) {
	scores := Combine(TermFreq{"a": 1}, InverseDocFreq{"b": 1})
	if len(scores) != 0 {
		t.Errorf("Combine() Failed, expected no scores, got %v", scores)
	}
}

func TestScoresTop(t *testing.T) {
	scores := Scores{{"a", 0}, {"b", 1}, {"c", 2}}

	testCases := []struct {
		name     string
		n        int
		expected Scores
	}{
		{name: "two", n: 2, expected: Scores{{"c", 2}, {"b", 1}}},
		{name: "all", n: 0, expected: Scores{{"c", 2}, {"b", 1}, {"a", 0}}},
		{name: "too many", n: 10, expected: Scores{{"c", 2}, {"b", 1}, {"a", 0}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := scores.Top(tc.n)
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, actual)
			}
		})
	}
}

func TestCalculator(t *testing.T) {
	loader := mapLoader{
		"hello_world.txt":   "hello world",
		"hello_friends.txt": "hello friends",
		"empty.txt":         "",
	}
	calc := NewCalculator(loader)

	scores, err := calc.TFIDFFiles("hello_world.txt", []string{"hello_world.txt", "hello_friends.txt"})
	if err != nil {
		t.Fatalf("TFIDFFiles() Failed, expected %v, got %v", nil, err)
	}
	if len(scores) != 2 {
		t.Fatalf("TFIDFFiles() Failed, expected 2 scores, got %v", scores)
	}
	if scores[0].Term != "hello" || scores[0].Value != 0 {
		t.Errorf("TFIDFFiles()[0] Failed, expected {hello 0}, got %v", scores[0])
	}
	if scores[1].Term != "world" || !almostEqual(scores[1].Value, 0.5*math.Log10(2)) {
		t.Errorf("TFIDFFiles()[1] Failed, expected {world %v}, got %v", 0.5*math.Log10(2), scores[1])
	}
}

func TestCalculatorErrors(t *testing.T) {
	calc := NewCalculator(mapLoader{"a.txt": "a", "empty.txt": ""})

	testCases := []struct {
		name     string
		run      func() error
		expected error
	}{
		{
			name: "missing tf document",
			run: func() error {
				_, err := calc.TFIDFFiles("missing.txt", []string{"a.txt"})
				return err
			},
			expected: util.ErrNotFound,
		},
		{
			name: "missing idf document",
			run: func() error {
				_, err := calc.TFIDFFiles("a.txt", []string{"a.txt", "missing.txt"})
				return err
			},
			expected: util.ErrNotFound,
		},
		{
			name: "empty tf document",
			run: func() error {
				_, err := calc.TFFile("empty.txt")
				return err
			},
			expected: util.ErrInvalidInput,
		},
		{
			name: "no idf documents",
			run: func() error {
				_, err := calc.IDFFiles(nil)
				return err
			},
			expected: util.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, err)
			}
		})
	}
}
