package lexer

import (
	"errors"
	"reflect"
	"testing"
	"unicode"
)

func TestNewLexer(t *testing.T) {
	l := NewLexer("Hello World!")
	if l == nil {
		t.Error("NewLexer() returned nil")
	} else {

		if len(l.content) != 12 {
			t.Error("NewLexer() returned wrong length")
		}

		if string(l.content) != "Hello World!" {
			t.Error("NewLexer() returned wrong content")
		}
	}

}

func TestTrimLeft(t *testing.T) {
	l := NewLexer(" \n\tHello World!")
	l.TrimLeft()
	if string(l.content) != "Hello World!" {
		t.Error("TrimLeft() failed")
	}

}

func TestChop(t *testing.T) {
	l := NewLexer("Hello World!")
	l.Chop(5)
	if string(l.content) != " World!" {
		t.Error("Chop() failed")
	}
}

func TestChopWhile(t *testing.T) {
	l := NewLexer("Hello World!")

	f := func(x rune) bool {
		return unicode.IsLetter(x)
	}

	l.ChopWhile(f)
	expected := " World!"
	if string(l.content) != expected {
		t.Errorf("ChopWhile() Failed, expected %v, got %v", expected, string(l.content))
	}
}

func TestNextToken(t *testing.T) {

	l := NewLexer("Hello World!")

	expected := "hello"
	nextToken := l.NextToken()

	if string(nextToken) != expected {
		t.Errorf("NextToken() Failed, expected %v, got %v", expected, string(nextToken))
	}

}

func TestNext(t *testing.T) {
	l := NewLexer("Hello, World! -- ...")

	expected := "hello"
	nextToken, err := l.Next()

	if err != nil {
		t.Errorf("Next() Failed, expected %v, got %v", nil, err)
	}

	if nextToken != expected {
		t.Errorf("Next() Failed, expected %v, got %v", expected, nextToken)
	}

	nextToken2, err := l.Next()

	if err != nil {
		t.Errorf("Next() Failed, expected %v, got %v", nil, err)
	}

	expected2 := "world"

	if nextToken2 != expected2 {
		t.Errorf("Next() Failed, expected %v, got %v", expected2, nextToken2)
	}

	EOF, err := l.Next()

	if !errors.Is(err, ErrEOF) {
		t.Errorf("Next() Failed, expected %v, got %v", ErrEOF, err)
	}

	if EOF != "EOF" {
		t.Errorf("Next() Failed, expected %v, got %v", "EOF", EOF)
	}
}

func TestTokens(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Basic test",
			input:    "The cat sat.",
			expected: []string{"the", "cat", "sat"},
		},
		{
			name:     "Punctuation inside words is removed",
			input:    "Don't stop-me now",
			expected: []string{"dont", "stopme", "now"},
		},
		{
			name:     "Multiple lines",
			input:    "  Hello\n\nworld  \r\n again ",
			expected: []string{"hello", "world", "again"},
		},
		{
			name:     "Unicode punctuation is kept",
			input:    "café «ok»",
			expected: []string{"café", "«ok»"},
		},
		{
			name:     "Empty",
			input:    " !!! ",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := NewLexer(tc.input).Tokens()
			if !reflect.DeepEqual(tokens, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, tokens)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Basic test", input: "Hello, World!\nHello again.", expected: "hello world hello again"},
		{name: "Empty", input: "   ", expected: ""},
		{name: "NFC", input: "Cafe\u0301", expected: "caf\u00e9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := Normalize(tc.input)
			if actual != tc.expected {
				t.Errorf("Expected: %q, got: %q", tc.expected, actual)
			}
		})
	}
}

func TestNormalizeWithStemmer(t *testing.T) {
	singular := StemmerFunc(func(word string) string {
		if word == "cats" {
			return "cat"
		}
		return word
	})

	actual := Normalize("Cats and cats", WithStemmer(singular))
	expected := "cat and cat"
	if actual != expected {
		t.Errorf("Normalize() Failed, expected %q, got %q", expected, actual)
	}
}

func TestWords(t *testing.T) {
	expected := []string{"the", "cat", "sat"}
	actual := Words(" the  cat sat ")
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Words() Failed, expected %v, got %v", expected, actual)
	}

	if len(Words("")) != 0 {
		t.Errorf("Words() Failed, expected empty, got %v", Words(""))
	}
}

func TestLetters(t *testing.T) {
	expected := []string{"h", "é", "l", "l", "o"}
	actual := Letters("héllo")
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Letters() Failed, expected %v, got %v", expected, actual)
	}
}

func TestNewStemmer(t *testing.T) {
	testCases := []struct {
		name    string
		stemmer string
		input   string
		want    string
		wantErr bool
	}{
		{name: "none", stemmer: StemmerNone, input: "running", want: "running"},
		{name: "empty", stemmer: "", input: "running", want: "running"},
		{name: "porter", stemmer: StemmerPorter, input: "running", want: "run"},
		{name: "unknown", stemmer: "lancaster", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stemmer, release, err := NewStemmer(tc.stemmer)
			if tc.wantErr {
				if err == nil {
					t.Errorf("NewStemmer() Failed, expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStemmer() Failed, expected %v, got %v", nil, err)
			}
			defer release()

			actual := NewLexer(tc.input, WithStemmer(stemmer)).Tokens()
			if !reflect.DeepEqual(actual, []string{tc.want}) {
				t.Errorf("Expected: %v, got: %v", []string{tc.want}, actual)
			}
		})
	}
}
