package lexer

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Punctuation is the set of characters removed from every token.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var ErrEOF = errors.New("no more tokens")

type Lexer struct {
	content []rune
	caser   cases.Caser
	stemmer Stemmer
}

type Option func(*Lexer)

// WithStemmer reduces every token to its stem
func WithStemmer(s Stemmer) Option {
	return func(l *Lexer) {
		l.stemmer = s
	}
}

// NewLexer creates a new Lexer
func NewLexer(content string, opts ...Option) *Lexer {
	l := &Lexer{
		content: []rune(content),
		caser:   cases.Lower(language.Und),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && unicode.IsSpace(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next word with punctuation removed and lowercased.
// Words made only of punctuation are skipped. Returns nil at the end of the content.
func (l *Lexer) NextToken() []rune {
	for {
		l.TrimLeft()

		if len(l.content) == 0 {
			return nil
		}

		raw := l.ChopWhile(func(r rune) bool {
			return !unicode.IsSpace(r)
		})

		term := StripPunctuation(raw)
		if len(term) == 0 {
			continue
		}

		word := l.caser.String(string(term))
		if l.stemmer != nil {
			word = l.stemmer.Stem(word)
		}
		if word == "" {
			continue
		}
		return []rune(word)
	}
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "EOF", ErrEOF
	}
	return string(token), nil
}

// Tokens drains the lexer and returns every remaining token in order
func (l *Lexer) Tokens() []string {
	tokens := []string{}
	for {
		token, err := l.Next()
		if err != nil {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// StripPunctuation returns term without any of the characters in Punctuation
func StripPunctuation(term []rune) []rune {
	out := make([]rune, 0, len(term))
	for _, r := range term {
		if IsPunctuation(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func IsPunctuation(r rune) bool {
	return r < unicode.MaxASCII && strings.ContainsRune(Punctuation, r)
}

// Normalize returns text lowercased, without punctuation and with all
// whitespace collapsed to single spaces.
func Normalize(text string, opts ...Option) string {
	text = norm.NFC.String(text)
	return strings.Join(NewLexer(text, opts...).Tokens(), " ")
}

// Words splits normalized text on whitespace
func Words(text string) []string {
	return strings.Fields(text)
}

// Letters splits a word into one token per character
func Letters(word string) []string {
	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, string(r))
	}
	return letters
}
