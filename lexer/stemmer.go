package lexer

import (
	"fmt"

	"github.com/reiver/go-porterstemmer"
	"github.com/tebeka/snowball"

	"github.com/deanrtaylor1/docdistance/logger"
)

const (
	StemmerNone     = "none"
	StemmerSnowball = "snowball"
	StemmerPorter   = "porter"
)

type Stemmer interface {
	Stem(word string) string
}

type StemmerFunc func(word string) string

func (f StemmerFunc) Stem(word string) string {
	return f(word)
}

// NewStemmer returns the stemmer registered under name and a function releasing
// its resources. A nil Stemmer is returned for StemmerNone and "".
func NewStemmer(name string) (Stemmer, func(), error) {
	switch name {
	case "", StemmerNone:
		return nil, func() {}, nil
	case StemmerSnowball:
		stemmer, err := snowball.New("english")
		if err != nil {
			return nil, nil, fmt.Errorf("error creating snowball stemmer: %w", err)
		}
		return stemmer, stemmer.Close, nil
	case StemmerPorter:
		return StemmerFunc(porterStem), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown stemmer %q", name)
	}
}

// go-porterstemmer panics on some inputs, the word is kept as is when it does
func porterStem(word string) (stemmed string) {
	defer func() {
		if r := recover(); r != nil {
			logger.HandleLog("recovered from panic while stemming", "token", word, "panic", r)
			stemmed = word
		}
	}()
	return porterstemmer.StemString(word)
}
