// Package document reads files from disk into normalized text: lowercase,
// without punctuation, on a single line.
package document

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/logger"
	"github.com/deanrtaylor1/docdistance/util"
)

var DefaultExtensions = []string{".txt"}

type Loader struct {
	// Extensions selects the files picked up by List, compared case-insensitively
	Extensions []string

	stemmer lexer.Stemmer
}

type Option func(*Loader)

func WithExtensions(extensions ...string) Option {
	return func(l *Loader) {
		l.Extensions = normalizeExtensions(extensions)
	}
}

func WithStemmer(stemmer lexer.Stemmer) Option {
	return func(l *Loader) {
		l.stemmer = stemmer
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{Extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the document at path and returns its normalized text
func (l *Loader) Load(path string) (string, error) {
	raw, err := ReadText(path)
	if err != nil {
		return "", err
	}
	text := lexer.Normalize(raw, lexer.WithStemmer(l.stemmer))
	logger.HandleDebug("loaded document", "path", path, "bytes", len(raw))
	return text, nil
}

// List returns the paths of the files in dir with one of the loader's extensions, sorted by name
func (l *Loader) List(dir string) ([]string, error) {
	ok, err := util.CheckDirIsValid(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a directory", util.ErrNotFound, dir)
	}

	names, err := util.ListFileNames(dir)
	if err != nil {
		return nil, err
	}

	matched := []string{}
	for _, name := range names {
		if l.accepts(name) {
			matched = append(matched, name)
		}
	}
	slices.Sort(matched)
	return util.JoinAll(dir, matched), nil
}

// LoadDirectory loads every file returned by List, in the same order
func (l *Loader) LoadDirectory(dir string) ([]string, error) {
	paths, err := l.List(dir)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func (l *Loader) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range l.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func normalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}
