package tfidf

import (
	"fmt"

	"github.com/deanrtaylor1/docdistance/logger"
)

// Loader resolves a path to normalized text
type Loader interface {
	Load(path string) (string, error)
}

// Calculator runs the TF, IDF and TF-IDF computations on documents read through a Loader
type Calculator struct {
	Loader Loader
}

func NewCalculator(loader Loader) *Calculator {
	return &Calculator{Loader: loader}
}

func (c *Calculator) TFFile(path string) (TermFreq, error) {
	text, err := c.Loader.Load(path)
	if err != nil {
		return nil, err
	}
	tf, err := TF(text)
	if err != nil {
		return nil, fmt.Errorf("error computing tf of %s: %w", path, err)
	}
	logger.HandleDebug("computed tf", "path", path, "terms", len(tf))
	return tf, nil
}

func (c *Calculator) IDFFiles(paths []string) (InverseDocFreq, error) {
	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := c.Loader.Load(path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	idf, err := IDF(texts)
	if err != nil {
		return nil, fmt.Errorf("error computing idf: %w", err)
	}
	logger.HandleDebug("computed idf", "documents", len(paths), "terms", len(idf))
	return idf, nil
}

// TFIDFFiles scores the words of tfPath against the collection idfPaths,
// which may or may not contain tfPath.
func (c *Calculator) TFIDFFiles(tfPath string, idfPaths []string) (Scores, error) {
	tf, err := c.TFFile(tfPath)
	if err != nil {
		return nil, err
	}
	idf, err := c.IDFFiles(idfPaths)
	if err != nil {
		return nil, err
	}
	return Combine(tf, idf), nil
}
