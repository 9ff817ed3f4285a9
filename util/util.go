package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrInvalidInput is returned when an operation's preconditions are not met,
	// e.g. an empty document or an empty corpus.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a path does not resolve to a readable document.
	ErrNotFound = errors.New("document not found")
)

// Write v as indented JSON followed by a newline
func WriteJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("error writing json: %w", err)
	}
	return nil
}

// CheckDirIsValid reports whether dirName exists and is a directory
func CheckDirIsValid(dirName string) (bool, error) {
	fi, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return fi.IsDir(), nil
}

// Returns the file names (not paths) of the regular files in dirName
func ListFileNames(dirName string) ([]string, error) {
	files, err := os.ReadDir(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dirName)
		}
		return nil, err
	}

	names := []string{}
	for _, f := range files {
		if !f.Type().IsRegular() {
			continue
		}
		names = append(names, f.Name())
	}
	return names, nil
}

// Joins each name onto dir
func JoinAll(dir string, names []string) []string {
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
