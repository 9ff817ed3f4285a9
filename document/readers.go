package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"

	"github.com/deanrtaylor1/docdistance/util"
)

// ReadText returns the raw text of the file at path. Markup is stripped from
// html files and text is extracted from pdf files, anything else is read as is.
func ReadText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return readHTML(path)
	case ".pdf":
		return readPDF(path)
	default:
		return readPlain(path)
	}
}

func readPlain(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", util.ErrNotFound, err)
	}
	return string(b), nil
}

func readHTML(path string) (string, error) {
	content, err := readPlain(path)
	if err != nil {
		return "", err
	}
	return ParseHtmlTextContent(content), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", util.ErrNotFound, err)
	}
	defer f.Close()

	text, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: error extracting text from %s: %w", util.ErrNotFound, path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", fmt.Errorf("%w: error reading text from %s: %w", util.ErrNotFound, path, err)
	}
	return buf.String(), nil
}

// ParseHtmlTextContent returns the text nodes of an html document separated by
// spaces, skipping script and style elements
func ParseHtmlTextContent(htmlContent string) string {
	var sb strings.Builder
	skip := 0

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			if isHiddenTag(d) {
				skip++
			}
		case html.EndTagToken:
			if isHiddenTag(d) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			sb.Write(d.Text())
			sb.WriteString(" ")
		}
	}
}

func isHiddenTag(d *html.Tokenizer) bool {
	name, _ := d.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
