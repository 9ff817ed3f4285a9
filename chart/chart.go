// Package chart renders frequency maps and TF-IDF rankings as horizontal bar
// charts in the terminal.
package chart

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/deanrtaylor1/docdistance/frequency"
	"github.com/deanrtaylor1/docdistance/tfidf"
)

const (
	DefaultWidth     = 40
	DefaultPrecision = 4
	barRune          = "█"
)

type Bar struct {
	Label string
	Value float64
}

type Options struct {
	// Width is the length in characters of the longest bar
	Width int

	// Limit keeps only the first Limit bars, 0 keeps all
	Limit int

	Precision int

	// ValueHeader names the value column
	ValueHeader string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.ValueHeader == "" {
		o.ValueHeader = "Value"
	}
	return o
}

// FromTermFreq orders the map by descending value, ties by label
func FromTermFreq(m map[string]float64) []Bar {
	bars := make([]Bar, 0, len(m))
	for label, value := range m {
		bars = append(bars, Bar{Label: label, Value: value})
	}
	slices.SortFunc(bars, func(a, b Bar) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return bars
}

func FromStats(stats []frequency.Stat[string]) []Bar {
	bars := make([]Bar, 0, len(stats))
	for _, s := range stats {
		bars = append(bars, Bar{Label: s.Item, Value: float64(s.Count)})
	}
	return bars
}

// FromScores keeps the order of scores
func FromScores(scores tfidf.Scores) []Bar {
	bars := make([]Bar, 0, len(scores))
	for _, s := range scores {
		bars = append(bars, Bar{Label: s.Term, Value: s.Value})
	}
	return bars
}

// Render writes a titled bar chart of bars to w. Bars are colored when w is a terminal.
func Render(w io.Writer, title string, bars []Bar, opts Options) error {
	opts = opts.withDefaults()

	if len(bars) == 0 {
		_, err := fmt.Fprintf(w, "%s\nno data\n", title)
		return err
	}
	if opts.Limit > 0 && len(bars) > opts.Limit {
		bars = bars[:opts.Limit]
	}

	var maxValue float64
	for _, b := range bars {
		maxValue = math.Max(maxValue, math.Abs(b.Value))
	}

	colorize := shouldColorize(w)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Word", opts.ValueHeader, ""})
	for _, b := range bars {
		bar := strings.Repeat(barRune, barLength(b.Value, maxValue, opts.Width))
		if colorize {
			bar = text.Colors{text.FgCyan}.Sprint(bar)
		}
		tw.AppendRow(table.Row{b.Label, FormatValue(b.Value, opts.Precision), bar})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func barLength(value, maxValue float64, width int) int {
	if maxValue == 0 {
		return 0
	}
	return int(math.Round(math.Abs(value) / maxValue * float64(width)))
}

// FormatValue prints whole numbers without decimals and everything else with precision decimals
func FormatValue(v float64, precision int) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
