package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/docdistance/chart"
	"github.com/deanrtaylor1/docdistance/config"
	"github.com/deanrtaylor1/docdistance/frequency"
	"github.com/deanrtaylor1/docdistance/tfidf"
	"github.com/deanrtaylor1/docdistance/util"
)

func (a *app) json() bool {
	return a.config.Format == config.FormatJSON
}

func (a *app) chartOptions(valueHeader string) chart.Options {
	return chart.Options{
		Width:       a.config.Chart.Width,
		Limit:       a.config.Chart.Limit,
		ValueHeader: valueHeader,
	}
}

func (a *app) printCounts(cmd *cobra.Command, counts frequency.Map[string], letters bool) error {
	stats := frequency.Rank(counts)
	if a.json() {
		return util.WriteJSON(a.out(cmd), stats)
	}

	title := "Word Counts"
	if letters {
		title = "Letter Counts"
	}
	if a.config.Chart.Enabled {
		return chart.Render(a.out(cmd), title, chart.FromStats(stats), a.chartOptions("Count"))
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Item, strconv.Itoa(s.Count)})
	}
	return a.printTable(cmd, []string{"Item", "Count"}, rows)
}

// printWeights prints a word to weight map, highest weight first
func (a *app) printWeights(cmd *cobra.Command, title, valueHeader string, weights map[string]float64) error {
	if a.json() {
		return util.WriteJSON(a.out(cmd), weights)
	}

	bars := chart.FromTermFreq(weights)
	if a.config.Chart.Enabled {
		return chart.Render(a.out(cmd), title, bars, a.chartOptions(valueHeader))
	}

	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, []string{b.Label, chart.FormatValue(b.Value, chart.DefaultPrecision)})
	}
	return a.printTable(cmd, []string{"Word", valueHeader}, rows)
}

// printScores keeps the ascending order of scores, the chart shows the highest scores first
func (a *app) printScores(cmd *cobra.Command, scores tfidf.Scores) error {
	if a.json() {
		return util.WriteJSON(a.out(cmd), scores)
	}
	if a.config.Chart.Enabled {
		bars := chart.FromScores(scores.Top(a.config.Chart.Limit))
		return chart.Render(a.out(cmd), "TF-IDF Scores", bars, a.chartOptions("TF-IDF"))
	}

	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{s.Term, chart.FormatValue(s.Value, chart.DefaultPrecision)})
	}
	return a.printTable(cmd, []string{"Word", "TF-IDF"}, rows)
}

func (a *app) printSimilarity(cmd *cobra.Command, score float64) error {
	if a.json() {
		return util.WriteJSON(a.out(cmd), map[string]float64{"similarity": score})
	}
	_, err := fmt.Fprintf(a.out(cmd), "Similarity: %s\n", strconv.FormatFloat(score, 'f', 2, 64))
	return err
}

func (a *app) printWords(cmd *cobra.Command, words []string) error {
	if a.json() {
		return util.WriteJSON(a.out(cmd), map[string][]string{"most_frequent": words})
	}
	_, err := fmt.Fprintf(a.out(cmd), "Most frequent: %s\n", strings.Join(words, ", "))
	return err
}

func (a *app) printTable(cmd *cobra.Command, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(a.out(cmd), "no data")
		return err
	}
	_, err := fmt.Fprintln(a.out(cmd), renderTable(headers, rows, []columnAlignment{alignLeft, alignRight}))
	return err
}
