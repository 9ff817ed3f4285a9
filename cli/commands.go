package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/docdistance/frequency"
	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/util"
)

func newCountCommand(a *app) *cobra.Command {
	var letters bool
	cmd := &cobra.Command{
		Use:   "count FILE | --letters WORD",
		Short: "Count the words of a file or the letters of a word",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVar(&letters, "letters", false, "count the letters of WORD instead of the words of FILE")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		counts, err := a.frequencies(args[0], letters)
		if err != nil {
			return err
		}
		return a.printCounts(cmd, counts, letters)
	})
	return cmd
}

func newTFCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tf FILE",
		Short: "Term frequency of every word in FILE",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		tf, err := a.calc.TFFile(args[0])
		if err != nil {
			return err
		}
		return a.printWeights(cmd, "Term Frequencies", "TF", tf)
	})
	return cmd
}

func newIDFCommand(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "idf [FILE...] [--dir DIR]",
		Short: "Inverse document frequency of every word across the documents",
	}
	cmd.Flags().StringVar(&dir, "dir", "", "add the documents of DIR to the collection")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		paths, err := a.collection(args, dir)
		if err != nil {
			return err
		}
		idf, err := a.calc.IDFFiles(paths)
		if err != nil {
			return err
		}
		return a.printWeights(cmd, "Inverse Document Frequencies", "IDF", idf)
	})
	return cmd
}

func newTFIDFCommand(a *app) *cobra.Command {
	var (
		corpus []string
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "tfidf FILE (--corpus FILE... | --dir DIR)",
		Short: "Rank the words of FILE by TF-IDF against a collection of documents",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringSliceVar(&corpus, "corpus", nil, "documents of the collection")
	cmd.Flags().StringVar(&dir, "dir", "", "add the documents of DIR to the collection")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		paths, err := a.collection(corpus, dir)
		if err != nil {
			return err
		}
		scores, err := a.calc.TFIDFFiles(args[0], paths)
		if err != nil {
			return err
		}
		return a.printScores(cmd, scores)
	})
	return cmd
}

func newSimilarityCommand(a *app) *cobra.Command {
	var letters bool
	cmd := &cobra.Command{
		Use:   "similarity A B",
		Short: "Similarity between the word frequencies of two files, or the letters of two words",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().BoolVar(&letters, "letters", false, "compare the letters of two words instead of the words of two files")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		m1, err := a.frequencies(args[0], letters)
		if err != nil {
			return err
		}
		m2, err := a.frequencies(args[1], letters)
		if err != nil {
			return err
		}
		return a.printSimilarity(cmd, frequency.Similarity(m1, m2))
	})
	return cmd
}

func newFrequentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequent A B",
		Short: "Most frequent words across two files",
		Args:  cobra.ExactArgs(2),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		m1, err := a.frequencies(args[0], false)
		if err != nil {
			return err
		}
		m2, err := a.frequencies(args[1], false)
		if err != nil {
			return err
		}
		words, err := frequency.MostFrequent(m1, m2)
		if err != nil {
			return err
		}
		return a.printWords(cmd, words)
	})
	return cmd
}

// frequencies counts the words of the file at arg, or the letters of arg itself when letters is set
func (a *app) frequencies(arg string, letters bool) (frequency.Map[string], error) {
	if letters {
		word := strings.Join(lexer.Words(lexer.Normalize(arg)), "")
		return frequency.LetterFrequencies(word), nil
	}
	text, err := a.loader.Load(arg)
	if err != nil {
		return nil, err
	}
	return frequency.WordFrequencies(text), nil
}

// collection joins explicit paths with the documents found in dir
func (a *app) collection(paths []string, dir string) ([]string, error) {
	all := append([]string{}, paths...)
	if dir != "" {
		listed, err := a.loader.List(dir)
		if err != nil {
			return nil, err
		}
		all = append(all, listed...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no documents given, pass files or --dir", util.ErrInvalidInput)
	}
	return all, nil
}
