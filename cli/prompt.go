package cli

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/docdistance/logger"
	"github.com/deanrtaylor1/docdistance/util"
)

// Prompter asks the user to choose among options
type Prompter interface {
	Select(message string, options []string) (string, error)
	MultiSelect(message string, options []string) ([]string, error)
}

type SurveyPrompter struct{}

func (SurveyPrompter) Select(message string, options []string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func (SurveyPrompter) MultiSelect(message string, options []string) ([]string, error) {
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
		Default: options,
	}

	var selected []string
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.MinItems(1))); err != nil {
		return nil, err
	}
	return selected, nil
}

func newPickCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick DIR",
		Short: "Choose a document and a collection from DIR interactively and rank the document's words by TF-IDF",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		paths, err := a.loader.List(dir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("%w: no documents in %s", util.ErrInvalidInput, dir)
		}

		names := make([]string, 0, len(paths))
		for _, path := range paths {
			names = append(names, filepath.Base(path))
		}

		selected, err := a.prompter.Select("Select a document to score:", names)
		if err != nil {
			return err
		}
		corpus, err := a.prompter.MultiSelect("Select the documents of the collection:", names)
		if err != nil {
			return err
		}
		logger.HandleLog("scoring document", "document", selected, "collection", len(corpus))

		scores, err := a.calc.TFIDFFiles(filepath.Join(dir, selected), util.JoinAll(dir, corpus))
		if err != nil {
			return err
		}
		return a.printScores(cmd, scores)
	})
	return cmd
}
