package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deanrtaylor1/docdistance/config"
	"github.com/deanrtaylor1/docdistance/document"
	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/logger"
	"github.com/deanrtaylor1/docdistance/tfidf"
)

// app holds what every subcommand needs once the configuration is loaded
type app struct {
	v          *viper.Viper
	configPath string
	prompter   Prompter

	config *config.Config
	loader *document.Loader
	calc   *tfidf.Calculator
}

type Option func(*app)

// WithPrompter replaces the interactive survey prompts used by the pick command
func WithPrompter(p Prompter) Option {
	return func(a *app) {
		a.prompter = p
	}
}

func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		v:        config.New(),
		prompter: SurveyPrompter{},
	}
	for _, opt := range opts {
		opt(a)
	}

	defaults := config.GetDefaultConfig()

	root := &cobra.Command{
		Use:           "docdist",
		Short:         "Document similarity and TF-IDF statistics for plain text files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./docdist.yaml)")
	flags.String("format", defaults.Format, "output format: table or json")
	flags.Bool("chart", defaults.Chart.Enabled, "render results as a bar chart")
	flags.Int("limit", defaults.Chart.Limit, "number of bars to chart, 0 for all")
	flags.String("stemmer", defaults.Stemmer, "stem words before counting: none, snowball or porter")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.StringSlice("ext", defaults.Extensions, "extensions of the documents read from directories")

	for key, flag := range map[string]string{
		"format":        "format",
		"chart.enabled": "chart",
		"chart.limit":   "limit",
		"stemmer":       "stemmer",
		"log_level":     "log-level",
		"extensions":    "ext",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newCountCommand(a),
		newTFCommand(a),
		newIDFCommand(a),
		newTFIDFCommand(a),
		newSimilarityCommand(a),
		newFrequentCommand(a),
		newPickCommand(a),
	)
	return root
}

// run loads the configuration and the stemmer before calling fn and releases the stemmer after
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(a.v, a.configPath)
		if err != nil {
			return err
		}
		if err := logger.Init(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
			return err
		}

		stemmer, release, err := lexer.NewStemmer(cfg.Stemmer)
		if err != nil {
			return err
		}
		defer release()

		a.config = cfg
		a.loader = document.NewLoader(
			document.WithExtensions(cfg.Extensions...),
			document.WithStemmer(stemmer),
		)
		a.calc = tfidf.NewCalculator(a.loader)
		logger.HandleDebug("running command", "command", cmd.Name(), "args", args)

		return fn(cmd, args)
	}
}

func (a *app) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
