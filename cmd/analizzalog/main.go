package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/cli"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/config"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/logging"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/storage"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "analizzalog",
		Short:         "Extract unique users, unique events and event counts from a JSON log export",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runAnalysis,
	}

	flags := root.Flags()
	flags.StringP("config", "c", "", "YAML configuration file")
	flags.StringP("input", "i", "", "input log file (.json, .json.zst)")
	flags.StringP("output", "o", "", "output results file")
	flags.StringP("where", "w", "", "row filter, e.g. 'event:login AND NOT user:bot'")
	flags.Int("user-column", engine.DefaultColumns.User, "index of the user column")
	flags.Int("event-column", engine.DefaultColumns.Event, "index of the event column")
	flags.Bool("strict", false, "reject rows whose width differs from the first row")
	flags.Bool("concurrent", false, "compute the aggregates in parallel")
	flags.Bool("no-prompt", false, "do not ask for missing paths, use the defaults")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("analizzalog %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
		},
	})
	return root
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	reporter := cli.NewReporter(cmd.OutOrStdout())

	conf, err := loadConf(cmd)
	if err != nil {
		reporter.Error(err)
		return err
	}

	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	if !noPrompt && (conf.InputPath == "" || conf.OutputPath == "") {
		rl, err := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
		if err != nil {
			err = errors.Wrap(err, "failed to initialize prompt")
			reporter.Error(err)
			return err
		}
		err = cli.AskPaths(rl, conf)
		rl.Close()
		if err != nil {
			reporter.Error(err)
			return err
		}
	}
	inputDefaulted, outputDefaulted := conf.ResolvePaths()
	if inputDefaulted {
		reporter.Notice("No input file specified, using the default: '%s'", conf.InputPath)
	}
	if outputDefaulted {
		reporter.Notice("No output file specified, using the default: '%s'", conf.OutputPath)
	}

	filter, err := engine.CompileFilter(conf.Where, conf.Columns)
	if err != nil {
		reporter.Error(err)
		return err
	}

	loader, err := storage.NewJSONLoader()
	if err != nil {
		err = errors.Wrap(err, "failed to create loader")
		reporter.Error(err)
		return err
	}
	defer loader.Close()
	persister := &storage.JSONPersister{}

	pipeline := &engine.Pipeline{
		Load:       loader.Load,
		Persist:    persister.Persist,
		Columns:    conf.Columns,
		Filter:     filter,
		Strict:     conf.Strict,
		Concurrent: conf.Concurrent,
	}

	logger := log.With().Str("run", uuid.NewString()).Logger()
	ctx := logger.WithContext(cmd.Context())

	reporter.Banner("LOG ANALYSIS - START")
	result, err := pipeline.Run(ctx, conf.Pipeline())
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		reporter.Error(err)
		return err
	}
	reporter.Result(result, conf.OutputPath)
	return nil
}

// loadConf reads the optional config file, applies the command line flags on
// top of it and sets up logging.
func loadConf(cmd *cobra.Command) (*config.Conf, error) {
	flags := cmd.Flags()
	confPath, _ := flags.GetString("config")
	conf, err := config.Load(confPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("input") {
		conf.InputPath, _ = flags.GetString("input")
	}
	if flags.Changed("output") {
		conf.OutputPath, _ = flags.GetString("output")
	}
	if flags.Changed("where") {
		conf.Where, _ = flags.GetString("where")
	}
	if flags.Changed("user-column") {
		conf.Columns.User, _ = flags.GetInt("user-column")
	}
	if flags.Changed("event-column") {
		conf.Columns.Event, _ = flags.GetInt("event-column")
	}
	if flags.Changed("strict") {
		conf.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("concurrent") {
		conf.Concurrent, _ = flags.GetBool("concurrent")
	}
	if flags.Changed("log-level") {
		conf.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		conf.Logging.Format, _ = flags.GetString("log-format")
	}

	if err := logging.Setup(conf.Logging); err != nil {
		return nil, errors.Wrap(err, "invalid logging configuration")
	}
	if err := conf.ValidateAndDefaults(); err != nil {
		return nil, err
	}
	if src := conf.SourcePath(); src != "" {
		log.Debug().Str("path", src).Msg("configuration loaded")
	}
	return conf, nil
}
