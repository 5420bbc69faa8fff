package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"studydash"
	"studydash/logger"
	"studydash/query"
	"studydash/util"
)

const (
	cfgMode = 0644
	logMode = 0644
)

type options struct {
	configPath string
	logPath    string
	envPath    string
	apiBase    string
	filter     string
}

func main() {

	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	opts := &options{}

	cmd := &cobra.Command{
		Use:   "studydash",
		Short: "Browse harmonised summary statistics studies",
		Long: `Terminal dashboard over the study-metadata api.

Pages through studies, filters them server-side and charts harmonisation
progress. Filters given with --filter use the api syntax, rows joined by ";"
and "~" for contains, e.g. "Harm_status=harmonised;Study~GCST90".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTui(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "studydash.yaml", "config file, a sample is written when missing")
	flags.StringVar(&opts.logPath, "log", "studydash.log", "log file, empty to discard")
	flags.StringVar(&opts.envPath, "env", ".env", "dotenv file")
	flags.StringVar(&opts.apiBase, "api-base", "", "override the api base url")
	flags.StringVarP(&opts.filter, "filter", "f", "", "starting filter, in api syntax")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSchemaCmd(opts))
	cmd.AddCommand(newURLCmd(opts))

	return cmd
}

// load assembles config from file, environment and flags, in rising precedence
func (opts *options) load() (cfg *studydash.Config, err error) {

	err = util.LoadEnv(opts.envPath)
	if err != nil {
		return
	}

	cfg, err = studydash.Load(opts.configPath)
	if err != nil {
		return
	}

	if opts.apiBase != "" {
		cfg.API.Base = opts.apiBase
	}

	if opts.filter != "" {
		cfg.Layout.Filters, err = query.ParseFilter(opts.filter)
		err = errors.Wrapf(err, "failed to parse filter")
	}
	return
}

func runTui(ctx context.Context, opts *options) (err error) {

	if opts.configPath != "" {
		err = util.SampleConfig(studydash.SampleConfig, opts.configPath, cfgMode)
		if err != nil {
			return
		}
	}

	cfg, err := opts.load()
	if err != nil {
		return
	}

	logFile := util.OpenLog(opts.logPath, logMode)
	defer util.CloseLog(logFile)

	lgr := cfg.Log.New(logFile)
	ctx = logger.WithFields(ctx, "run", "tui")
	lgr.Info(ctx, "starting", "api", cfg.API.Base, "charts", cfg.ChartBase)

	model := studydash.NewModel(ctx, cfg, cfg.API.New(lgr), cfg.ChartConfig().New(lgr), lgr)

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		lgr.Error(ctx, "program exited", err)
		err = errors.Wrapf(err, "failed to run dashboard")
		return
	}

	lgr.Info(ctx, "stopped")
	return
}
