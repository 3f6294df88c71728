package main

import (
	"context"

	"github.com/brunokim/lam/config"
	"github.com/brunokim/lam/loader"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const stdinName = "<stdin>"

// app holds state shared by all subcommands, set up before any of them runs.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
	loader     *loader.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:               "lamc",
		Short:             "Parse logic programs and lower their clauses",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.String(config.KeyFormat, config.FormatText, "output format: text, json or yaml")
	flags.Bool(config.KeyStrict, false, "fail on unparsed input after the last clause")
	flags.Int(config.KeyWorkers, a.v.GetInt(config.KeyWorkers), "number of files loaded concurrently")
	flags.String(config.KeyNormalize, config.NormNFC, "Unicode normalization: none, nfc or nfkc")
	flags.BoolP(config.KeyVerbose, "v", false, "log debug messages")
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name != "config" {
			_ = a.v.BindPFlag(f.Name, f)
		}
	})

	root.AddCommand(
		&cobra.Command{
			Use:   "parse [FILE...]",
			Short: "Print the clauses of each program",
			RunE:  a.run(writeClauses),
		},
		&cobra.Command{
			Use:   "lower [FILE...]",
			Short: "Print the records lowered from each program",
			RunE:  a.run(writeRecords),
		},
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.loader = loader.New(
		loader.WithLogger(logger),
		loader.WithStrict(cfg.Strict),
		loader.WithWorkers(cfg.Workers),
		loader.WithNormalization(normalization(cfg.Normalize)),
	)
	logger.Debug("configured", zap.Any("config", cfg))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	var zcfg zap.Config
	if verbose {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zcfg.Build()
}

func normalization(form string) loader.Normalization {
	switch form {
	case config.NormNFC:
		return loader.NFC
	case config.NormNFKC:
		return loader.NFKC
	default:
		return loader.NoNormalization
	}
}

// run returns a command body that loads all sources and writes them with w.
// Programs that loaded are written even if others failed.
func (a *app) run(w writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		progs, loadErr := a.load(cmd, args)
		var loaded []*loader.Program
		for _, prog := range progs {
			if prog != nil {
				loaded = append(loaded, prog)
			}
		}
		if err := w(cmd.OutOrStdout(), a.cfg.Format, loaded, len(args) > 1); err != nil {
			return err
		}
		return loadErr
	}
}

// load reads each arg as a file path, or "-" as stdin, preserving their order.
func (a *app) load(cmd *cobra.Command, args []string) ([]*loader.Program, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	progs := make([]*loader.Program, len(args))
	var paths []string
	var indices []int
	var result *multierror.Error
	for i, arg := range args {
		if arg != "-" {
			paths = append(paths, arg)
			indices = append(indices, i)
			continue
		}
		prog, err := a.loader.LoadReader(stdinName, cmd.InOrStdin())
		if err != nil {
			result = multierror.Append(result, err)
		}
		progs[i] = prog
	}
	if len(paths) > 0 {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		loaded, err := a.loader.LoadFiles(ctx, paths)
		for j, prog := range loaded {
			progs[indices[j]] = prog
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return progs, result.ErrorOrNil()
}
