package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ankush23056/taskwarrior/internal/config"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

const Version = "0.1.0"

// skipConfigLoad marks commands that must work even with a broken config file.
const skipConfigLoad = "skip-config-load"

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "tw",
		Short:         "Taskwarrior: a gamified single-player task tracker",
		Long:          "Taskwarrior turns your to-do list into quests: earn XP, level up and keep a daily streak alive.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $TASKWARRIOR_CONFIG or ~/.taskwarrior/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	cmd.AddCommand(
		newAddCmd(a),
		newDoCmd(a),
		newRmCmd(a),
		newListCmd(a),
		newStatusCmd(a),
		newRenameCmd(a),
		newBoardCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if a.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.configPath = p
	}

	if cmd.Annotations[skipConfigLoad] == "true" {
		a.cfg = config.DefaultConfig()
	} else {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level, err := a.cfg.Level()
	if err != nil {
		level = zapcore.WarnLevel
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger.Named("tw")
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.String("db", a.cfg.DBPath))
	return nil
}

func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
