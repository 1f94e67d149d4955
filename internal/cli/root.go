package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/bootkit/internal"
)

const (
	cmdName = "bootkit"
	cmdDesc = `Bootstrap view helpers: pagination windows and component previews.`
)

type RootArgs struct {
	LogLevel string

	Config *internal.Config
	Logger *slog.Logger
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "", "Log level, one of: debug, info, warn, error (default from LOG_LEVEL)")

	err := cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions([]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		SilenceUsage:      true,
		PersistentPreRunE: setup(args),
	}

	args.AddFlags(cmd)
	cmd.AddCommand(NewWindowCmd(args))
	cmd.AddCommand(NewPreviewCmd(args))

	return cmd
}

func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := internal.NewConfig()
		if err != nil {
			return fmt.Errorf("config initialization failed: %w", err)
		}

		level := cfg.LogLevel
		if ra.LogLevel != "" {
			level = ra.LogLevel
		}

		ra.Config = cfg
		ra.Logger = internal.NewLogger(cmd.ErrOrStderr(), cfg.Env, level)

		return nil
	}
}
