package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"assistantbot/internal/config"
	"assistantbot/internal/logger"
	"assistantbot/internal/logstats"
	"assistantbot/internal/shell"
	"assistantbot/internal/version"
)

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	c := &cli{v: v}

	root := &cobra.Command{
		Use:   "assistant",
		Short: "Assistant bot - a command-line contact directory",
		Long: `Assistant bot keeps a contact directory in memory and answers one command per line:
hello, add, change, phone, all, help, close and exit.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.initConfig,
		PersistentPostRunE: c.closeLogs,
		RunE:               c.runShell, // Default behavior is the interactive shell
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "Config file (default ./assistantbot.yaml or $HOME/assistantbot.yaml)")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.Bool("test-mode", false, "Only log warnings and errors")

	for _, name := range []string{"log-level", "log-file", "test-mode"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Start interactive mode",
			Args:  cobra.NoArgs,
			RunE:  c.runShell,
		},
		&cobra.Command{
			Use:   "batch <file>",
			Short: "Run the commands of a file, one per line",
			Long: `Run the commands of a file line by line against a fresh directory.
Execution stops at close, exit or the end of the file.`,
			Args: cobra.ExactArgs(1),
			RunE: c.runBatch,
		},
		&cobra.Command{
			Use:   "logs <path> [levels...]",
			Short: "Count log lines per level and show the lines of selected levels",
			Args:  cobra.MinimumNArgs(1),
			RunE:  c.runLogs,
		},
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	var detailed bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if detailed {
				fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Short())
			return nil
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")
	return cmd
}

func (c *cli) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.v, c.configFile, dotEnvFile)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) closeLogs(_ *cobra.Command, _ []string) error {
	return logger.Close()
}

func (c *cli) runShell(cmd *cobra.Command, _ []string) error {
	logger.Debug("Starting assistant bot", "version", version.Version)

	session, err := shell.NewSession(c.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		return session.RunInteractive(cmd.Context(), f)
	}
	return session.Run(cmd.Context(), shell.NewScannerSource(in, "", nil))
}

func (c *cli) runBatch(cmd *cobra.Command, args []string) error {
	session, err := shell.NewSession(c.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return session.RunBatch(cmd.Context(), args[0])
}

func (c *cli) runLogs(cmd *cobra.Command, args []string) error {
	entries, err := logstats.LoadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), logstats.Report(entries, args[1:]...))
	return nil
}
