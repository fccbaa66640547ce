package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spotget/spot-downloader/cmd/spot-console/tui"
	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/runner"
)

var (
	debug      bool
	configFlag string

	logger *zap.Logger

	// Effective console configuration and where it came from
	fileCfg *config.FileConfig
	cfgPath string
)

// rootCmd starts the interactive interface when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "spot-console",
	Short: "Terminal front-end for the spotdl music downloader",
	Long: `spot-console drives the spotdl music downloader from the terminal.

It assembles the spotdl command line for you, streams the live output,
and summarizes which songs were skipped or failed once a download or
sync run finishes.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		// The interactive interface owns the terminal, so it runs without a logger
		if cmd.Use == "spot-console" && cmd.CalledAs() == "spot-console" {
			return nil
		}

		zapConfig := zap.NewProductionConfig()
		if debug {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// loadConfig resolves the config file location and loads the console defaults
func loadConfig() error {
	path := configFlag
	if path == "" {
		resolved, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = resolved
	}

	cfg, err := config.LoadFileConfig(path)
	if err != nil {
		return err
	}

	fileCfg = cfg
	cfgPath = path
	return nil
}

// runInteractive starts the full-screen terminal interface
func runInteractive() error {
	p := tea.NewProgram(tui.New(fileCfg, runner.NewExecRunner()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	fmt.Println(tui.GoodbyeMessage)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file path (default: user config dir)")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
