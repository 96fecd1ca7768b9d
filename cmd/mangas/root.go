package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kerbaras/mangaread/pkg/app"
	"github.com/kerbaras/mangaread/pkg/config"
	"github.com/kerbaras/mangaread/pkg/services"
	"github.com/kerbaras/mangaread/pkg/sources"
	"github.com/kerbaras/mangaread/pkg/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFile   string
	language  string
	dataSaver bool

	cfg     *config.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "mangaread",
	Short: "Browse and read manga in your terminal",
	Long:  "Browse popular manga, search titles, view chapter lists and page through chapters from MangaDex",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("language") {
			loaded.Language = language
		}
		if cmd.Flags().Changed("data-saver") {
			loaded.DataSaver = dataSaver
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default; stdout belongs to the UI so logs only go to a file
		log, err := newLogger(io.Discard)
		if err != nil {
			return err
		}
		return app.NewApp(cfg, log).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load settings from a .env file")
	rootCmd.PersistentFlags().StringVar(&language, "language", config.DefaultLanguage, "chapter translation language")
	rootCmd.PersistentFlags().BoolVar(&dataSaver, "data-saver", false, "use compressed page images")

	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pagesCmd)
}

func Execute() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and closes the log file on every path.
func run() error {
	defer closeLogFile()
	return rootCmd.Execute()
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// newLogger writes to the configured log file, or to fallback when none is set.
func newLogger(fallback io.Writer) (zerolog.Logger, error) {
	if cfg.LogFile == "" {
		if fallback == io.Discard {
			return zerolog.Nop(), nil
		}
		return utils.NewConsoleLogger(fallback, cfg.LogLevel), nil
	}
	f, err := utils.OpenLogFile(cfg.LogFile)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	return utils.NewLogger(f, cfg.LogLevel), nil
}

// newController wires a controller for one-shot CLI commands.
func newController() (*services.MangaController, error) {
	log, err := newLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	return services.NewMangaController(sources.NewMangaDex(cfg, nil), log), nil
}
