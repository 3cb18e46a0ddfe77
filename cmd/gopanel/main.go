package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sadopc/gopanel/internal/app"
	"github.com/sadopc/gopanel/internal/config"
	"github.com/sadopc/gopanel/internal/watcher"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootFlags are the flags shared by every command. Panel flags override the
// config file only when set.
type rootFlags struct {
	configPath    string
	theme         string
	logFile       string
	minWidth      int
	initialWidth  int
	maxWidth      int
	handleWidth   int
	defaultMax    bool
	containHandle bool
	noWatch       bool
	noWrap        bool
	noHistory     bool
	historyPath   string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "gopanel [file]",
		Short: "A drag-resizable terminal panel for viewing files",
		Long: `gopanel shows a file inside a panel you can resize with the mouse
or the keyboard, and toggle fullscreen.

Drag the handle on the panel's right edge to resize it. Markdown is
rendered, source code and JSON are highlighted, and the file reloads
when it changes on disk.

Examples:
  # View a README
  gopanel README.md

  # Start with a narrow panel that can grow to 80 columns
  gopanel main.go --initial-width 30 --max-width 80

  # Print the effective configuration
  gopanel config`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return runTUI(cmd, f, file)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/gopanel/config.yaml)")
	pf.StringVar(&f.theme, "theme", "", `color theme, or "auto" to follow the terminal background`)
	pf.StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	pf.IntVar(&f.minWidth, "min-width", 0, "minimum panel width in columns")
	pf.IntVar(&f.initialWidth, "initial-width", 0, "initial panel width in columns")
	pf.IntVar(&f.maxWidth, "max-width", 0, "fixed maximum panel width in columns")
	pf.IntVar(&f.handleWidth, "handle-width", 0, "width of the drag handle in columns")
	pf.BoolVar(&f.defaultMax, "default-max", false, "open the panel at its maximum width")
	pf.BoolVar(&f.containHandle, "contain-handle", false, "keep the handle inside the container at max width")
	pf.BoolVar(&f.noWatch, "no-watch", false, "do not reload files when they change")
	pf.BoolVar(&f.noWrap, "no-wrap", false, "start with word wrap off")
	pf.BoolVar(&f.noHistory, "no-history", false, "do not record opened files")
	pf.StringVar(&f.historyPath, "history-db", "", "recent files database (default ~/.local/share/gopanel/history.db)")

	cmd.AddCommand(newConfigCmd(f), newRecentCmd(f), newVersionCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var errNotTerminal = errors.New("gopanel needs a terminal; use 'gopanel config' or 'gopanel recent' in scripts")

// isInteractive reports whether w is a terminal.
func isInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runTUI(cmd *cobra.Command, f *rootFlags, file string) error {
	cfg, cfgPath, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("opening %s: %w", file, err)
		}
	}
	if !isInteractive(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		lf, err := tea.LogToFile(cfg.LogFile, "gopanel")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer lf.Close()
		logger = log.Default()
	}

	var w *watcher.Watcher
	if cfg.Watch {
		w, err = watcher.New()
		if err != nil {
			logger.Printf("live reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	opts := app.Options{
		File:       file,
		ConfigPath: cfgPath,
		Watcher:    w,
		Logger:     logger,
	}
	if cfg.History {
		store, err := openHistory(f)
		if err != nil {
			logger.Printf("history disabled: %v", err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	zones := zone.New()
	defer zones.Close()
	opts.Zones = zones

	model := app.New(cfg, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides. It returns
// the path of the file it read, or "" when defaults were used.
func loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, string, error) {
	cfg := config.DefaultConfig()
	path := f.configPath
	explicit := path != ""
	if !explicit {
		path = config.Path()
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := config.LoadFile(path)
			if err != nil {
				return cfg, "", err
			}
			cfg = loaded
		} else if explicit {
			return cfg, "", fmt.Errorf("config file: %w", err)
		} else {
			path = ""
		}
	}

	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, path, nil
}

func applyFlags(cmd *cobra.Command, f *rootFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if flags.Changed("min-width") {
		cfg.Panel.MinWidth = f.minWidth
	}
	if flags.Changed("initial-width") {
		cfg.Panel.InitialWidth = f.initialWidth
	}
	if flags.Changed("max-width") {
		cfg.Panel.MaxWidth = f.maxWidth
	}
	if flags.Changed("handle-width") {
		cfg.Panel.HandleWidth = f.handleWidth
	}
	if flags.Changed("default-max") {
		cfg.Panel.DefaultToMaxWidth = f.defaultMax
	}
	if flags.Changed("contain-handle") {
		cfg.Panel.ContainerOwnsHandle = f.containHandle
	}
	if flags.Changed("no-watch") {
		cfg.Watch = !f.noWatch
	}
	if flags.Changed("no-wrap") {
		cfg.Wrap = !f.noWrap
	}
	if flags.Changed("no-history") {
		cfg.History = !f.noHistory
	}
}
