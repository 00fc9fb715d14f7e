package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/altinukshini/rgview/internal/config"
	"github.com/altinukshini/rgview/internal/editor"
	"github.com/altinukshini/rgview/internal/search"
	"github.com/altinukshini/rgview/internal/settings"
	"github.com/altinukshini/rgview/internal/tui"
)

var (
	flagConfig  string
	flagRoot    string
	flagLogFile string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:          "rgview [keyword]",
	Short:        "Browse ripgrep matches in C sources and jump to them in your editor",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/rgview/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "source root to search (default: last used root)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log every match")
}

// env is everything a command needs, built from config and flags.
type env struct {
	cfg    config.Config
	log    *slog.Logger
	store  *settings.Store
	engine *search.Engine
	opener *editor.CommandOpener
	closer io.Closer
}

func (e *env) Close() {
	if e.closer != nil {
		e.closer.Close()
	}
}

func setup() (*env, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	cfgPath := flagConfig
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	logger, closer, err := cfg.OpenLogger(flagDebug)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", cfgPath)

	searcher := search.NewRipgrepSearcher(cfg.Search.Command, cfg.Search.ExtraArgs)
	return &env{
		cfg:    cfg,
		log:    logger,
		store:  settings.NewStore(settings.DefaultPath(dir)),
		engine: search.New(searcher, cfg.Search.Globs, logger),
		opener: editor.NewCommandOpener(cfg.Editor, logger),
		closer: closer,
	}, nil
}

// resolveRoot picks the --root flag or the remembered root.
func (e *env) resolveRoot() (string, error) {
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}
	return e.store.LastRoot()
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	root := ""
	if flagRoot != "" {
		if root, err = filepath.Abs(flagRoot); err != nil {
			return err
		}
	}
	keyword := ""
	if len(args) == 1 {
		keyword = args[0]
	}

	app := tui.NewApp(tui.Options{
		Engine:  e.engine,
		Opener:  e.opener,
		Store:   e.store,
		Log:     e.log,
		Root:    root,
		Keyword: keyword,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
