package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/lifelog/internal/config"
	"github.com/faizmokh/lifelog/internal/files"
	"github.com/faizmokh/lifelog/internal/logging"
	"github.com/faizmokh/lifelog/internal/storage"
	"github.com/faizmokh/lifelog/internal/ui"
)

// session carries the collaborators every command needs. The root command
// fills it in PersistentPreRunE; tests inject a ready-made journal instead.
type session struct {
	cfgFile string
	verbose bool

	logger  *zap.Logger
	backend storage.Backend
	journal *storage.Journal
	now     func() time.Time
}

func (s *session) open() error {
	if s.journal != nil {
		return nil
	}

	cfg, err := config.Load(s.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, s.verbose)
	if err != nil {
		return err
	}
	manager, err := files.NewManager(cfg.Home)
	if err != nil {
		return err
	}
	backend, err := storage.Open(cfg.Backend, manager)
	if err != nil {
		return err
	}

	logger.Debug("session opened",
		zap.String("home", manager.BasePath()),
		zap.String("backend", cfg.Backend),
	)
	s.logger = logger
	s.backend = backend
	s.journal = storage.NewJournal(backend, logger)
	return nil
}

func (s *session) close() {
	if s.backend != nil {
		if err := s.backend.Close(); err != nil && s.logger != nil {
			s.logger.Warn("close backend", zap.Error(err))
		}
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

func (s *session) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, &session{})
}

func newRootCommand(ctx context.Context, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifelog",
		Short: "Paste daily journal notes and chart sleep, substances, routines and medication.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, s.journal, s.clock)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&s.cfgFile, "config", "", "Path to a config file (yaml, toml or json)")
	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newUpdateCommand(ctx, s),
		newAppendCommand(ctx, s),
		newClearCommand(ctx, s),
		newShowCommand(ctx, s),
		newChartCommand(ctx, s),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/lifelog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
