package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prodmast/internal/config"
	"prodmast/internal/logging"
	"prodmast/internal/telemetry"
	"prodmast/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type flags struct {
	configPath string
	start      string
	noSplash   bool
	debug      bool
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "prodmast [path]",
		Short:        "ProdMast: smart manufacturing platform, in your terminal",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.start = args[0]
			}
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&f.start, "start", "", "location to open, e.g. /pricing or #/login")
	cmd.Flags().BoolVar(&f.noSplash, "no-splash", false, "skip the welcome splash")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log at debug level")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	return cmd
}

// loadConfig reads the config file and applies flags that were set.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.start != "" {
		cfg.StartPath = f.start
	}
	if f.noSplash {
		cfg.Splash = config.SplashOff
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// appOptions maps the config onto the UI's options.
func appOptions(cfg *config.Config) (ui.Options, error) {
	policy, err := ui.ParseSplashPolicy(cfg.Splash)
	if err != nil {
		return ui.Options{}, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	return ui.Options{
		StartPath:       cfg.StartPath,
		Splash:          policy,
		SplashExitDelay: cfg.SplashExitDelay,
		AuthDelay:       cfg.AuthDelay,
		FrameRate:       cfg.FrameRate,
	}, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	opts, err := appOptions(cfg)
	if err != nil {
		return err
	}
	opts.Logger = logger
	opts.Tracer = tp.Tracer()

	app := ui.NewAppModel(opts)
	defer app.Close()
	logger.Info("start",
		zap.String("path", cfg.StartPath),
		zap.String("splash", cfg.Splash),
		zap.Bool("telemetry", tp.Enabled()))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			logger.Info("signal received, quitting")
			p.Quit()
		case <-done:
		}
		return nil
	})
	err = g.Wait()
	logger.Info("exit", zap.Error(err))
	return err
}
