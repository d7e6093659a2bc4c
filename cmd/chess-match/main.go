// chess-match plays a two-player game of chess in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-match-go/internal/config"
	"github.com/lgbarn/chess-match-go/internal/console"
	"github.com/lgbarn/chess-match-go/internal/engine"
	"github.com/lgbarn/chess-match-go/internal/logging"
	"github.com/lgbarn/chess-match-go/internal/render"
	"github.com/lgbarn/chess-match-go/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-match version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, setFlags(), os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, CHESS_* variables and flags.
func loadConfig(path string, set map[string]bool, getenv func(string) string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(getenv)
	applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run plays one match with the configured interface.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Game.Interface == config.InterfaceTUI {
		// The alt screen owns the terminal.
		cfg.Log.Quiet = true
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
		_ = closeLog()
	}()

	match, err := newMatch(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("match started",
		zap.String("match", match.ID()),
		zap.String("interface", cfg.Game.Interface),
		zap.String("position", match.PlacementString()))

	opts := render.Options{Unicode: cfg.Display.Unicode, Colour: cfg.Display.Colour}
	switch cfg.Game.Interface {
	case config.InterfacePlain:
		session := console.NewSession(match, cfg.InputFile, cfg.OutputFile, opts, cfg.Display.ShowMoves, logger)
		err = session.Run(ctx)
	default:
		err = tui.Run(ctx, match, opts, cfg.Display.ShowMoves)
	}
	if err != nil {
		return err
	}

	if winner, ok := match.Winner(); ok && cfg.Game.Interface == config.InterfaceTUI {
		fmt.Fprintf(cfg.OutputFile, "CHECKMATE! Winner: %s\n", winner)
	}
	return writeSVG(ctx, cfg, match)
}

// newMatch starts from the configured placement or the standard position.
func newMatch(cfg *config.Config, logger *zap.Logger) (*engine.Match, error) {
	if cfg.Game.StartFEN != "" {
		return engine.NewMatchFromFEN(cfg.Game.StartFEN, engine.WithLogger(logger))
	}
	return engine.NewStandardMatch(engine.WithLogger(logger)), nil
}

// writeSVG saves the final position if an SVG path is configured.
func writeSVG(ctx context.Context, cfg *config.Config, match *engine.Match) error {
	if cfg.Game.SVGOut == "" {
		return nil
	}
	f, err := os.Create(cfg.Game.SVGOut)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	return writeAndClose(f, func(w io.Writer) error {
		return render.WriteSVG(ctx, w, match.Snapshot(), render.SVGOptions{
			SquareSize: cfg.Display.SquareSize,
			Title:      match.PlacementString(),
		})
	})
}

func writeAndClose(f io.WriteCloser, write func(io.Writer) error) error {
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-match [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players share one terminal. Choose an origin square, then a destination.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  CHESS_LOG_LEVEL, CHESS_LOG_FORMAT, CHESS_LOG_FILE, CHESS_UNICODE, CHESS_INTERFACE\n")
}
