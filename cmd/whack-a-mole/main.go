// Command whack-a-mole plays the reaction game in a terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/board/tui"
	"github.com/lixenwraith/whack-a-mole/config"
	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/status"
)

const replayDelay = 2 * time.Second

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "whack-a-mole: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "whack-a-mole: needs an interactive terminal")
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg.LogDir, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "whack-a-mole: %v\n", err)
		os.Exit(1)
	}

	best, err := run(cfg, logger)
	closeLog()

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "whack-a-mole: %v\n", err)
		os.Exit(1)
	}
	out := board.NewWriterConsole(os.Stdout)
	if best > 0 {
		out.Println(fmt.Sprintf("Best score: %d", best))
	}
	out.Println("Thanks for playing!")
}

// run plays sessions until game over, or until quit when replay is on
// Returns the best score reached
func run(cfg *config.Config, logger *zap.Logger) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	metrics := status.NewRegistry()
	b, err := tui.New(tui.Options{
		Keys:    cfg.KeyRunes(),
		Hold:    cfg.KeyHold,
		Metrics: metrics,
		Logger:  logger.Named("board"),
		OnQuit:  cancel,
	})
	if err != nil {
		return 0, fmt.Errorf("terminal board: %w", err)
	}

	// Panic recovery: restore the terminal before reporting
	crash := func(r any) {
		b.Close()
		logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mWHACK-A-MOLE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer b.Close()

	b.Start(crash)

	rng := engine.NewRandomSource(cfg.Seed)
	best := 0
	for {
		session := uuid.New().String()
		log := logger.With(zap.String("session", session))
		log.Info("session started", zap.Uint64("seed", cfg.Seed), zap.Duration("tick", cfg.Tick))

		game := engine.NewGame(engine.Options{
			Board:   b,
			Random:  rng,
			Logger:  logger,
			Metrics: metrics,
			Tick:    cfg.Tick,
			Session: session,
		})
		err := game.Run(ctx)

		score := game.State().Score
		if score > best {
			best = score
			metrics.Ints.Get(status.KeyBest).Store(int64(best))
			b.Refresh()
		}
		log.Info("session finished",
			zap.Int("score", score),
			zap.Int("best", best),
			zap.Any("metrics", metrics.Snapshot()),
			zap.Error(err))

		if err != nil || !cfg.Replay {
			return best, err
		}

		b.Println(fmt.Sprintf("Best: %d. New game in %ds, q to quit", best, int(replayDelay.Seconds())))
		select {
		case <-ctx.Done():
			return best, ctx.Err()
		case <-time.After(replayDelay):
		}
	}
}
