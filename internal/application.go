package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs a console session until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	logger = logger.With("session_id", uuid.NewString())
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	difficulty := entity.ParseDifficulty(conf.Difficulty)
	if difficulty.String() != conf.Difficulty {
		log.Debug("difficulty normalized", "configured", conf.Difficulty, "using", difficulty.String())
	}

	engine := tictactoe.NewEngine(nil)
	manager := usecase.NewGameManager(logger, engine, difficulty, !conf.ComputerStarts)

	log.Info("Starting console session", "difficulty", difficulty.String(), "computer_starts", conf.ComputerStarts)

	if err := console.New(logger, manager, in, out).Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	score := manager.Score()
	log.Info("Session finished",
		"rounds", score.Rounds(),
		"human_wins", score.HumanWins,
		"computer_wins", score.ComputerWins,
		"draws", score.Draws,
	)

	return nil
}
