package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameSession interface {
	StartRound() (*entity.Round, error)
	NextRound() (*entity.Round, error)
	PlayHuman(cell int) (*entity.Round, error)
	SetDifficulty(difficulty entity.Difficulty)
	Score() entity.Score
}

// userErrors are shown to the player instead of ending the session.
var userErrors = []error{
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrRoundInProgress,
}

// Console plays a session over a line-oriented reader and writer.
type Console struct {
	logger   *slog.Logger
	session  gameSession
	in       *bufio.Scanner
	out      io.Writer
	handlers map[string]func(args []string) (bool, error)
}

func New(logger *slog.Logger, session gameSession, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger:   logger.With("component", "console"),
		session:  session,
		in:       bufio.NewScanner(in),
		out:      out,
		handlers: make(map[string]func(args []string) (bool, error)),
	}

	console.handlers["d"] = console.handleDifficulty
	console.handlers["n"] = console.handleNextRound
	console.handlers["s"] = console.handleScore
	console.handlers["q"] = console.handleQuit

	return console
}

// Run - plays until the input ends, the player quits or ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	round, err := that.session.StartRound()
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	that.render(round)

	lines := that.readLines(ctx)

	for {
		if ctx.Err() != nil {
			log.Info("context canceled, leaving the game")
			return nil
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving the game")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err = that.in.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			line = strings.ToLower(strings.TrimSpace(line))
			if line == "" {
				continue
			}

			stop, err := that.handle(line)
			if err != nil {
				return err
			}

			if stop {
				return nil
			}
		}
	}
}

// readLines feeds input lines to a channel so Run can stop on ctx while a read blocks.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func (that *Console) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if handler, ok := that.handlers[fields[0]]; ok {
		return handler(fields[1:])
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		that.printf("unknown command %q: type 1-9 to play, d easy|medium|hard to change difficulty, "+
			"n for a new round, s for the score, q to quit\n", line)
		return false, nil
	}

	round, err := that.session.PlayHuman(number - 1)
	if err != nil {
		return false, that.report(err)
	}

	that.render(round)

	return false, nil
}

// handleDifficulty - switches the tier for the computer's next move. Unknown names fall back to easy.
func (that *Console) handleDifficulty(args []string) (bool, error) {
	if len(args) != 1 {
		that.printf("usage: d easy|medium|hard\n")
		return false, nil
	}

	difficulty := entity.ParseDifficulty(args[0])
	that.session.SetDifficulty(difficulty)

	that.logger.Info("difficulty changed", "difficulty", difficulty.String())
	that.printf("difficulty: %s\n", difficulty)

	return false, nil
}

func (that *Console) handleNextRound(_ []string) (bool, error) {
	round, err := that.session.NextRound()
	if err != nil {
		return false, that.report(err)
	}

	that.render(round)

	return false, nil
}

func (that *Console) handleScore(_ []string) (bool, error) {
	score := that.session.Score()
	that.printf("score: you %d, computer %d, draws %d\n", score.HumanWins, score.ComputerWins, score.Draws)

	return false, nil
}

func (that *Console) handleQuit(_ []string) (bool, error) {
	that.printf("bye\n")

	return true, nil
}

// report prints errors the player caused and returns everything else.
func (that *Console) report(err error) error {
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			that.printf("! %s\n", err)
			return nil
		}
	}

	return fmt.Errorf("session failed: %w", err)
}

func (that *Console) render(round *entity.Round) {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := range 3 {
			cell := row*3 + col
			if col > 0 {
				sb.WriteString("|")
			}

			symbol := round.Board[cell].String()
			if round.Board[cell] == entity.Empty {
				symbol = strconv.Itoa(cell + 1)
			}

			sb.WriteString(" " + symbol + " ")
		}

		sb.WriteString("\n")
	}

	sb.WriteString(statusLine(round))
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func statusLine(round *entity.Round) string {
	switch round.Outcome {
	case entity.HumanWins:
		return "You win! Press n for a new round."
	case entity.ComputerWins:
		return "Computer wins. Press n for a new round."
	case entity.Draw:
		return "Draw. Press n for a new round."
	case entity.None:
	}

	if round.IsHumanTurn() {
		return fmt.Sprintf("Your turn (%s).", round.Difficulty)
	}

	return "Computer is thinking..."
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
