package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameEngine interface {
	Reset()
	Snapshot() entity.Board
	RestoreStrict(cells []entity.Mark) error
	Place(mark entity.Mark, cell int) bool
	Evaluate() entity.Outcome
	ChooseComputerMove(difficulty entity.Difficulty) (int, error)
}

// GameManager runs a session of human-versus-computer rounds on one engine.
// It keeps the turn, who started the round and the score in memory.
//
// GameManager is not safe for concurrent use.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine

	difficulty   entity.Difficulty
	humanStarted bool
	turn         entity.Mark
	score        entity.Score
	started      bool
}

func NewGameManager(logger *slog.Logger, engine gameEngine, difficulty entity.Difficulty, humanStarts bool) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,

		difficulty:   difficulty,
		humanStarted: humanStarts,
	}
}

// StartRound - clears the board and hands the first move to the starter.
// When the computer starts it moves before StartRound returns.
func (that *GameManager) StartRound() (*entity.Round, error) {
	log := that.logger.With("method", "StartRound")

	that.engine.Reset()
	that.started = true
	that.turn = that.starter()

	log.Info("round started", "starter", that.turn.String(), "difficulty", that.difficulty.String())

	if that.turn == entity.Computer {
		if err := that.computerTurn(); err != nil {
			return nil, fmt.Errorf("computer failed to open the round: %w", err)
		}
	}

	return that.State(), nil
}

// NextRound - starts another round once the current one is over, alternating who starts.
func (that *GameManager) NextRound() (*entity.Round, error) {
	if !that.started {
		return that.StartRound()
	}

	if !that.engine.Evaluate().IsFinished() {
		return that.State(), apperror.ErrRoundInProgress
	}

	that.humanStarted = !that.humanStarted

	return that.StartRound()
}

// PlayHuman - places the human's mark and, if the round goes on, the computer's reply.
func (that *GameManager) PlayHuman(cell int) (*entity.Round, error) {
	log := that.logger.With("method", "PlayHuman")

	if !that.started {
		return nil, apperror.ErrSessionNotStarted
	}

	if that.engine.Evaluate().IsFinished() {
		return that.State(), apperror.ErrGameFinished
	}

	if that.turn != entity.Human {
		return that.State(), apperror.ErrNotYourTurn
	}

	if !entity.InRange(cell) {
		return that.State(), fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.engine.Place(entity.Human, cell) {
		return that.State(), fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	log.Debug("human moved", "cell", cell)

	if that.finishIfOver() {
		return that.State(), nil
	}

	that.turn = entity.Computer

	if err := that.computerTurn(); err != nil {
		return nil, fmt.Errorf("computer failed to move: %w", err)
	}

	return that.State(), nil
}

// SetDifficulty changes the tier used for the computer's next move.
func (that *GameManager) SetDifficulty(difficulty entity.Difficulty) {
	that.difficulty = difficulty
}

func (that *GameManager) Score() entity.Score {
	return that.score
}

// State - returns a copy of the current round.
func (that *GameManager) State() *entity.Round {
	outcome := that.engine.Evaluate()

	status := entity.StatusOngoing
	if outcome.IsFinished() {
		status = entity.StatusFinished
	}

	return &entity.Round{
		Board:      that.engine.Snapshot(),
		Outcome:    outcome,
		Status:     status,
		Turn:       that.turn,
		Difficulty: that.difficulty,
		Score:      that.score,
	}
}

// Suspend - captures the session so it can be brought back with Resume.
func (that *GameManager) Suspend() entity.SavedSession {
	board := that.engine.Snapshot()

	return entity.SavedSession{
		Cells:        board[:],
		Turn:         that.turn,
		HumanStarted: that.humanStarted,
		Score:        that.score,
	}
}

// Resume - restores a suspended session. A board that is not exactly 9 known
// marks is replaced by an empty one and the round starts over.
func (that *GameManager) Resume(saved entity.SavedSession) (*entity.Round, error) {
	log := that.logger.With("method", "Resume")

	that.humanStarted = saved.HumanStarted
	that.score = saved.Score
	that.started = true
	that.turn = saved.Turn

	if err := that.engine.RestoreStrict(saved.Cells); err != nil {
		log.Warn("saved board is malformed, starting the round over", "error", err)
		that.engine.Reset()
		that.turn = entity.Empty
	}

	if that.engine.Evaluate().IsFinished() {
		that.turn = entity.Empty
		return that.State(), nil
	}

	if !that.turn.IsPlayer() {
		that.turn = that.starter()
	}

	log.Info("session resumed", "turn", that.turn.String())

	if that.turn == entity.Computer {
		if err := that.computerTurn(); err != nil {
			return nil, fmt.Errorf("computer failed to move after resume: %w", err)
		}
	}

	return that.State(), nil
}

func (that *GameManager) starter() entity.Mark {
	if that.humanStarted {
		return entity.Human
	}

	return entity.Computer
}

func (that *GameManager) computerTurn() error {
	log := that.logger.With("method", "computerTurn")

	cell, err := that.engine.ChooseComputerMove(that.difficulty)
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	if !that.engine.Place(entity.Computer, cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	log.Debug("computer moved", "cell", cell, "difficulty", that.difficulty.String())

	if !that.finishIfOver() {
		that.turn = entity.Human
	}

	return nil
}

// finishIfOver records a finished round in the score.
func (that *GameManager) finishIfOver() bool {
	outcome := that.engine.Evaluate()
	if !outcome.IsFinished() {
		return false
	}

	that.score.Record(outcome)
	that.turn = entity.Empty

	that.logger.Info("round finished",
		"outcome", outcome.String(),
		"human_wins", that.score.HumanWins,
		"computer_wins", that.score.ComputerWins,
		"draws", that.score.Draws,
	)

	return true
}
