package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoEngineMove = errors.New("engine found no move")

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchManager drives matches over the tictactoe core and keeps them in
// the repository.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo

	keepFinished bool
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, keepFinished bool) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match_manager"),
		matchRepo: matchRepo,

		keepFinished: keepFinished,
	}
}

// StartMatch creates a match against the engine. The engine opens when the
// human plays O.
func (that *MatchManager) StartMatch(ctx context.Context, humanMark tictactoe.Mark) (*entity.Match, error) {
	playerX, playerO := entity.PlayerHuman, entity.PlayerEngine
	if humanMark == tictactoe.Second {
		playerX, playerO = playerO, playerX
	}

	match := entity.NewMatch(uuid.NewString(), playerX, playerO)
	if match.PlayerToMove() == entity.PlayerEngine {
		if err := that.engineTurn(match); err != nil {
			return nil, fmt.Errorf("failed engine opening: %w", err)
		}
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match started", "matchID", match.ID, "human", humanMark.String())

	return match, nil
}

// MakeTurn applies the human's action and answers with the engine's best move.
func (that *MatchManager) MakeTurn(ctx context.Context, matchID string, action tictactoe.Action) (*entity.Match, error) {
	match, err := that.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.IsFinished() {
		return match, apperror.ErrMatchFinished
	}

	if match.PlayerToMove() != entity.PlayerHuman {
		return match, apperror.ErrNotYourTurn
	}

	if err = match.Play(action); err != nil {
		return match, fmt.Errorf("failed make turn: %w", err)
	}

	if !match.IsFinished() {
		if err = that.engineTurn(match); err != nil {
			return nil, err
		}
	}

	if err = that.finishOrSave(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// SelfPlay lets the engine play both sides until the game ends.
func (that *MatchManager) SelfPlay(ctx context.Context) (*entity.Match, error) {
	log := that.logger.With("method", "SelfPlay")

	match := entity.NewMatch(uuid.NewString(), entity.PlayerEngine, entity.PlayerEngine)

	for !match.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("self-play interrupted: %w", err)
		}

		if err := that.engineTurn(match); err != nil {
			return nil, err
		}

		log.Debug("ply", "matchID", match.ID, "ply", len(match.Moves), "board", match.Board.String())
	}

	if err := that.finishOrSave(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *MatchManager) DeleteMatch(ctx context.Context, id string) error {
	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

func (that *MatchManager) engineTurn(match *entity.Match) error {
	action, ok := tictactoe.BestMove(match.Board)
	if !ok {
		return ErrNoEngineMove
	}

	if err := match.Play(action); err != nil {
		return fmt.Errorf("engine failed to make turn: %w", err)
	}

	return nil
}

func (that *MatchManager) finishOrSave(ctx context.Context, match *entity.Match) error {
	log := that.logger.With("method", "finishOrSave", "matchID", match.ID)

	if match.IsFinished() {
		log.Info("match finished", "outcome", match.Outcome, "board", match.Board.String())

		if !that.keepFinished {
			if err := that.matchRepo.DeleteByID(ctx, match.ID); err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
				log.Error("failed to delete match", "error", err)
			}

			return nil
		}
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}
