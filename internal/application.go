package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrUnexpectedWin = errors.New("optimal self-play did not end in a draw")
)

// RunApp - plays the configured number of engine-vs-engine matches and
// stores them in redis.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	matchRepo := repository.NewMatchRepository(redisStorage, conf.Redis.MatchTTL)
	matchManager := usecase.NewMatchManager(logger, matchRepo, conf.SelfPlay.KeepFinished)

	for i := 0; i < conf.SelfPlay.Matches; i++ {
		match, playErr := matchManager.SelfPlay(ctx)
		if playErr != nil {
			if errors.Is(playErr, context.Canceled) {
				log.Info("Application context canceled, shutting down")
				return nil
			}

			return fmt.Errorf("self-play match %d failed: %w", i+1, playErr)
		}

		log.Info("Self-play match done", "matchID", match.ID, "outcome", match.Outcome, "moves", len(match.Moves))

		if match.Outcome != tictactoe.Draw.String() {
			return fmt.Errorf("%w: match %s ended %s", ErrUnexpectedWin, match.ID, match.Outcome)
		}
	}

	return nil
}
