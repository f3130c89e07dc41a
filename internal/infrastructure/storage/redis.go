package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"svw.info/sudokuterm/internal/domain"
)

// Redis keeps statistics in one hash per player, one field per canonical
// difficulty key, with the same JSON aggregate shape the file store uses.
// Useful when several machines share a scoreboard.
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps an already-configured client.
func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

func statsKey(player string) string {
	return "sudokuterm:stats:" + player
}

func (s *Redis) Record(ctx context.Context, player string, d domain.Difficulty, won bool, elapsed time.Duration) error {
	if elapsed < 0 {
		return fmt.Errorf("negative elapsed time %v", elapsed)
	}
	key := statsKey(player)
	// read-modify-write under WATCH so two finishing games don't clobber
	// each other's counts
	txn := func(tx *redis.Tx) error {
		ds := domain.DifficultyStats{}
		raw, err := tx.HGet(ctx, key, d.String()).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil {
			if err := json.Unmarshal([]byte(raw), &ds); err != nil {
				return fmt.Errorf("stats field %s/%s: %w", key, d, err)
			}
		}
		if won {
			ds.RecordWin(elapsed)
		} else {
			ds.RecordLoss(elapsed)
		}
		data, err := json.Marshal(ds)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, d.String(), data)
			return nil
		})
		return err
	}
	for i := 0; i < 5; i++ {
		err := s.rdb.Watch(ctx, txn, key)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return redis.TxFailedErr
}

func (s *Redis) Get(ctx context.Context, player string, d domain.Difficulty) (domain.DifficultyStats, error) {
	raw, err := s.rdb.HGet(ctx, statsKey(player), d.String()).Result()
	if err == redis.Nil {
		return domain.DifficultyStats{}, nil
	}
	if err != nil {
		return domain.DifficultyStats{}, err
	}
	var ds domain.DifficultyStats
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		return domain.DifficultyStats{}, err
	}
	return ds, nil
}

func (s *Redis) All(ctx context.Context, player string) (domain.PlayerStats, error) {
	fields, err := s.rdb.HGetAll(ctx, statsKey(player)).Result()
	if err != nil {
		return nil, err
	}
	out := domain.PlayerStats{}
	for diff, raw := range fields {
		var ds domain.DifficultyStats
		if err := json.Unmarshal([]byte(raw), &ds); err != nil {
			return nil, fmt.Errorf("stats field %s: %w", diff, err)
		}
		out[diff] = ds
	}
	return out, nil
}
