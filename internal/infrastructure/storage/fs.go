package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"svw.info/sudokuterm/internal/domain"
)

// FS persists statistics as a single JSON file:
//
//	{ "<player>": { "EASY": {games_played, games_won, ...}, ... }, ... }
//
// The file and its directory are created on first use.
type FS struct {
	mu   sync.Mutex
	path string
}

// NewFS stores statistics under dir/statistics.json.
func NewFS(dir string) *FS {
	return &FS{path: filepath.Join(dir, "statistics.json")}
}

type fileStats map[string]domain.PlayerStats

func (s *FS) load() (fileStats, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileStats{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return fileStats{}, nil
	}
	var all fileStats
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("statistics file %s: %w", s.path, err)
	}
	if all == nil {
		all = fileStats{}
	}
	return all, nil
}

func (s *FS) store(all fileStats) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}

// Record folds one finished game into the player's aggregate.
func (s *FS) Record(ctx context.Context, player string, d domain.Difficulty, won bool, elapsed time.Duration) error {
	if elapsed < 0 {
		return fmt.Errorf("negative elapsed time %v", elapsed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	ps := all[player]
	if ps == nil {
		ps = domain.PlayerStats{}
		all[player] = ps
	}
	ds := ps[d.String()]
	if won {
		ds.RecordWin(elapsed)
	} else {
		ds.RecordLoss(elapsed)
	}
	ps[d.String()] = ds
	return s.store(all)
}

// Get returns the aggregate for one player and difficulty, zero-valued if
// nothing was recorded yet.
func (s *FS) Get(ctx context.Context, player string, d domain.Difficulty) (domain.DifficultyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return domain.DifficultyStats{}, err
	}
	return all[player][d.String()], nil
}

// All returns every per-difficulty aggregate for a player.
func (s *FS) All(ctx context.Context, player string) (domain.PlayerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	ps := all[player]
	if ps == nil {
		ps = domain.PlayerStats{}
	}
	return ps, nil
}
