package domain

import "time"

// DifficultyStats aggregates a player's results at one difficulty. Times
// are stored as seconds so the JSON store stays plain key-value numbers.
type DifficultyStats struct {
	Played       int     `json:"games_played"`
	Won          int     `json:"games_won"`
	Lost         int     `json:"games_lost"`
	TotalSeconds float64 `json:"total_seconds"`
	BestSeconds  float64 `json:"best_seconds,omitempty"`
}

// RecordWin counts a won game and tracks the best completion time.
func (s *DifficultyStats) RecordWin(elapsed time.Duration) {
	s.Played++
	s.Won++
	sec := elapsed.Seconds()
	s.TotalSeconds += sec
	if s.BestSeconds == 0 || sec < s.BestSeconds {
		s.BestSeconds = sec
	}
}

// RecordLoss counts a lost game.
func (s *DifficultyStats) RecordLoss(elapsed time.Duration) {
	s.Played++
	s.Lost++
	s.TotalSeconds += elapsed.Seconds()
}

// WinRate returns the percentage of games won, 0 with no games played.
func (s DifficultyStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played) * 100
}

// AverageTime returns mean time per game, 0 with no games played.
func (s DifficultyStats) AverageTime() time.Duration {
	if s.Played == 0 {
		return 0
	}
	return time.Duration(s.TotalSeconds / float64(s.Played) * float64(time.Second))
}

// TotalTime returns the accumulated play time.
func (s DifficultyStats) TotalTime() time.Duration {
	return time.Duration(s.TotalSeconds * float64(time.Second))
}

// BestTime returns the fastest win, false if there is none yet.
func (s DifficultyStats) BestTime() (time.Duration, bool) {
	if s.BestSeconds == 0 {
		return 0, false
	}
	return time.Duration(s.BestSeconds * float64(time.Second)), true
}

// PlayerStats maps canonical difficulty keys to per-level aggregates.
type PlayerStats map[string]DifficultyStats
