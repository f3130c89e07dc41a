package domain

import (
	"testing"
	"time"
)

func TestDifficultyStatsAggregation(t *testing.T) {
	var s DifficultyStats

	if s.WinRate() != 0 || s.AverageTime() != 0 {
		t.Fatal("fresh stats should report zero rate and time")
	}
	if _, ok := s.BestTime(); ok {
		t.Fatal("fresh stats should have no best time")
	}

	s.RecordWin(90 * time.Second)
	s.RecordWin(60 * time.Second)
	s.RecordLoss(30 * time.Second)

	if s.Played != 3 || s.Won != 2 || s.Lost != 1 {
		t.Fatalf("counters: %+v", s)
	}
	if got := s.WinRate(); got < 66.6 || got > 66.7 {
		t.Fatalf("WinRate = %.2f", got)
	}
	if got := s.TotalTime(); got != 3*time.Minute {
		t.Fatalf("TotalTime = %v", got)
	}
	if got := s.AverageTime(); got != time.Minute {
		t.Fatalf("AverageTime = %v", got)
	}
	best, ok := s.BestTime()
	if !ok || best != 60*time.Second {
		t.Fatalf("BestTime = %v, %v", best, ok)
	}

	// a slower win must not displace the best
	s.RecordWin(2 * time.Hour)
	if best, _ := s.BestTime(); best != 60*time.Second {
		t.Fatalf("best displaced by slower win: %v", best)
	}
}

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("  Bob  ")
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if p.Name != "Bob" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	for _, bad := range []string{"", "   ", "\t\n"} {
		if _, err := NewPlayer(bad); err == nil {
			t.Fatalf("NewPlayer(%q) accepted", bad)
		}
	}
}
