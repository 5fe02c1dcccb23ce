package engine

import "testing"

func TestStats_RecordWin(t *testing.T) {
	var stats Stats
	stats.RecordWin(20)

	if stats.GamesPlayed != 1 || stats.GamesWon != 1 {
		t.Errorf("Expected 1 played / 1 won, got %d / %d", stats.GamesPlayed, stats.GamesWon)
	}
	if stats.TotalPlacements != 20 {
		t.Errorf("Expected 20 placements, got %d", stats.TotalPlacements)
	}
	if stats.GamesLost() != 0 {
		t.Errorf("Expected 0 losses, got %d", stats.GamesLost())
	}
}

func TestStats_RecordLoss(t *testing.T) {
	var stats Stats
	stats.RecordLoss(7)

	if stats.GamesPlayed != 1 || stats.GamesWon != 0 {
		t.Errorf("Expected 1 played / 0 won, got %d / %d", stats.GamesPlayed, stats.GamesWon)
	}
	if stats.TotalPlacements != 7 {
		t.Errorf("Expected 7 placements, got %d", stats.TotalPlacements)
	}
	if stats.GamesLost() != 1 {
		t.Errorf("Expected 1 loss, got %d", stats.GamesLost())
	}
}

func TestStats_AveragePlacements(t *testing.T) {
	var stats Stats
	if avg := stats.AveragePlacements(); avg != 0.0 {
		t.Errorf("Expected 0 average with no games, got %f", avg)
	}

	stats.RecordWin(20)
	stats.RecordLoss(10)
	if avg := stats.AveragePlacements(); avg != 15.0 {
		t.Errorf("Expected average 15, got %f", avg)
	}
}

func TestStats_Summary(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  string
	}{
		{
			name:  "single win",
			stats: Stats{GamesPlayed: 1, GamesWon: 1, TotalPlacements: 20},
			want:  "You won 1 out of 1 game, with 20 successful placements, an average of 20.00 per game.",
		},
		{
			name:  "only losses",
			stats: Stats{GamesPlayed: 2, GamesWon: 0, TotalPlacements: 15},
			want:  "You lost 2 out of 2 games, with 15 successful placements, an average of 7.50 per game.",
		},
		{
			name:  "mixed record",
			stats: Stats{GamesPlayed: 4, GamesWon: 1, TotalPlacements: 50},
			want:  "You won 1 out of 4 games, with 50 successful placements, an average of 12.50 per game.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
