package engine

import "fmt"

// Stats accumulates player performance across completed rounds: games
// played, games won, and the total number of successful placements. It is
// owned by whoever controls the session lifecycle and is updated by explicit
// calls after each terminal outcome; the grid knows nothing about it.
type Stats struct {
	GamesPlayed     int `json:"games_played"`
	GamesWon        int `json:"games_won"`
	TotalPlacements int `json:"total_placements"`
}

// RecordWin counts a completed, won round and its successful placements.
func (s *Stats) RecordWin(placements int) {
	s.GamesPlayed++
	s.GamesWon++
	s.TotalPlacements += placements
}

// RecordLoss counts a completed, lost round and its successful placements.
func (s *Stats) RecordLoss(placements int) {
	s.GamesPlayed++
	s.TotalPlacements += placements
}

// GamesLost returns the number of completed rounds that were not won.
func (s *Stats) GamesLost() int {
	return s.GamesPlayed - s.GamesWon
}

// AveragePlacements returns the mean successful placements per completed
// round, or 0 when no round has completed.
func (s *Stats) AveragePlacements() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.TotalPlacements) / float64(s.GamesPlayed)
}

// Summary renders the stats in a human-readable sentence. Rounds that ended
// without a single win are reported by their loss count.
func (s *Stats) Summary() string {
	outcome := "won"
	outcomeCount := s.GamesWon
	if s.GamesWon == 0 {
		outcome = "lost"
		outcomeCount = s.GamesLost()
	}

	plural := "s"
	if s.GamesPlayed == 1 {
		plural = ""
	}

	return fmt.Sprintf("You %s %d out of %d game%s, with %d successful placements, an average of %.2f per game.",
		outcome, outcomeCount, s.GamesPlayed, plural, s.TotalPlacements, s.AveragePlacements())
}
