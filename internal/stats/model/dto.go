// Package model provides DTOs for the statistics module.
package model

// TournamentStatistics holds aggregate statistics over all tournaments.
//
// BestScore is 0 both when no tournaments exist and when the minimum
// stored score is literally zero; callers cannot distinguish the two.
type TournamentStatistics struct {
	TotalYears     int    `json:"total_years"`
	UniqueWinners  int    `json:"unique_winners"`
	BestScore      int    `json:"best_score"`
	MostWins       int    `json:"most_wins"`
	MostWinsGolfer string `json:"most_wins_golfer"`
}
