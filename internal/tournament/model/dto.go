// Package model provides domain models and DTOs for the tournament module.
package model

import "time"

// UpsertTournamentRequest represents the admin request to insert or
// replace a tournament result, keyed by year.
type UpsertTournamentRequest struct {
	Year        int    `json:"year" binding:"required"`
	Winner      string `json:"winner" binding:"required"`
	Score       int    `json:"score"`
	ToPar       int    `json:"to_par"`
	Nationality string `json:"nationality"`
}

// TournamentResponse represents a tournament result in API responses.
type TournamentResponse struct {
	ID          uint   `json:"id"`
	Year        int    `json:"year"`
	Winner      string `json:"winner"`
	Score       int    `json:"score"`
	ToPar       int    `json:"to_par"`
	Nationality string `json:"nationality"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToResponse converts a stored tournament row to its API representation.
func ToResponse(t *Tournament) *TournamentResponse {
	return &TournamentResponse{
		ID:          t.ID,
		Year:        t.Year,
		Winner:      t.Winner,
		Score:       t.Score,
		ToPar:       t.ToPar,
		Nationality: t.Nationality,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// ToResponseList converts stored tournament rows to API representations.
func ToResponseList(ts []Tournament) []TournamentResponse {
	out := make([]TournamentResponse, 0, len(ts))
	for i := range ts {
		out = append(out, *ToResponse(&ts[i]))
	}
	return out
}
