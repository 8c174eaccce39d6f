// Package model provides domain models and DTOs for the golfer module.
package model

import "time"

// UpsertGolferRequest represents the admin request to insert or replace
// a golfer biography, keyed by name.
type UpsertGolferRequest struct {
	Name        string `json:"name" binding:"required"`
	Bio         string `json:"bio"`
	TotalMajors int    `json:"total_majors"`
	TurnedPro   *int   `json:"turned_pro"`
	Nationality string `json:"nationality"`
}

// GolferResponse represents a golfer in API responses, annotated with
// the derived Masters wins sequence. For names that appear only as
// tournament winners the view is synthesized: id 0, empty bio and
// nationality, majors equal to the win count, blank timestamps.
type GolferResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	TotalMajors int    `json:"total_majors"`
	TurnedPro   *int   `json:"turned_pro"`
	Nationality string `json:"nationality"`
	MastersWins []int  `json:"masters_wins"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToResponse converts a stored golfer row to its API representation.
func ToResponse(g *Golfer, wins []int) *GolferResponse {
	return &GolferResponse{
		ID:          g.ID,
		Name:        g.Name,
		Bio:         g.Bio,
		TotalMajors: g.TotalMajors,
		TurnedPro:   g.TurnedPro,
		Nationality: g.Nationality,
		MastersWins: wins,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
}

// Placeholder synthesizes the view for a name known only as a winner.
func Placeholder(name string, wins []int) *GolferResponse {
	return &GolferResponse{
		ID:          0,
		Name:        name,
		TotalMajors: len(wins),
		MastersWins: wins,
	}
}
