// Package mazeapi provides the HTTP surface for generating and fetching mazes.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/mazegen/domain"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Seed      *int64 `json:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentResponse lists archived mazes, newest first.
type RecentResponse struct {
	Mazes []*MazeResponse `json:"mazes"`
}

// AlgorithmsResponse lists the available algorithms.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        r.ID.String(),
		Algorithm: r.Algorithm,
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}
