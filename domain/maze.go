package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is a generated maze as it is archived and served.
type MazeRecord struct {
	ID        uuid.UUID `json:"id"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Text      string    `json:"text"` // Display form, "<Algorithm> <w>x<h> Maze:" and the diagram.
	CreatedAt time.Time `json:"created_at"`
}
