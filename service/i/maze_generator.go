package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/google/uuid"
)

// GenerateRequest describes one maze to generate.
type GenerateRequest struct {
	Algorithm string
	Width     int
	Height    int
	Seed      *int64 // Optional; nil draws a fresh seed.
}

// MazeGenerator generates mazes and serves previously generated ones.
type MazeGenerator interface {
	// Generate carves a new maze and archives it.
	Generate(ctx context.Context, req GenerateRequest) (*dmn.MazeRecord, error)

	// ByID returns an archived maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Recent returns up to limit archived mazes, newest first.
	Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error)

	// Algorithms lists the algorithm names Generate accepts.
	Algorithms() []string
}
