package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/google/uuid"
)

// MazeArchive defines the interface for keeping generated mazes around.
type MazeArchive interface {
	// Save stores a maze record, replacing any record with the same ID.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	// Returns ErrRecordNotFound if there is no such record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Recent returns up to limit unexpired records, newest first.
	Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error)
}
