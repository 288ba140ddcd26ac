package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// Service errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrMazeNotFound      = errors.New("maze not found")
)

// MazeService generates mazes on request and keeps them in an archive.
type MazeService struct {
	archive      i.MazeArchive
	logger       i.Logger
	maxDimension int
}

// MazeServiceConfig holds the dependencies of a MazeService.
type MazeServiceConfig struct {
	Archive      i.MazeArchive
	Logger       i.Logger
	MaxDimension int // Largest accepted width or height
}

// NewMazeService creates a MazeService from its configuration.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Archive == nil {
		return nil, errors.New("maze archive is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.MaxDimension < 1 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", cfg.MaxDimension)
	}
	return &MazeService{
		archive:      cfg.Archive,
		logger:       cfg.Logger,
		maxDimension: cfg.MaxDimension,
	}, nil
}

// Generate carves a maze with the requested algorithm and archives its
// display form under a fresh ID.
func (s *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*dmn.MazeRecord, error) {
	if min(req.Width, req.Height) < 1 || max(req.Width, req.Height) > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be between 1 and %d",
			ErrInvalidDimensions, req.Width, req.Height, s.maxDimension)
	}

	var opts []maze.Option
	if req.Seed != nil {
		opts = append(opts, maze.WithSeed(*req.Seed))
	}

	m, err := maze.Create(req.Algorithm, req.Width, req.Height, opts...)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Algorithm: m.Algorithm(),
		Width:     req.Width,
		Height:    req.Height,
		Seed:      m.Seed(),
		Text:      m.String(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.archive.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("archiving maze %s: %v", record.ID, err))
		return nil, fmt.Errorf("archiving maze: %w", err)
	}

	s.logger.Info(fmt.Sprintf("generated %s %dx%d maze %s (seed %d)",
		record.Algorithm, record.Width, record.Height, record.ID, record.Seed))
	return record, nil
}

// ByID returns a previously generated maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.archive.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrRecordNotFound) {
			return nil, ErrMazeNotFound
		}
		s.logger.Error(fmt.Sprintf("loading maze %s: %v", id, err))
		return nil, fmt.Errorf("loading maze: %w", err)
	}
	return record, nil
}

// Recent returns the newest archived mazes. A non-positive limit selects the
// default; larger limits are capped.
func (s *MazeService) Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	records, err := s.archive.Recent(ctx, limit)
	if err != nil {
		s.logger.Error(fmt.Sprintf("listing recent mazes: %v", err))
		return nil, fmt.Errorf("listing recent mazes: %w", err)
	}
	return records, nil
}

// Algorithms lists the algorithm names Generate accepts.
func (s *MazeService) Algorithms() []string {
	return maze.AlgorithmNames()
}
