package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/infrastruture/archive"
	logger "github.com/beka-birhanu/mazegen/infrastruture/log"
	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingArchive struct{ err error }

func (f *failingArchive) Save(context.Context, *dmn.MazeRecord) error { return f.err }

func (f *failingArchive) ByID(context.Context, uuid.UUID) (*dmn.MazeRecord, error) {
	return nil, f.err
}

func (f *failingArchive) Recent(context.Context, int) ([]*dmn.MazeRecord, error) {
	return nil, f.err
}

func newTestService(t *testing.T, a i.MazeArchive) (*MazeService, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New("MAZE", "", &buf)
	require.NoError(t, err)
	svc, err := NewMazeService(MazeServiceConfig{Archive: a, Logger: l, MaxDimension: 20})
	require.NoError(t, err)
	return svc, &buf
}

func TestMazeService(t *testing.T) {
	ctx := context.Background()
	memory, err := archive.NewMemoryArchive(60)
	require.NoError(t, err)

	t.Run("Generate and look up", func(t *testing.T) {
		svc, logs := newTestService(t, memory)
		seed := int64(5)

		record, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: maze.SideWinderName, Width: 4, Height: 3, Seed: &seed})
		require.NoError(t, err)
		assert.Equal(t, maze.SideWinderName, record.Algorithm)
		assert.Equal(t, 4, record.Width)
		assert.Equal(t, 3, record.Height)
		assert.Equal(t, seed, record.Seed)
		assert.Equal(t, maze.NewSideWinder(4, 3, maze.WithSeed(seed)).String(), record.Text)
		assert.Contains(t, logs.String(), record.ID.String())

		got, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Text, got.Text)
	})

	t.Run("Unseeded requests are reproducible from the record", func(t *testing.T) {
		svc, _ := newTestService(t, memory)

		record, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: maze.BinaryTreeName, Width: 6, Height: 6})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(record.Text, "BinaryTree 6x6 Maze:\n"))
		assert.Equal(t, maze.NewBinaryTree(6, 6, maze.WithSeed(record.Seed)).String(), record.Text)
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		svc, _ := newTestService(t, memory)
		for _, dim := range [][2]int{{0, 3}, {3, 0}, {-1, 4}, {21, 2}, {2, 21}} {
			_, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: maze.BinaryTreeName, Width: dim[0], Height: dim[1]})
			assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dim[0], dim[1])
		}
	})

	t.Run("Unknown algorithm", func(t *testing.T) {
		svc, _ := newTestService(t, memory)
		_, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: "Kruskal", Width: 3, Height: 3})
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("Missing maze", func(t *testing.T) {
		svc, _ := newTestService(t, memory)
		_, err := svc.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrMazeNotFound)
	})

	t.Run("Archive failures are reported", func(t *testing.T) {
		boom := errors.New("connection refused")
		svc, logs := newTestService(t, &failingArchive{err: boom})

		_, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: maze.BinaryTreeName, Width: 3, Height: 3})
		assert.ErrorIs(t, err, boom)

		_, err = svc.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrMazeNotFound)

		_, err = svc.Recent(ctx, 5)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, logs.String(), "[ERROR]")
	})

	t.Run("Recent", func(t *testing.T) {
		fresh, err := archive.NewMemoryArchive(60)
		require.NoError(t, err)
		svc, _ := newTestService(t, fresh)

		var ids []uuid.UUID
		for n := 0; n < 12; n++ {
			record, err := svc.Generate(ctx, i.GenerateRequest{Algorithm: maze.BinaryTreeName, Width: 2, Height: 2})
			require.NoError(t, err)
			ids = append(ids, record.ID)
		}

		records, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, records, defaultRecentLimit)

		records, err = svc.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		for _, r := range records {
			assert.Contains(t, ids, r.ID)
		}
		assert.False(t, records[0].CreatedAt.Before(records[2].CreatedAt))

		records, err = svc.Recent(ctx, 1000)
		require.NoError(t, err)
		assert.Len(t, records, 12)
	})

	t.Run("Algorithms", func(t *testing.T) {
		svc, _ := newTestService(t, memory)
		assert.Equal(t, []string{maze.BinaryTreeName, maze.SideWinderName}, svc.Algorithms())
	})

	t.Run("Invalid configuration", func(t *testing.T) {
		l, err := logger.New("MAZE", "", &bytes.Buffer{})
		require.NoError(t, err)

		_, err = NewMazeService(MazeServiceConfig{Logger: l, MaxDimension: 5})
		assert.Error(t, err)
		_, err = NewMazeService(MazeServiceConfig{Archive: memory, MaxDimension: 5})
		assert.Error(t, err)
		_, err = NewMazeService(MazeServiceConfig{Archive: memory, Logger: l})
		assert.Error(t, err)
	})
}
