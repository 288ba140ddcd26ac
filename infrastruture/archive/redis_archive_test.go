package archive

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisArchive(t *testing.T, ttlSeconds int) (*RedisArchive, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	a, err := NewRedisArchive(client, ttlSeconds)
	require.NoError(t, err)
	return a, s
}

func TestRedisArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("Save and load", func(t *testing.T) {
		a, s := newTestRedisArchive(t, 60)

		record := &dmn.MazeRecord{
			ID:        uuid.New(),
			Algorithm: "BinaryTree",
			Width:     3,
			Height:    2,
			Seed:      -7,
			Text:      "BinaryTree 3x2 Maze:\n+---+---+---+\n",
			CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, a.Save(ctx, record))

		got, err := a.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)

		assert.True(t, s.Exists(a.key(record.ID)))
		assert.Equal(t, 60*time.Second, s.TTL(a.key(record.ID)))
	})

	t.Run("Unknown ID", func(t *testing.T) {
		a, _ := newTestRedisArchive(t, 60)

		_, err := a.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrRecordNotFound)
	})

	t.Run("Corrupt value", func(t *testing.T) {
		a, s := newTestRedisArchive(t, 60)

		id := uuid.New()
		require.NoError(t, s.Set(a.key(id), "not json"))
		_, err := a.ByID(ctx, id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, i.ErrRecordNotFound)
	})

	t.Run("Recent is newest first and limited", func(t *testing.T) {
		a, _ := newTestRedisArchive(t, 60)

		base := time.Now().UTC()
		var ids []uuid.UUID
		for n := 0; n < 3; n++ {
			record := &dmn.MazeRecord{ID: uuid.New(), CreatedAt: base.Add(time.Duration(n) * time.Second)}
			require.NoError(t, a.Save(ctx, record))
			ids = append(ids, record.ID)
		}

		records, err := a.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, ids[2], records[0].ID)
		assert.Equal(t, ids[1], records[1].ID)

		records, err = a.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, ids[0], records[2].ID)

		records, err = a.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Recent on an empty archive", func(t *testing.T) {
		a, _ := newTestRedisArchive(t, 60)

		records, err := a.Recent(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Recent skips records whose value is gone", func(t *testing.T) {
		a, s := newTestRedisArchive(t, 60)

		base := time.Now().UTC()
		kept := &dmn.MazeRecord{ID: uuid.New(), CreatedAt: base}
		dropped := &dmn.MazeRecord{ID: uuid.New(), CreatedAt: base.Add(time.Second)}
		require.NoError(t, a.Save(ctx, kept))
		require.NoError(t, a.Save(ctx, dropped))
		s.Del(a.key(dropped.ID))

		records, err := a.Recent(ctx, 5)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, kept.ID, records[0].ID)
	})

	t.Run("Records expire", func(t *testing.T) {
		a, s := newTestRedisArchive(t, 60)

		base := time.Now().UTC()
		var ids []uuid.UUID
		for n := 0; n < 3; n++ {
			record := &dmn.MazeRecord{ID: uuid.New(), CreatedAt: base.Add(time.Duration(n) * time.Millisecond)}
			require.NoError(t, a.Save(ctx, record))
			ids = append(ids, record.ID)
		}

		s.FastForward(61 * time.Second)

		for _, id := range ids {
			_, err := a.ByID(ctx, id)
			assert.ErrorIs(t, err, i.ErrRecordNotFound)
		}
		records, err := a.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestNewRedisArchive(t *testing.T) {
	t.Run("Keys and TTL", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		defer client.Close()

		a, err := NewRedisArchive(client, 90)
		require.NoError(t, err)

		id := uuid.New()
		assert.Equal(t, "mazegen:maze:"+id.String(), a.key(id))
		assert.Equal(t, 90*time.Second, a.ttl)
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		_, err := NewRedisArchive(nil, 60)
		assert.Error(t, err)

		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		defer client.Close()
		_, err = NewRedisArchive(client, 0)
		assert.Error(t, err)
	})
}
