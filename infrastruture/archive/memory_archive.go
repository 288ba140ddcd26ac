package archive

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
)

type memoryEntry struct {
	record    dmn.MazeRecord
	expiresAt time.Time
}

// MemoryArchive keeps maze records in process memory. Records expire after the TTL.
type MemoryArchive struct {
	records map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	sync.RWMutex
}

// NewMemoryArchive creates an empty MemoryArchive.
func NewMemoryArchive(ttlSeconds int) (*MemoryArchive, error) {
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("ttl must be positive, got %d", ttlSeconds)
	}
	return &MemoryArchive{
		records: make(map[uuid.UUID]memoryEntry),
		ttl:     time.Duration(ttlSeconds) * time.Second,
		now:     time.Now,
	}, nil
}

// Save stores a copy of the record and drops any expired entries.
func (ma *MemoryArchive) Save(_ context.Context, record *dmn.MazeRecord) error {
	ma.Lock()
	defer ma.Unlock()

	now := ma.now()
	for id, e := range ma.records {
		if !now.Before(e.expiresAt) {
			delete(ma.records, id)
		}
	}
	ma.records[record.ID] = memoryEntry{record: *record, expiresAt: now.Add(ma.ttl)}
	return nil
}

// ByID returns a copy of the record, or i.ErrRecordNotFound.
func (ma *MemoryArchive) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ma.RLock()
	defer ma.RUnlock()

	e, ok := ma.records[id]
	if !ok || !ma.now().Before(e.expiresAt) {
		return nil, i.ErrRecordNotFound
	}
	record := e.record
	return &record, nil
}

// Recent returns copies of up to limit unexpired records, newest first.
func (ma *MemoryArchive) Recent(_ context.Context, limit int) ([]*dmn.MazeRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	ma.RLock()
	defer ma.RUnlock()

	now := ma.now()
	records := make([]*dmn.MazeRecord, 0, len(ma.records))
	for _, e := range ma.records {
		if now.Before(e.expiresAt) {
			record := e.record
			records = append(records, &record)
		}
	}
	slices.SortFunc(records, func(a, b *dmn.MazeRecord) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
