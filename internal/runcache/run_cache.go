// Package runcache is an explicit in-memory cache of simulation runs and
// the views derived from them. Entries are keyed by a content hash of the
// run parameters and addressable by run id; callers invalidate explicitly
// when parameters change.
package runcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"stockdash/internal/domain"
)

// Result holds everything derived from one simulation run.
type Result struct {
	RunID          uuid.UUID
	ParamsHash     string
	Owner          *string
	Snapshots      []domain.DailySnapshot
	Segments       []domain.RebalanceSegment
	MonthlyReturns []domain.CalendarPeriodReturn
	Statistics     *domain.PeriodStatistics
	CreatedAt      time.Time
}

type Cache struct {
	mu     sync.RWMutex
	byHash map[string]*Result
	byID   map[uuid.UUID]*Result
}

func New() *Cache {
	return &Cache{
		byHash: map[string]*Result{},
		byID:   map[uuid.UUID]*Result{},
	}
}

// HashParams produces the content key for a set of run parameters.
func HashParams(params any) (string, error) {
	bytes, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run params: %w", err)
	}
	hash := sha256.Sum256(bytes)
	return hex.EncodeToString(hash[:]), nil
}

func (c *Cache) GetByHash(hash string) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.byHash[hash]
	return result, ok
}

func (c *Cache) GetByID(id uuid.UUID) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.byID[id]
	return result, ok
}

// Put registers a result under both keys, assigning a run id and creation
// time if the caller left them unset. A result for the same params hash
// replaces the previous one.
func (c *Cache) Put(result *Result) {
	if result.RunID == uuid.Nil {
		result.RunID = uuid.New()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.byHash[result.ParamsHash]; ok {
		delete(c.byID, prev.RunID)
	}
	c.byHash[result.ParamsHash] = result
	c.byID[result.RunID] = result
}

// Invalidate drops the entry for the given params hash, if any.
func (c *Cache) Invalidate(hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.byHash[hash]; ok {
		delete(c.byID, prev.RunID)
		delete(c.byHash, hash)
	}
}
