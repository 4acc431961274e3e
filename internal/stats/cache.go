package stats

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"ai-task-manager/internal/model"
)

// Cache memoizes summaries per input snapshot. The derivation is idempotent,
// so a summary can be reused until the underlying collection changes; callers
// supply a fingerprint that changes whenever the collection does.
type Cache struct {
	entries *lru.Cache[string, Summary]
}

// NewCache creates a summary cache holding up to size fingerprints.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, Summary](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Summarize returns the cached summary for key, computing and storing it on miss.
func (c *Cache) Summarize(key string, tasks []model.Task, now time.Time) Summary {
	if s, ok := c.entries.Get(key); ok {
		return s
	}

	s := ComputeSummary(tasks, now)
	c.entries.Add(key, s)
	return s
}

// Invalidate drops the cached summary for key, if any.
func (c *Cache) Invalidate(key string) {
	c.entries.Remove(key)
}

// Fingerprint builds a cache key for a user's task snapshot. Any create,
// update, or delete moves either the count or the latest update time, so the
// key changes exactly when the snapshot does.
func Fingerprint(userID string, tasks []model.Task) string {
	var latest time.Time
	for _, t := range tasks {
		if t.UpdatedAt.After(latest) {
			latest = t.UpdatedAt
		}
	}
	return fmt.Sprintf("%s:%d:%d", userID, len(tasks), latest.UnixNano())
}
