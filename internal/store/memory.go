package store

import (
	"context"
	"sync"
	"time"

	"github.com/socialchef/moodchef/internal/recipe"
)

// MemoryStore keeps recipes in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	recipes []recipe.Recipe
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (m *MemoryStore) Insert(ctx context.Context, draft recipe.Draft) (recipe.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := draft.Materialize(m.nextID, m.now().UTC())
	m.nextID++
	m.recipes = append(m.recipes, r)
	return r, nil
}

func (m *MemoryStore) FindByMood(ctx context.Context, mood string) ([]recipe.Recipe, error) {
	mood = recipe.NormalizeMood(mood)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []recipe.Recipe
	for _, r := range m.recipes {
		if r.Mood == mood {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.recipes)), nil
}
