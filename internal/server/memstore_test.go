package server

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"prayernotebook/pkg/types"
)

// memStore backs handler tests with map-based category and prayer
// storage. It mirrors the SQL layer's contract: owner scoping on every
// lookup, affected-row counts for writes, cascade on category delete,
// and case-insensitive substring search.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]*types.Category
	prayers    map[int64]*types.Prayer
	pingErr    error
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[int64]*types.Category),
		prayers:    make(map[int64]*types.Prayer),
	}
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Categories(ctx context.Context, userID int64) ([]*types.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*types.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			cc := *c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CategoryByID(ctx context.Context, id, userID int64) (*types.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (m *memStore) CreateCategory(ctx context.Context, category types.NewCategory) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id()
	m.categories[id] = &types.Category{
		ID:        id,
		UserID:    category.UserID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *memStore) UpdateCategory(ctx context.Context, category types.CategoryUpdate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[category.ID]
	if !ok || c.UserID != category.UserID {
		return 0, nil
	}
	c.Name = category.Name
	c.Color = category.Color
	return 1, nil
}

func (m *memStore) DeleteCategory(ctx context.Context, id, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok || c.UserID != userID {
		return 0, nil
	}
	delete(m.categories, id)
	for pid, p := range m.prayers {
		if p.CategoryID == id {
			delete(m.prayers, pid)
		}
	}
	return 1, nil
}

func (m *memStore) Prayers(ctx context.Context, userID int64) ([]*types.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collect(func(p *types.Prayer) bool { return p.UserID == userID }), nil
}

func (m *memStore) PrayerByID(ctx context.Context, id, userID int64) (*types.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.prayers[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	pp := *p
	return &pp, nil
}

func (m *memStore) PrayersByCategory(ctx context.Context, categoryID, userID int64) ([]*types.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collect(func(p *types.Prayer) bool {
		return p.CategoryID == categoryID && p.UserID == userID
	}), nil
}

func (m *memStore) AnsweredPrayers(ctx context.Context, userID int64) ([]*types.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.collect(func(p *types.Prayer) bool { return p.UserID == userID && p.IsAnswered })
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateAnswered.After(*out[j].DateAnswered)
	})
	return out, nil
}

func (m *memStore) SearchPrayers(ctx context.Context, userID int64, keyword string) ([]*types.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	needle := strings.ToLower(keyword)
	return m.collect(func(p *types.Prayer) bool {
		if p.UserID != userID {
			return false
		}
		if strings.Contains(strings.ToLower(p.Title), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(p.Description), needle) {
			return true
		}
		return p.Notes != nil && strings.Contains(strings.ToLower(*p.Notes), needle)
	}), nil
}

func (m *memStore) CreatePrayer(ctx context.Context, prayer types.NewPrayer) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id()
	m.prayers[id] = &types.Prayer{
		ID:          id,
		CategoryID:  prayer.CategoryID,
		UserID:      prayer.UserID,
		Title:       prayer.Title,
		Description: prayer.Description,
		Notes:       prayer.Notes,
		DateCreated: time.Now(),
	}
	return id, nil
}

func (m *memStore) UpdatePrayer(ctx context.Context, prayer types.PrayerUpdate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.prayers[prayer.ID]
	if !ok || p.UserID != prayer.UserID {
		return 0, nil
	}
	p.Title = prayer.Title
	p.Description = prayer.Description
	p.Notes = prayer.Notes
	p.CategoryID = prayer.CategoryID
	return 1, nil
}

func (m *memStore) MarkPrayerAnswered(ctx context.Context, id, userID int64, notes *string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.prayers[id]
	if !ok || p.UserID != userID {
		return 0, nil
	}
	now := time.Now()
	p.IsAnswered = true
	p.DateAnswered = &now
	p.Notes = notes
	return 1, nil
}

func (m *memStore) DeletePrayer(ctx context.Context, id, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.prayers[id]
	if !ok || p.UserID != userID {
		return 0, nil
	}
	delete(m.prayers, id)
	return 1, nil
}

// collect must be called with the lock held.
func (m *memStore) collect(match func(*types.Prayer) bool) []*types.Prayer {
	var out []*types.Prayer
	for _, p := range m.prayers {
		if match(p) {
			pp := *p
			out = append(out, &pp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
