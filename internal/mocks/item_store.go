package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// MockItemStore is an in-memory store.ItemStore for testing. Each method
// can be overridden; the default behavior is a map-backed store. Calls is
// incremented on every method invocation so tests can assert the store
// was (or wasn't) reached.
type MockItemStore struct {
	mu    sync.Mutex
	items map[domain.ID]*domain.ClothingItem

	// Calls counts every store method invocation.
	Calls int

	CreateFn      func(ctx context.Context, item *domain.ClothingItem) error
	GetByIDFn     func(ctx context.Context, id domain.ID) (*domain.ClothingItem, error)
	ListByOwnerFn func(ctx context.Context, ownerID domain.ID) ([]*domain.ClothingItem, error)
	UpdateFn      func(ctx context.Context, item *domain.ClothingItem) error
	DeleteFn      func(ctx context.Context, id domain.ID) error
}

var _ store.ItemStore = (*MockItemStore)(nil)

// NewMockItemStore creates an empty in-memory item store.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{items: make(map[domain.ID]*domain.ClothingItem)}
}

// Create implements store.ItemStore.
func (m *MockItemStore) Create(ctx context.Context, item *domain.ClothingItem) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

// GetByID implements store.ItemStore.
func (m *MockItemStore) GetByID(ctx context.Context, id domain.ID) (*domain.ClothingItem, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

// ListByOwner implements store.ItemStore.
func (m *MockItemStore) ListByOwner(
	ctx context.Context,
	ownerID domain.ID,
) ([]*domain.ClothingItem, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]*domain.ClothingItem, 0)
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			cp := *item
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Update implements store.ItemStore.
func (m *MockItemStore) Update(ctx context.Context, item *domain.ClothingItem) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return store.ErrItemNotFound
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

// Delete implements store.ItemStore.
func (m *MockItemStore) Delete(ctx context.Context, id domain.ID) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return store.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}
