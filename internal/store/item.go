package store

import (
	"context"

	"github.com/attire-labs/wardrobe-api/internal/domain"
)

// ItemStore defines the interface for clothing item persistence.
type ItemStore interface {
	// Create saves a new clothing item to the store.
	Create(ctx context.Context, item *domain.ClothingItem) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.ClothingItem, error)

	// ListByOwner retrieves all items owned by the given user, most
	// recently created first.
	ListByOwner(ctx context.Context, ownerID domain.ID) ([]*domain.ClothingItem, error)

	// Update modifies an existing item.
	// Returns ErrItemNotFound if the item does not exist.
	Update(ctx context.Context, item *domain.ClothingItem) error

	// Delete removes an item from the store by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id domain.ID) error
}
