package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// ItemStore implements store.ItemStore backed by PostgreSQL.
type ItemStore struct {
	db *sql.DB
}

// Ensure ItemStore implements the store.ItemStore interface.
var _ store.ItemStore = (*ItemStore)(nil)

// NewItemStore creates a PostgreSQL-backed ItemStore.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Create implements store.ItemStore.Create.
func (s *ItemStore) Create(ctx context.Context, item *domain.ClothingItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	const query = `
		INSERT INTO clothing_items
			(id, owner_id, name, description, category, size, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		item.ID.String(), item.OwnerID.String(), item.Name, item.Description,
		string(item.Category), string(item.Size), item.ImageURL,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ItemStore.GetByID.
func (s *ItemStore) GetByID(ctx context.Context, id domain.ID) (*domain.ClothingItem, error) {
	const query = `
		SELECT id, owner_id, name, description, category, size, image_url, created_at, updated_at
		FROM clothing_items WHERE id = $1`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrItemNotFound
		}
		return nil, MapError(err)
	}
	return item, nil
}

// ListByOwner implements store.ItemStore.ListByOwner.
func (s *ItemStore) ListByOwner(
	ctx context.Context,
	ownerID domain.ID,
) ([]*domain.ClothingItem, error) {
	const query = `
		SELECT id, owner_id, name, description, category, size, image_url, created_at, updated_at
		FROM clothing_items WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*domain.ClothingItem, 0)
	for rows.Next() {
		var item domain.ClothingItem
		var id, ownerID, category, size string
		if err := rows.Scan(&id, &ownerID, &item.Name, &item.Description,
			&category, &size, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		item.ID = domain.ID(id)
		item.OwnerID = domain.ID(ownerID)
		item.Category = domain.Category(category)
		item.Size = domain.Size(size)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// Update implements store.ItemStore.Update.
func (s *ItemStore) Update(ctx context.Context, item *domain.ClothingItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	const query = `
		UPDATE clothing_items
		SET name = $2, description = $3, category = $4, size = $5, image_url = $6, updated_at = now()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		item.ID.String(), item.Name, item.Description,
		string(item.Category), string(item.Size), item.ImageURL)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrItemNotFound)
}

// Delete implements store.ItemStore.Delete.
func (s *ItemStore) Delete(ctx context.Context, id domain.ID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE id = $1`, id.String())
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrItemNotFound)
}

func scanItem(row *sql.Row) (*domain.ClothingItem, error) {
	var item domain.ClothingItem
	var id, ownerID, category, size string
	err := row.Scan(&id, &ownerID, &item.Name, &item.Description,
		&category, &size, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	item.ID = domain.ID(id)
	item.OwnerID = domain.ID(ownerID)
	item.Category = domain.Category(category)
	item.Size = domain.Size(size)
	return &item, nil
}
