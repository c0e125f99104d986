package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/service/auth"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// UserStore implements store.UserStore backed by PostgreSQL. Password
// hashing happens here, immediately before the row is written; plaintext
// passwords never leave the process.
type UserStore struct {
	db     *sql.DB
	hasher auth.PasswordHasher
}

// Ensure UserStore implements the store.UserStore interface.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a PostgreSQL-backed UserStore. The database
// connection is initialized and owned by the caller.
func NewUserStore(db *sql.DB, hasher auth.PasswordHasher) *UserStore {
	return &UserStore{db: db, hasher: hasher}
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return store.NewStoreError("user", "create", "hashing password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	const query = `
		INSERT INTO users (id, name, email, hashed_password, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query,
		user.ID.String(), user.Name, user.Email, user.HashedPassword,
		user.AvatarURL, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	const query = `
		SELECT id, name, email, hashed_password, avatar_url, created_at, updated_at
		FROM users WHERE id = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, name, email, hashed_password, avatar_url, created_at, updated_at
		FROM users WHERE email = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// Update implements store.UserStore.Update. A plaintext Password on the
// user replaces the stored hash.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if user.Password != "" {
		if err := user.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
		hashed, err := s.hasher.Hash(user.Password)
		if err != nil {
			return store.NewStoreError("user", "update", "hashing password", err)
		}
		user.HashedPassword = hashed
		user.Password = ""
	}

	const query = `
		UPDATE users
		SET name = $2, email = $3, hashed_password = $4, avatar_url = $5, updated_at = now()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		user.ID.String(), user.Name, user.Email, user.HashedPassword, user.AvatarURL)
	if err != nil {
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id domain.ID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var id string
	err := row.Scan(&id, &user.Name, &user.Email, &user.HashedPassword,
		&user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.ID = domain.ID(id)
	return &user, nil
}
