package domain

import (
	"errors"
	"net/url"
	"time"
)

// Clothing item validation errors.
var (
	ErrEmptyItemID   = errors.New("item ID cannot be empty")
	ErrEmptyItemName = errors.New("item name cannot be empty")
	ErrItemNameShort = errors.New("item name must be at least 2 characters long")
	ErrItemNameLong  = errors.New("item name must be at most 30 characters long")
	ErrEmptyOwnerID  = errors.New("item owner ID cannot be empty")
)

// Item name length bounds.
const (
	MinItemNameLength = 2
	MaxItemNameLength = 30
)

// MaxItemDescriptionLength bounds the free-text description.
const MaxItemDescriptionLength = 200

// DefaultItemImageURL is applied when an item is created without an image.
const DefaultItemImageURL = "https://static.wardrobe.example/items/placeholder.png"

// Category is the closed set of clothing item categories.
type Category string

// Known categories.
const (
	CategoryShirt     Category = "shirt"
	CategoryPants     Category = "pants"
	CategoryDress     Category = "dress"
	CategoryJacket    Category = "jacket"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// Categories lists all known categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryShirt, CategoryPants, CategoryDress,
		CategoryJacket, CategoryShoes, CategoryAccessory,
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryShirt, CategoryPants, CategoryDress,
		CategoryJacket, CategoryShoes, CategoryAccessory:
		return true
	}
	return false
}

// Size is the closed set of clothing item sizes.
type Size string

// Known sizes.
const (
	SizeXS Size = "xs"
	SizeS  Size = "s"
	SizeM  Size = "m"
	SizeL  Size = "l"
	SizeXL Size = "xl"
)

// IsValid reports whether s is a known size.
func (s Size) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// ClothingItem represents a single garment owned by a user.
type ClothingItem struct {
	ID          ID        `json:"id"`
	OwnerID     ID        `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Size        Size      `json:"size"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewClothingItem creates a ClothingItem owned by ownerID with a fresh ID
// and timestamps. An empty image URL takes the default.
func NewClothingItem(
	ownerID ID,
	name, description string,
	category Category,
	size Size,
	imageURL string,
) (*ClothingItem, error) {
	if imageURL == "" {
		imageURL = DefaultItemImageURL
	}

	now := time.Now().UTC()
	item := &ClothingItem{
		ID:          NewID(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Category:    category,
		Size:        size,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks that the ClothingItem holds consistent data.
func (i *ClothingItem) Validate() error {
	if !i.ID.IsValid() {
		return ErrEmptyItemID
	}
	if !i.OwnerID.IsValid() {
		return ErrEmptyOwnerID
	}

	switch {
	case i.Name == "":
		return ErrEmptyItemName
	case len(i.Name) < MinItemNameLength:
		return ErrItemNameShort
	case len(i.Name) > MaxItemNameLength:
		return ErrItemNameLong
	}

	if len(i.Description) > MaxItemDescriptionLength {
		return NewValidationError(
			"description",
			"must be at most 200 characters long",
			ErrValidation,
		)
	}

	if !i.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !i.Size.IsValid() {
		return ErrInvalidSize
	}

	if i.ImageURL != "" {
		u, err := url.Parse(i.ImageURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidURL
		}
	}

	return nil
}

// OwnedBy reports whether the item belongs to the given user.
func (i *ClothingItem) OwnedBy(userID ID) bool {
	return i.OwnerID == userID
}
