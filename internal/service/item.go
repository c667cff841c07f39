package service

import (
	"context"

	"github.com/jeyren95/px-backend-hw3/internal/models"
)

// ItemRepository defines the persistence operations needed by the ItemService.
type ItemRepository interface {
	// FindAll returns every item in the store.
	FindAll(ctx context.Context) ([]models.Item, error)
	// FindByOwner returns all items owned by the given user.
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)
	// FindByID returns the item with the given id, or (nil, nil) if absent.
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	// InsertItem stores a new item and returns it with the assigned id.
	InsertItem(ctx context.Context, item models.Item) (*models.Item, error)
	// UpdateItem overwrites the item's fields and returns the stored row,
	// or (nil, nil) if no row with that id exists.
	UpdateItem(ctx context.Context, id int64, item models.Item) (*models.Item, error)
	// DeleteItem removes the item and reports whether a row was deleted.
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

// ItemService implements inventory operations, enforcing the owner-only
// update rule.
type ItemService struct {
	repo ItemRepository
}

// NewItemService constructs an ItemService with the provided repository.
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// All returns every item. Any authenticated user may read all items.
func (s *ItemService) All(ctx context.Context) ([]models.Item, error) {
	return s.repo.FindAll(ctx)
}

// ByOwner returns all items owned by the given user.
func (s *ItemService) ByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// ByID returns a single item, or ErrNotFound if it does not exist.
func (s *ItemService) ByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create stores a new item owned by ownerID.
func (s *ItemService) Create(ctx context.Context, ownerID int64, name string, quantity int64) (*models.Item, error) {
	return s.repo.InsertItem(ctx, models.Item{Name: name, Quantity: quantity, OwnerID: ownerID})
}

// Update overwrites the item's name and quantity on behalf of requesterID.
// The item's current owner is fetched fresh before mutating: a requester
// that is not the owner gets ErrForbidden and nothing changes. Ownership
// itself is immutable, the stored owner id is carried over.
func (s *ItemService) Update(ctx context.Context, requesterID, id int64, name string, quantity int64) (*models.Item, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if current.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	updated, err := s.repo.UpdateItem(ctx, id, models.Item{Name: name, Quantity: quantity, OwnerID: current.OwnerID})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the item by id, or returns ErrNotFound if it is absent.
// Deletion checks authentication only, not ownership.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
