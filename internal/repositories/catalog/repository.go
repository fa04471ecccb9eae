// Package catalog provides the interface for item catalog persistence
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-armory/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// Repository defines the interface for the item catalog.
// Every write bumps the catalog revision so readers can cache snapshots per revision.
type Repository interface {
	// Put inserts or replaces items
	// Returns errors.InvalidArgument for nil items or empty IDs
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every item in the catalog along with the revision it was read at
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Revision returns the current catalog revision, zero for a catalog never written
	Revision(ctx context.Context, input RevisionInput) (*RevisionOutput, error)
}

// PutInput defines the input for storing items
type PutInput struct {
	Items []*equipment.Item
}

// PutOutput defines the output for storing items
type PutOutput struct {
	Revision int64
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *equipment.Item
}

// ListInput defines the input for listing the catalog
type ListInput struct{}

// ListOutput defines the output for listing the catalog
type ListOutput struct {
	Items    []*equipment.Item
	Revision int64
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct {
	Revision int64
}

// RevisionInput defines the input for reading the catalog revision
type RevisionInput struct{}

// RevisionOutput defines the output for reading the catalog revision
type RevisionOutput struct {
	Revision int64
}
