// Package hero provides the interface for hero persistence
package hero

//go:generate mockgen -destination=mock/mock_repository.go -package=heromock github.com/KirkDiggler/rpg-armory/internal/repositories/hero Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// Repository defines the interface for hero persistence
type Repository interface {
	// Create stores a new hero
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a hero with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a hero by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the hero doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing hero, including both loadouts
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the hero doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a hero by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the hero doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all heroes belonging to an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a hero
type CreateInput struct {
	Hero *hero.Hero
}

// CreateOutput defines the output for creating a hero
type CreateOutput struct {
	Hero *hero.Hero
}

// GetInput defines the input for getting a hero
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a hero
type GetOutput struct {
	Hero *hero.Hero
}

// UpdateInput defines the input for updating a hero
type UpdateInput struct {
	Hero *hero.Hero
}

// UpdateOutput defines the output for updating a hero
type UpdateOutput struct {
	Hero *hero.Hero
}

// DeleteInput defines the input for deleting a hero
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a hero
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing heroes by owner
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing heroes by owner
type ListByOwnerOutput struct {
	Heroes []*hero.Hero
}
