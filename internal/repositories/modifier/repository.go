// Package modifier provides the registry of custom item modifiers.
// Items carrying a registered modifier are special: allocation never replaces them.
package modifier

//go:generate mockgen -destination=mock/mock_repository.go -package=modifiermock github.com/KirkDiggler/rpg-armory/internal/repositories/modifier Repository

import "context"

// Repository defines the interface for the modifier registry
type Repository interface {
	// Register adds modifiers to the registry, registering twice is a no-op
	// Returns errors.InvalidArgument for empty names
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// List returns every registered modifier ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// IsRegistered reports whether a modifier is registered
	IsRegistered(ctx context.Context, input IsRegisteredInput) (*IsRegisteredOutput, error)
}

// RegisterInput defines the input for registering modifiers
type RegisterInput struct {
	Names []string
}

// RegisterOutput defines the output for registering modifiers
type RegisterOutput struct {
	Added int64
}

// ListInput defines the input for listing modifiers
type ListInput struct{}

// ListOutput defines the output for listing modifiers
type ListOutput struct {
	Names []string
}

// IsRegisteredInput defines the input for checking a modifier
type IsRegisteredInput struct {
	Name string
}

// IsRegisteredOutput defines the output for checking a modifier
type IsRegisteredOutput struct {
	Registered bool
}
