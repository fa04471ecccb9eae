// Package classdef provides the interface for class template persistence
package classdef

//go:generate mockgen -destination=mock/mock_repository.go -package=classdefmock github.com/KirkDiggler/rpg-armory/internal/repositories/classdef Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// Repository defines the interface for class template persistence
type Repository interface {
	// Put inserts or replaces a class template
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a class template by ID
	// Returns errors.NotFound if the class doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every class template ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput defines the input for storing a class template
type PutInput struct {
	Class *hero.ClassDef
}

// PutOutput defines the output for storing a class template
type PutOutput struct {
	Class *hero.ClassDef
}

// GetInput defines the input for getting a class template
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a class template
type GetOutput struct {
	Class *hero.ClassDef
}

// ListInput defines the input for listing class templates
type ListInput struct{}

// ListOutput defines the output for listing class templates
type ListOutput struct {
	Classes []*hero.ClassDef
}
