// Package builds defines persistence for skill builds
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/KirkDiggler/skill-planner/internal/repositories/builds Repository

import (
	"context"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Repository defines the interface for build persistence
type Repository interface {
	// Create stores a new build
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist or expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing build and refreshes its TTL
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	Build *skillbook.Build
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	Build *skillbook.Build
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	Build *skillbook.Build
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	Build *skillbook.Build
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	Build *skillbook.Build
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}
