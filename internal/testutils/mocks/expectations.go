// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/skill-planner/internal/clients/catalog/mock"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	buildsrepo "github.com/KirkDiggler/skill-planner/internal/repositories/builds"
	buildsmock "github.com/KirkDiggler/skill-planner/internal/repositories/builds/mock"
)

// ExpectBuildOpen sets up the build read and archetype load every build
// request performs
func ExpectBuildOpen(
	ctx context.Context,
	repo *buildsmock.MockRepository,
	catalog *catalogmock.MockClient,
	build *skillbook.Build,
	archetype *skillbook.Archetype,
) {
	repo.EXPECT().
		Get(ctx, buildsrepo.GetInput{ID: build.ID}).
		Return(&buildsrepo.GetOutput{Build: build}, nil)
	catalog.EXPECT().
		LoadArchetype(ctx, build.ArchetypeID).
		Return(archetype, nil)
}

// ExpectBuildSave expects one Update and returns a copy of the saved build,
// filled in when the call happens
func ExpectBuildSave(ctx context.Context, repo *buildsmock.MockRepository) *skillbook.Build {
	saved := &skillbook.Build{}
	repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildsrepo.UpdateInput) (*buildsrepo.UpdateOutput, error) {
			*saved = *input.Build
			return &buildsrepo.UpdateOutput{Build: input.Build}, nil
		})
	return saved
}
