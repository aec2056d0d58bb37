package planner

import (
	"context"

	"github.com/KirkDiggler/skill-planner/internal/engine/allocation"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	buildsrepo "github.com/KirkDiggler/skill-planner/internal/repositories/builds"
	"github.com/KirkDiggler/skill-planner/internal/services/planner"
)

// session pairs a stored build with an engine restored from it. Every
// request gets its own engine, so builds never share allocation state.
type session struct {
	build  *skillbook.Build
	engine *allocation.Engine
}

func (o *Orchestrator) open(ctx context.Context, buildID string) (*session, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", buildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.buildRepo.Get(ctx, buildsrepo.GetInput{ID: buildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}
	build := out.Build

	archetype, err := o.catalog.LoadArchetype(ctx, build.ArchetypeID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load archetype %d", build.ArchetypeID)
	}

	snapshot := build.Snapshot
	engine, err := allocation.New(&allocation.Config{
		Archetype:      archetype,
		CharacterLevel: snapshot.CharacterLevel,
		Mode:           modeFor(build.FourthOnly),
		Snapshot:       &snapshot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore allocation engine")
	}

	return &session{build: build, engine: engine}, nil
}

func (o *Orchestrator) save(ctx context.Context, s *session) error {
	s.build.Snapshot = s.engine.Snapshot()
	s.build.UpdatedAt = o.clock.Now()

	if _, err := o.buildRepo.Update(ctx, buildsrepo.UpdateInput{Build: s.build}); err != nil {
		return errors.Wrap(err, "failed to save build")
	}
	return nil
}

func (s *session) view() *planner.BuildView {
	return newView(s.build, s.engine)
}

func newView(build *skillbook.Build, engine *allocation.Engine) *planner.BuildView {
	archetype := engine.Archetype()

	view := &planner.BuildView{
		Build:     build,
		Archetype: archetype,
		Mode:      engine.Mode(),
		Summary:   engine.Summary(),
		Branches:  engine.BranchStatuses(),
		Skills:    engine.SkillStatuses(),
	}

	for i, msg := range archetype.BranchErrors {
		if msg == "" {
			continue
		}
		if view.BranchErrors == nil {
			view.BranchErrors = make(map[int]string)
		}
		view.BranchErrors[i+1] = msg
	}

	return view
}
