// Package planner implements the build planner orchestrator
package planner

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skill-planner/internal/clients/catalog"
	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/engine/allocation"
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/engine/description"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	"github.com/KirkDiggler/skill-planner/internal/pkg/clock"
	"github.com/KirkDiggler/skill-planner/internal/pkg/idgen"
	buildsrepo "github.com/KirkDiggler/skill-planner/internal/repositories/builds"
	"github.com/KirkDiggler/skill-planner/internal/services/planner"
)

// Config holds the dependencies for the planner orchestrator
type Config struct {
	BuildRepo   buildsrepo.Repository
	Catalog     catalog.Client
	Jobs        *jobs.Registry
	Renderer    *description.Renderer
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided and fills the
// optional ones
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Jobs == nil {
		c.Jobs = jobs.Default()
	}
	if c.Renderer == nil {
		c.Renderer = description.NewRenderer()
	}
	if c.EventBus == nil {
		c.EventBus = events.NewBus()
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("build")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	return vb.Build()
}

// Orchestrator implements the planner.Service interface
type Orchestrator struct {
	buildRepo   buildsrepo.Repository
	catalog     catalog.Client
	jobs        *jobs.Registry
	renderer    *description.Renderer
	eventBus    events.EventBus
	idGenerator idgen.Generator
	clock       clock.Clock
}

// New creates a new planner orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		buildRepo:   cfg.BuildRepo,
		catalog:     cfg.Catalog,
		jobs:        cfg.Jobs,
		renderer:    cfg.Renderer,
		eventBus:    cfg.EventBus,
		idGenerator: cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ planner.Service = (*Orchestrator)(nil)

// Catalog

// ListArchetypes returns the selectable archetypes grouped by category
func (o *Orchestrator) ListArchetypes(_ context.Context, _ *planner.ListArchetypesInput) (*planner.ListArchetypesOutput, error) {
	return &planner.ListArchetypesOutput{Groups: o.jobs.Groups()}, nil
}

// GetArchetype loads an archetype's four skillbooks
func (o *Orchestrator) GetArchetype(ctx context.Context, input *planner.GetArchetypeInput) (*planner.GetArchetypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	archetype, err := o.catalog.LoadArchetype(ctx, input.ArchetypeID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load archetype %d", input.ArchetypeID)
	}

	return &planner.GetArchetypeOutput{Archetype: archetype}, nil
}

// Build lifecycle

// CreateBuild starts a build for an archetype, optionally from a snapshot
func (o *Orchestrator) CreateBuild(ctx context.Context, input *planner.CreateBuildInput) (*planner.CreateBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	archetype, err := o.catalog.LoadArchetype(ctx, input.ArchetypeID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load archetype %d", input.ArchetypeID)
	}

	level := input.CharacterLevel
	if level == 0 && input.Snapshot != nil {
		level = input.Snapshot.CharacterLevel
	}
	if level == 0 {
		level = archetype.BaseUnlockLevel
	}
	if err := validateCharacterLevel(level, archetype); err != nil {
		return nil, err
	}

	var restore *skillbook.Snapshot
	if input.Snapshot != nil {
		restore = &skillbook.Snapshot{
			CharacterLevel: level,
			Levels:         input.Snapshot.Levels,
		}
	}

	engine, err := allocation.New(&allocation.Config{
		Archetype:      archetype,
		CharacterLevel: level,
		Mode:           modeFor(input.FourthOnly),
		Snapshot:       restore,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create allocation engine")
	}

	now := o.clock.Now()
	build := &skillbook.Build{
		ID:          o.idGenerator.Generate(),
		ArchetypeID: archetype.ID,
		FourthOnly:  input.FourthOnly,
		Snapshot:    engine.Snapshot(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := o.buildRepo.Create(ctx, buildsrepo.CreateInput{Build: build}); err != nil {
		return nil, errors.Wrap(err, "failed to create build")
	}

	slog.Info("build created",
		"build_id", build.ID,
		"archetype_id", build.ArchetypeID,
		"character_level", level,
		"fourth_only", build.FourthOnly,
		"restored", input.Snapshot != nil)

	o.publish(ctx, EventBuildCreated, build, nil)

	return &planner.CreateBuildOutput{View: newView(build, engine)}, nil
}

// GetBuild returns the current view of a build
func (o *Orchestrator) GetBuild(ctx context.Context, input *planner.GetBuildInput) (*planner.GetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	return &planner.GetBuildOutput{View: session.view()}, nil
}

// DeleteBuild removes a build
func (o *Orchestrator) DeleteBuild(ctx context.Context, input *planner.DeleteBuildInput) (*planner.DeleteBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", input.BuildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.buildRepo.Delete(ctx, buildsrepo.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete build")
	}

	slog.Info("build deleted", "build_id", input.BuildID)
	o.publish(ctx, EventBuildDeleted, &skillbook.Build{ID: input.BuildID}, nil)

	return &planner.DeleteBuildOutput{}, nil
}

// Allocation

// Allocate applies one action to one skill. Rejected actions are reported
// through Applied, not as errors.
func (o *Orchestrator) Allocate(ctx context.Context, input *planner.AllocateInput) (*planner.AllocateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Action.Valid() {
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	before := session.engine.Level(input.SkillID)

	var applied bool
	switch input.Action {
	case planner.ActionIncrease:
		applied = session.engine.Increase(input.SkillID)
	case planner.ActionDecrease:
		applied = session.engine.DecreaseOne(input.SkillID)
	case planner.ActionZero:
		applied = session.engine.SetToZero(input.SkillID)
	case planner.ActionMaster:
		applied = session.engine.SetToMaster(input.SkillID)
	}

	if !applied {
		slog.Debug("allocation rejected",
			"build_id", input.BuildID,
			"skill_id", input.SkillID,
			"action", input.Action)
		return &planner.AllocateOutput{View: session.view(), Applied: false}, nil
	}

	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	o.publish(ctx, EventAllocationChanged, session.build, map[string]any{
		ContextKeySkillID:       input.SkillID,
		ContextKeyAction:        string(input.Action),
		ContextKeyPreviousLevel: before,
		ContextKeyLevel:         session.engine.Level(input.SkillID),
	})

	return &planner.AllocateOutput{View: session.view(), Applied: true}, nil
}

// ResetBuild sets every skill back to 0, keeping the character level
func (o *Orchestrator) ResetBuild(ctx context.Context, input *planner.ResetBuildInput) (*planner.ResetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	session.engine.ResetAll()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	o.publish(ctx, EventBuildReset, session.build, nil)

	return &planner.ResetBuildOutput{View: session.view()}, nil
}

// SetCharacterLevel changes the level. Investments are kept even when the
// build ends up over budget.
func (o *Orchestrator) SetCharacterLevel(ctx context.Context, input *planner.SetCharacterLevelInput) (*planner.SetCharacterLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	if err := validateCharacterLevel(input.CharacterLevel, session.engine.Archetype()); err != nil {
		return nil, err
	}

	previous := session.engine.CharacterLevel()
	session.engine.SetCharacterLevel(input.CharacterLevel)
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	if summary := session.engine.Summary(); summary.OverBudget {
		slog.Info("build over budget",
			"build_id", input.BuildID,
			"character_level", summary.CharacterLevel,
			"remaining_points", summary.RemainingPoints)
	}

	o.publish(ctx, EventCharacterLevelChanged, session.build, map[string]any{
		ContextKeyPreviousLevel: previous,
		ContextKeyLevel:         input.CharacterLevel,
	})

	return &planner.SetCharacterLevelOutput{View: session.view()}, nil
}

// SetMode toggles fourth-stage-only planning
func (o *Orchestrator) SetMode(ctx context.Context, input *planner.SetModeInput) (*planner.SetModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	if session.build.FourthOnly == input.FourthOnly {
		return &planner.SetModeOutput{View: session.view()}, nil
	}

	session.build.FourthOnly = input.FourthOnly
	session.engine.SetMode(modeFor(input.FourthOnly))
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	o.publish(ctx, EventModeChanged, session.build, map[string]any{
		ContextKeyMode: session.engine.Mode().String(),
	})

	return &planner.SetModeOutput{View: session.view()}, nil
}

// Tooltips

// DescribeSkill renders the tooltip of a skill at the build's invested level
func (o *Orchestrator) DescribeSkill(ctx context.Context, input *planner.DescribeSkillInput) (*planner.DescribeSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgument("level must not be negative")
	}

	session, err := o.open(ctx, input.BuildID)
	if err != nil {
		return nil, err
	}

	archetype := session.engine.Archetype()
	skill, _, ok := archetype.Skill(input.SkillID)
	if !ok {
		return nil, errors.NotFoundf("skill %d not found in archetype %d", input.SkillID, archetype.ID)
	}

	level := input.Level
	if level == 0 {
		level = session.engine.Level(input.SkillID)
	}
	level = min(level, skill.MasterLevel)

	return &planner.DescribeSkillOutput{
		Tooltip: o.renderer.Tooltip(skill, archetype, level),
	}, nil
}

func validateCharacterLevel(level int, archetype *skillbook.Archetype) error {
	if level < archetype.BaseUnlockLevel || level > budget.MaxCharacterLevel {
		return errors.InvalidArgumentf("character level %d must be between %d and %d",
			level, archetype.BaseUnlockLevel, budget.MaxCharacterLevel).
			WithMeta("min", archetype.BaseUnlockLevel).
			WithMeta("max", budget.MaxCharacterLevel)
	}
	return nil
}

func modeFor(fourthOnly bool) budget.Mode {
	if fourthOnly {
		return budget.ModeFourthOnly
	}
	return budget.ModeFull
}
