// Package v1alpha1 handles the skillplanner.v1alpha1 gRPC service
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	"github.com/KirkDiggler/skill-planner/internal/services/planner"
)

// HandlerConfig holds dependencies for the planner handler
type HandlerConfig struct {
	PlannerService planner.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.PlannerService == nil {
		return errors.InvalidArgument("planner service is required")
	}
	return nil
}

// Handler implements PlannerServiceServer on top of the planner service
type Handler struct {
	UnimplementedPlannerServiceServer
	plannerService planner.Service
}

var _ PlannerServiceServer = (*Handler)(nil)

// NewHandler creates a new planner handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		plannerService: cfg.PlannerService,
	}, nil
}

// ListArchetypes returns the selectable archetypes by category
func (h *Handler) ListArchetypes(
	ctx context.Context,
	_ *ListArchetypesRequest,
) (*ListArchetypesResponse, error) {
	output, err := h.plannerService.ListArchetypes(ctx, &planner.ListArchetypesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	groups := make([]*ArchetypeGroup, 0, len(output.Groups))
	for _, group := range output.Groups {
		groups = append(groups, convertGroup(group))
	}

	return &ListArchetypesResponse{Groups: groups}, nil
}

// GetArchetype returns an archetype's four skillbooks
func (h *Handler) GetArchetype(
	ctx context.Context,
	req *GetArchetypeRequest,
) (*GetArchetypeResponse, error) {
	if req.ArchetypeID <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("archetype_id is required"))
	}

	output, err := h.plannerService.GetArchetype(ctx, &planner.GetArchetypeInput{
		ArchetypeID: req.ArchetypeID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetArchetypeResponse{Archetype: convertArchetype(output.Archetype)}, nil
}

// CreateBuild starts a new build
func (h *Handler) CreateBuild(
	ctx context.Context,
	req *CreateBuildRequest,
) (*CreateBuildResponse, error) {
	if req.ArchetypeID <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("archetype_id is required"))
	}

	input := &planner.CreateBuildInput{
		ArchetypeID:    req.ArchetypeID,
		CharacterLevel: req.CharacterLevel,
		FourthOnly:     req.FourthOnly,
	}
	if req.Snapshot != nil {
		input.Snapshot = &skillbook.Snapshot{
			CharacterLevel: req.Snapshot.CharacterLevel,
			Levels:         req.Snapshot.Levels,
		}
	}

	output, err := h.plannerService.CreateBuild(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateBuildResponse{Build: convertBuildView(output.View)}, nil
}

// GetBuild returns the current view of a build
func (h *Handler) GetBuild(
	ctx context.Context,
	req *GetBuildRequest,
) (*GetBuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	output, err := h.plannerService.GetBuild(ctx, &planner.GetBuildInput{BuildID: req.BuildID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBuildResponse{Build: convertBuildView(output.View)}, nil
}

// DeleteBuild removes a build
func (h *Handler) DeleteBuild(
	ctx context.Context,
	req *DeleteBuildRequest,
) (*DeleteBuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	if _, err := h.plannerService.DeleteBuild(ctx, &planner.DeleteBuildInput{BuildID: req.BuildID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteBuildResponse{}, nil
}

// Allocate applies one action to one skill
func (h *Handler) Allocate(
	ctx context.Context,
	req *AllocateRequest,
) (*AllocateResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("build_id", req.BuildID, vb)
	errors.ValidatePositive("skill_id", req.SkillID, vb)
	if action := planner.Action(req.Action); !action.Valid() {
		vb.Fieldf("action", "unknown action %q", req.Action)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.plannerService.Allocate(ctx, &planner.AllocateInput{
		BuildID: req.BuildID,
		SkillID: req.SkillID,
		Action:  planner.Action(req.Action),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AllocateResponse{
		Build:   convertBuildView(output.View),
		Applied: output.Applied,
	}, nil
}

// ResetBuild clears every skill of a build
func (h *Handler) ResetBuild(
	ctx context.Context,
	req *ResetBuildRequest,
) (*ResetBuildResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	output, err := h.plannerService.ResetBuild(ctx, &planner.ResetBuildInput{BuildID: req.BuildID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResetBuildResponse{Build: convertBuildView(output.View)}, nil
}

// SetCharacterLevel changes the level a build's budget is computed from
func (h *Handler) SetCharacterLevel(
	ctx context.Context,
	req *SetCharacterLevelRequest,
) (*SetCharacterLevelResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	output, err := h.plannerService.SetCharacterLevel(ctx, &planner.SetCharacterLevelInput{
		BuildID:        req.BuildID,
		CharacterLevel: req.CharacterLevel,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetCharacterLevelResponse{Build: convertBuildView(output.View)}, nil
}

// SetMode toggles fourth-stage-only planning
func (h *Handler) SetMode(
	ctx context.Context,
	req *SetModeRequest,
) (*SetModeResponse, error) {
	if req.BuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	output, err := h.plannerService.SetMode(ctx, &planner.SetModeInput{
		BuildID:    req.BuildID,
		FourthOnly: req.FourthOnly,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetModeResponse{Build: convertBuildView(output.View)}, nil
}

// DescribeSkill renders a skill tooltip
func (h *Handler) DescribeSkill(
	ctx context.Context,
	req *DescribeSkillRequest,
) (*DescribeSkillResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("build_id", req.BuildID, vb)
	errors.ValidatePositive("skill_id", req.SkillID, vb)
	if req.Level < 0 {
		vb.Field("level", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.plannerService.DescribeSkill(ctx, &planner.DescribeSkillInput{
		BuildID: req.BuildID,
		SkillID: req.SkillID,
		Level:   req.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DescribeSkillResponse{Tooltip: convertTooltip(output.Tooltip)}, nil
}
