package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// PlannerClient is the client API for the planner service. Every call is
// sent with the json content-subtype.
type PlannerClient interface {
	ListArchetypes(ctx context.Context, in *ListArchetypesRequest, opts ...grpc.CallOption) (*ListArchetypesResponse, error)
	GetArchetype(ctx context.Context, in *GetArchetypeRequest, opts ...grpc.CallOption) (*GetArchetypeResponse, error)
	CreateBuild(ctx context.Context, in *CreateBuildRequest, opts ...grpc.CallOption) (*CreateBuildResponse, error)
	GetBuild(ctx context.Context, in *GetBuildRequest, opts ...grpc.CallOption) (*GetBuildResponse, error)
	DeleteBuild(ctx context.Context, in *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error)
	Allocate(ctx context.Context, in *AllocateRequest, opts ...grpc.CallOption) (*AllocateResponse, error)
	ResetBuild(ctx context.Context, in *ResetBuildRequest, opts ...grpc.CallOption) (*ResetBuildResponse, error)
	SetCharacterLevel(ctx context.Context, in *SetCharacterLevelRequest, opts ...grpc.CallOption) (*SetCharacterLevelResponse, error)
	SetMode(ctx context.Context, in *SetModeRequest, opts ...grpc.CallOption) (*SetModeResponse, error)
	DescribeSkill(ctx context.Context, in *DescribeSkillRequest, opts ...grpc.CallOption) (*DescribeSkillResponse, error)
}

type plannerClient struct {
	cc grpc.ClientConnInterface
}

// NewPlannerClient creates a planner client on an existing connection
func NewPlannerClient(cc grpc.ClientConnInterface) PlannerClient {
	return &plannerClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *plannerClient, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plannerClient) ListArchetypes(ctx context.Context, in *ListArchetypesRequest, opts ...grpc.CallOption) (*ListArchetypesResponse, error) {
	return invoke[ListArchetypesResponse](ctx, c, PlannerService_ListArchetypes_FullMethodName, in, opts)
}

func (c *plannerClient) GetArchetype(ctx context.Context, in *GetArchetypeRequest, opts ...grpc.CallOption) (*GetArchetypeResponse, error) {
	return invoke[GetArchetypeResponse](ctx, c, PlannerService_GetArchetype_FullMethodName, in, opts)
}

func (c *plannerClient) CreateBuild(ctx context.Context, in *CreateBuildRequest, opts ...grpc.CallOption) (*CreateBuildResponse, error) {
	return invoke[CreateBuildResponse](ctx, c, PlannerService_CreateBuild_FullMethodName, in, opts)
}

func (c *plannerClient) GetBuild(ctx context.Context, in *GetBuildRequest, opts ...grpc.CallOption) (*GetBuildResponse, error) {
	return invoke[GetBuildResponse](ctx, c, PlannerService_GetBuild_FullMethodName, in, opts)
}

func (c *plannerClient) DeleteBuild(ctx context.Context, in *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error) {
	return invoke[DeleteBuildResponse](ctx, c, PlannerService_DeleteBuild_FullMethodName, in, opts)
}

func (c *plannerClient) Allocate(ctx context.Context, in *AllocateRequest, opts ...grpc.CallOption) (*AllocateResponse, error) {
	return invoke[AllocateResponse](ctx, c, PlannerService_Allocate_FullMethodName, in, opts)
}

func (c *plannerClient) ResetBuild(ctx context.Context, in *ResetBuildRequest, opts ...grpc.CallOption) (*ResetBuildResponse, error) {
	return invoke[ResetBuildResponse](ctx, c, PlannerService_ResetBuild_FullMethodName, in, opts)
}

func (c *plannerClient) SetCharacterLevel(ctx context.Context, in *SetCharacterLevelRequest, opts ...grpc.CallOption) (*SetCharacterLevelResponse, error) {
	return invoke[SetCharacterLevelResponse](ctx, c, PlannerService_SetCharacterLevel_FullMethodName, in, opts)
}

func (c *plannerClient) SetMode(ctx context.Context, in *SetModeRequest, opts ...grpc.CallOption) (*SetModeResponse, error) {
	return invoke[SetModeResponse](ctx, c, PlannerService_SetMode_FullMethodName, in, opts)
}

func (c *plannerClient) DescribeSkill(ctx context.Context, in *DescribeSkillRequest, opts ...grpc.CallOption) (*DescribeSkillResponse, error) {
	return invoke[DescribeSkillResponse](ctx, c, PlannerService_DescribeSkill_FullMethodName, in, opts)
}
