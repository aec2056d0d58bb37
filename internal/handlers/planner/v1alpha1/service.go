package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "skillplanner.v1alpha1.PlannerService"

// Full method names
const (
	PlannerService_ListArchetypes_FullMethodName    = "/" + ServiceName + "/ListArchetypes"
	PlannerService_GetArchetype_FullMethodName      = "/" + ServiceName + "/GetArchetype"
	PlannerService_CreateBuild_FullMethodName       = "/" + ServiceName + "/CreateBuild"
	PlannerService_GetBuild_FullMethodName          = "/" + ServiceName + "/GetBuild"
	PlannerService_DeleteBuild_FullMethodName       = "/" + ServiceName + "/DeleteBuild"
	PlannerService_Allocate_FullMethodName          = "/" + ServiceName + "/Allocate"
	PlannerService_ResetBuild_FullMethodName        = "/" + ServiceName + "/ResetBuild"
	PlannerService_SetCharacterLevel_FullMethodName = "/" + ServiceName + "/SetCharacterLevel"
	PlannerService_SetMode_FullMethodName           = "/" + ServiceName + "/SetMode"
	PlannerService_DescribeSkill_FullMethodName     = "/" + ServiceName + "/DescribeSkill"
)

// PlannerServiceServer is the server API for the planner service
type PlannerServiceServer interface {
	ListArchetypes(context.Context, *ListArchetypesRequest) (*ListArchetypesResponse, error)
	GetArchetype(context.Context, *GetArchetypeRequest) (*GetArchetypeResponse, error)
	CreateBuild(context.Context, *CreateBuildRequest) (*CreateBuildResponse, error)
	GetBuild(context.Context, *GetBuildRequest) (*GetBuildResponse, error)
	DeleteBuild(context.Context, *DeleteBuildRequest) (*DeleteBuildResponse, error)
	Allocate(context.Context, *AllocateRequest) (*AllocateResponse, error)
	ResetBuild(context.Context, *ResetBuildRequest) (*ResetBuildResponse, error)
	SetCharacterLevel(context.Context, *SetCharacterLevelRequest) (*SetCharacterLevelResponse, error)
	SetMode(context.Context, *SetModeRequest) (*SetModeResponse, error)
	DescribeSkill(context.Context, *DescribeSkillRequest) (*DescribeSkillResponse, error)
}

// UnimplementedPlannerServiceServer returns Unimplemented for every method
type UnimplementedPlannerServiceServer struct{}

func (UnimplementedPlannerServiceServer) ListArchetypes(context.Context, *ListArchetypesRequest) (*ListArchetypesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListArchetypes not implemented")
}

func (UnimplementedPlannerServiceServer) GetArchetype(context.Context, *GetArchetypeRequest) (*GetArchetypeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArchetype not implemented")
}

func (UnimplementedPlannerServiceServer) CreateBuild(context.Context, *CreateBuildRequest) (*CreateBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBuild not implemented")
}

func (UnimplementedPlannerServiceServer) GetBuild(context.Context, *GetBuildRequest) (*GetBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBuild not implemented")
}

func (UnimplementedPlannerServiceServer) DeleteBuild(context.Context, *DeleteBuildRequest) (*DeleteBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBuild not implemented")
}

func (UnimplementedPlannerServiceServer) Allocate(context.Context, *AllocateRequest) (*AllocateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Allocate not implemented")
}

func (UnimplementedPlannerServiceServer) ResetBuild(context.Context, *ResetBuildRequest) (*ResetBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetBuild not implemented")
}

func (UnimplementedPlannerServiceServer) SetCharacterLevel(context.Context, *SetCharacterLevelRequest) (*SetCharacterLevelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCharacterLevel not implemented")
}

func (UnimplementedPlannerServiceServer) SetMode(context.Context, *SetModeRequest) (*SetModeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetMode not implemented")
}

func (UnimplementedPlannerServiceServer) DescribeSkill(context.Context, *DescribeSkillRequest) (*DescribeSkillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DescribeSkill not implemented")
}

// RegisterPlannerServiceServer registers srv on s
func RegisterPlannerServiceServer(s grpc.ServiceRegistrar, srv PlannerServiceServer) {
	s.RegisterService(&PlannerService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler, running
// the interceptor chain the same way generated code does
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(PlannerServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PlannerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PlannerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PlannerService_ServiceDesc is the grpc.ServiceDesc for the planner service.
// Messages are plain structs and need the json codec on both ends.
var PlannerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListArchetypes",
			Handler:    unaryHandler(PlannerService_ListArchetypes_FullMethodName, PlannerServiceServer.ListArchetypes),
		},
		{
			MethodName: "GetArchetype",
			Handler:    unaryHandler(PlannerService_GetArchetype_FullMethodName, PlannerServiceServer.GetArchetype),
		},
		{
			MethodName: "CreateBuild",
			Handler:    unaryHandler(PlannerService_CreateBuild_FullMethodName, PlannerServiceServer.CreateBuild),
		},
		{
			MethodName: "GetBuild",
			Handler:    unaryHandler(PlannerService_GetBuild_FullMethodName, PlannerServiceServer.GetBuild),
		},
		{
			MethodName: "DeleteBuild",
			Handler:    unaryHandler(PlannerService_DeleteBuild_FullMethodName, PlannerServiceServer.DeleteBuild),
		},
		{
			MethodName: "Allocate",
			Handler:    unaryHandler(PlannerService_Allocate_FullMethodName, PlannerServiceServer.Allocate),
		},
		{
			MethodName: "ResetBuild",
			Handler:    unaryHandler(PlannerService_ResetBuild_FullMethodName, PlannerServiceServer.ResetBuild),
		},
		{
			MethodName: "SetCharacterLevel",
			Handler:    unaryHandler(PlannerService_SetCharacterLevel_FullMethodName, PlannerServiceServer.SetCharacterLevel),
		},
		{
			MethodName: "SetMode",
			Handler:    unaryHandler(PlannerService_SetMode_FullMethodName, PlannerServiceServer.SetMode),
		},
		{
			MethodName: "DescribeSkill",
			Handler:    unaryHandler(PlannerService_DescribeSkill_FullMethodName, PlannerServiceServer.DescribeSkill),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skillplanner/v1alpha1/planner.json",
}
