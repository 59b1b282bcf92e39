package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName = "glossary.GlossaryService"

	GlossaryService_ListTerms_FullMethodName  = "/glossary.GlossaryService/ListTerms"
	GlossaryService_GetTerm_FullMethodName    = "/glossary.GlossaryService/GetTerm"
	GlossaryService_CreateTerm_FullMethodName = "/glossary.GlossaryService/CreateTerm"
	GlossaryService_UpdateTerm_FullMethodName = "/glossary.GlossaryService/UpdateTerm"
	GlossaryService_DeleteTerm_FullMethodName = "/glossary.GlossaryService/DeleteTerm"
)

// GlossaryServiceServer is the server API for GlossaryService.
type GlossaryServiceServer interface {
	ListTerms(context.Context, *ListTermsRequest) (*ListTermsResponse, error)
	GetTerm(context.Context, *GetTermRequest) (*GetTermResponse, error)
	CreateTerm(context.Context, *CreateTermRequest) (*CreateTermResponse, error)
	UpdateTerm(context.Context, *UpdateTermRequest) (*UpdateTermResponse, error)
	DeleteTerm(context.Context, *DeleteTermRequest) (*DeleteTermResponse, error)
}

// RegisterGlossaryServiceServer registers srv on s.
func RegisterGlossaryServiceServer(s grpc.ServiceRegistrar, srv GlossaryServiceServer) {
	s.RegisterService(&GlossaryService_ServiceDesc, srv)
}

// GlossaryService_ServiceDesc is the grpc.ServiceDesc for GlossaryService.
var GlossaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GlossaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTerms",
			Handler:    _GlossaryService_ListTerms_Handler,
		},
		{
			MethodName: "GetTerm",
			Handler:    _GlossaryService_GetTerm_Handler,
		},
		{
			MethodName: "CreateTerm",
			Handler:    _GlossaryService_CreateTerm_Handler,
		},
		{
			MethodName: "UpdateTerm",
			Handler:    _GlossaryService_UpdateTerm_Handler,
		},
		{
			MethodName: "DeleteTerm",
			Handler:    _GlossaryService_DeleteTerm_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "glossary.proto",
}

func _GlossaryService_ListTerms_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).ListTerms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_ListTerms_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GlossaryServiceServer).ListTerms(ctx, req.(*ListTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_GetTerm_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).GetTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_GetTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GlossaryServiceServer).GetTerm(ctx, req.(*GetTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_CreateTerm_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).CreateTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_CreateTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GlossaryServiceServer).CreateTerm(ctx, req.(*CreateTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_UpdateTerm_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).UpdateTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_UpdateTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GlossaryServiceServer).UpdateTerm(ctx, req.(*UpdateTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GlossaryService_DeleteTerm_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GlossaryServiceServer).DeleteTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GlossaryService_DeleteTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GlossaryServiceServer).DeleteTerm(ctx, req.(*DeleteTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}
