package proto

import (
	"context"

	"google.golang.org/grpc"
)

// GlossaryServiceClient is the client API for GlossaryService.
type GlossaryServiceClient interface {
	ListTerms(ctx context.Context, in *ListTermsRequest, opts ...grpc.CallOption) (*ListTermsResponse, error)
	GetTerm(ctx context.Context, in *GetTermRequest, opts ...grpc.CallOption) (*GetTermResponse, error)
	CreateTerm(ctx context.Context, in *CreateTermRequest, opts ...grpc.CallOption) (*CreateTermResponse, error)
	UpdateTerm(ctx context.Context, in *UpdateTermRequest, opts ...grpc.CallOption) (*UpdateTermResponse, error)
	DeleteTerm(ctx context.Context, in *DeleteTermRequest, opts ...grpc.CallOption) (*DeleteTermResponse, error)
}

type glossaryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGlossaryServiceClient returns a stub that encodes calls with JSONCodec.
func NewGlossaryServiceClient(cc grpc.ClientConnInterface) GlossaryServiceClient {
	return &glossaryServiceClient{cc}
}

func (c *glossaryServiceClient) ListTerms(ctx context.Context, in *ListTermsRequest, opts ...grpc.CallOption) (*ListTermsResponse, error) {
	out := new(ListTermsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GlossaryService_ListTerms_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) GetTerm(ctx context.Context, in *GetTermRequest, opts ...grpc.CallOption) (*GetTermResponse, error) {
	out := new(GetTermResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GlossaryService_GetTerm_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) CreateTerm(ctx context.Context, in *CreateTermRequest, opts ...grpc.CallOption) (*CreateTermResponse, error) {
	out := new(CreateTermResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GlossaryService_CreateTerm_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) UpdateTerm(ctx context.Context, in *UpdateTermRequest, opts ...grpc.CallOption) (*UpdateTermResponse, error) {
	out := new(UpdateTermResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GlossaryService_UpdateTerm_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *glossaryServiceClient) DeleteTerm(ctx context.Context, in *DeleteTermRequest, opts ...grpc.CallOption) (*DeleteTermResponse, error) {
	out := new(DeleteTermResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GlossaryService_DeleteTerm_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
