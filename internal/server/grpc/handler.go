package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/proto"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
)

var _ pb.GlossaryServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) ListTerms(ctx context.Context, req *pb.ListTermsRequest) (*pb.ListTermsResponse, error) {
	items, err := s.directory.List(ctx)
	if err != nil {
		return nil, statusError(err)
	}

	resp := &pb.ListTermsResponse{Items: make([]*pb.Term, 0, len(items))}
	for i := range items {
		resp.Items = append(resp.Items, toPB(&items[i]))
	}
	return resp, nil
}

func (s *GRPCServer) GetTerm(ctx context.Context, req *pb.GetTermRequest) (*pb.GetTermResponse, error) {
	term, err := s.directory.Get(ctx, req.Keyword)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetTermResponse{Item: toPB(term)}, nil
}

func (s *GRPCServer) CreateTerm(ctx context.Context, req *pb.CreateTermRequest) (*pb.CreateTermResponse, error) {
	var in services.CreateTermInput
	if req.Item != nil {
		in = services.CreateTermInput{Keyword: req.Item.Keyword, Description: req.Item.Description}
	}

	term, err := s.directory.Create(ctx, in)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.CreateTermResponse{Item: toPB(term)}, nil
}

func (s *GRPCServer) UpdateTerm(ctx context.Context, req *pb.UpdateTermRequest) (*pb.UpdateTermResponse, error) {
	patch := models.TermPatch{Keyword: req.NewKeyword, Description: req.Description}

	term, err := s.directory.Update(ctx, req.Keyword, patch)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.UpdateTermResponse{Item: toPB(term)}, nil
}

func (s *GRPCServer) DeleteTerm(ctx context.Context, req *pb.DeleteTermRequest) (*pb.DeleteTermResponse, error) {
	if err := s.directory.Delete(ctx, req.Keyword); err != nil {
		return nil, statusError(err)
	}
	return &pb.DeleteTermResponse{Ok: true}, nil
}

func toPB(t *models.Term) *pb.Term {
	return &pb.Term{
		Id:          t.ID,
		Keyword:     t.Keyword,
		Description: t.Description,
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
}
