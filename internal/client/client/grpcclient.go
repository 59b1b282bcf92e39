package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	pb "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/proto"
)

// outcomeByCode inverts the server's status table.
var outcomeByCode = map[codes.Code]common.Outcome{
	codes.NotFound:        common.OutcomeNotFound,
	codes.AlreadyExists:   common.OutcomeAlreadyExists,
	codes.InvalidArgument: common.OutcomeInvalidInput,
	codes.Unavailable:     common.OutcomeStoreUnavailable,
	codes.Internal:        common.OutcomeInternal,
}

type GRPCClient struct {
	conn    *grpc.ClientConn
	client  pb.GlossaryServiceClient
	timeout time.Duration
}

// NewGRPCClient prepares a connection to addr. Dialing is lazy; the first
// call connects. Extra options are appended after the insecure transport
// credentials.
func NewGRPCClient(addr string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewGlossaryServiceClient(conn), timeout: timeout}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) List(ctx context.Context) ([]models.Term, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListTerms(ctx, &pb.ListTermsRequest{})
	if err != nil {
		return nil, c.mapError(err)
	}

	terms := make([]models.Term, 0, len(resp.Items))
	for _, item := range resp.Items {
		terms = append(terms, *fromPB(item))
	}
	return terms, nil
}

func (c *GRPCClient) Get(ctx context.Context, keyword string) (*models.Term, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetTerm(ctx, &pb.GetTermRequest{Keyword: keyword})
	if err != nil {
		return nil, c.mapError(err)
	}
	return fromPB(resp.Item), nil
}

func (c *GRPCClient) Create(ctx context.Context, keyword, description string) (*models.Term, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := &pb.CreateTermRequest{Item: &pb.Term{Keyword: keyword, Description: description}}
	resp, err := c.client.CreateTerm(ctx, req)
	if err != nil {
		return nil, c.mapError(err)
	}
	return fromPB(resp.Item), nil
}

func (c *GRPCClient) Update(ctx context.Context, keyword string, patch models.Patch) (*models.Term, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := &pb.UpdateTermRequest{Keyword: keyword, NewKeyword: patch.Keyword, Description: patch.Description}
	resp, err := c.client.UpdateTerm(ctx, req)
	if err != nil {
		return nil, c.mapError(err)
	}
	return fromPB(resp.Item), nil
}

func (c *GRPCClient) Delete(ctx context.Context, keyword string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.client.DeleteTerm(ctx, &pb.DeleteTermRequest{Keyword: keyword}); err != nil {
		return c.mapError(err)
	}
	return nil
}

// mapError turns a status reported by the glossary service into a
// RemoteError. gRPC itself reports an unreachable server as Unavailable
// too; that one passes through unchanged.
func (c *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	o, known := outcomeByCode[st.Code()]
	if !known {
		return err
	}
	if o == common.OutcomeStoreUnavailable && st.Message() != storeUnavailableDetail {
		return err
	}
	return &RemoteError{Outcome: o, Detail: st.Message()}
}

func fromPB(t *pb.Term) *models.Term {
	if t == nil {
		return &models.Term{}
	}
	m := &models.Term{ID: t.Id, Keyword: t.Keyword, Description: t.Description}
	if t.CreatedAt != nil {
		m.CreatedAt = t.CreatedAt.AsTime()
	}
	if t.UpdatedAt != nil {
		m.UpdatedAt = t.UpdatedAt.AsTime()
	}
	return m
}
