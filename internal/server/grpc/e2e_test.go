package grpc

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	pb "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/proto"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/bootstrap"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/repomanager"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

func newSQLiteDirectory(t *testing.T) services.Directory {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "glossary.db")
	cfg.OperationTimeout = 10 * time.Second

	db, dialect, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLRepositoryManager(dialect)
	_, err = bootstrap.Run(context.Background(), db, logging.Nop(), bootstrap.Default(m, true)...)
	require.NoError(t, err)

	return services.NewTermService(db, m, cfg)
}

func TestScenario_OverRPC(t *testing.T) {
	s := NewGRPCServer("bufnet", time.Second, logging.Nop(), newSQLiteDirectory(t), metrics.New())
	client := pb.NewGlossaryServiceClient(dial(t, s))
	ctx := context.Background()

	created, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Item: &pb.Term{Keyword: "HTTP", Description: "HyperText Transfer Protocol"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Item.Id)
	assert.True(t, created.Item.CreatedAt.AsTime().Equal(created.Item.UpdatedAt.AsTime()))

	_, err = client.CreateTerm(ctx, &pb.CreateTermRequest{Item: &pb.Term{Keyword: "HTTP", Description: "duplicate"}})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	newKeyword := "HTTPS"
	updated, err := client.UpdateTerm(ctx, &pb.UpdateTermRequest{Keyword: "HTTP", NewKeyword: &newKeyword})
	require.NoError(t, err)
	assert.Equal(t, created.Item.Id, updated.Item.Id)
	assert.True(t, updated.Item.UpdatedAt.AsTime().After(created.Item.UpdatedAt.AsTime()))

	_, err = client.GetTerm(ctx, &pb.GetTermRequest{Keyword: "HTTP"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	got, err := client.GetTerm(ctx, &pb.GetTermRequest{Keyword: "HTTPS"})
	require.NoError(t, err)
	assert.Equal(t, "HyperText Transfer Protocol", got.Item.Description)

	list, err := client.ListTerms(ctx, &pb.ListTermsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	del, err := client.DeleteTerm(ctx, &pb.DeleteTermRequest{Keyword: "HTTPS"})
	require.NoError(t, err)
	assert.True(t, del.Ok)

	_, err = client.DeleteTerm(ctx, &pb.DeleteTermRequest{Keyword: "HTTPS"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestValidation_OverRPC(t *testing.T) {
	s := NewGRPCServer("bufnet", time.Second, logging.Nop(), newSQLiteDirectory(t), nil)
	client := pb.NewGlossaryServiceClient(dial(t, s))

	_, err := client.CreateTerm(context.Background(), &pb.CreateTermRequest{Item: &pb.Term{Keyword: "k"}})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "description")
}
