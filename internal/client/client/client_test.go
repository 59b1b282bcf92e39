package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/config"
	cm "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	gs "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/grpc"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/httpserver"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
)

// ---- fakes ----

type fakeDirectory struct {
	list []models.Term
	term *models.Term
	err  error

	gotKeyword string
	gotInput   services.CreateTermInput
	gotPatch   models.TermPatch
}

func (f *fakeDirectory) List(ctx context.Context) ([]models.Term, error) {
	return f.list, f.err
}

func (f *fakeDirectory) Get(ctx context.Context, keyword string) (*models.Term, error) {
	f.gotKeyword = keyword
	return f.term, f.err
}

func (f *fakeDirectory) Create(ctx context.Context, in services.CreateTermInput) (*models.Term, error) {
	f.gotInput = in
	return f.term, f.err
}

func (f *fakeDirectory) Update(ctx context.Context, keyword string, patch models.TermPatch) (*models.Term, error) {
	f.gotKeyword = keyword
	f.gotPatch = patch
	return f.term, f.err
}

func (f *fakeDirectory) Delete(ctx context.Context, keyword string) error {
	f.gotKeyword = keyword
	return f.err
}

// ---- helpers ----

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 123000, time.UTC)

func sampleTerm() *models.Term {
	return &models.Term{ID: 7, Keyword: "a/b c", Description: "slash and space", CreatedAt: t0, UpdatedAt: t0}
}

func newRPC(t *testing.T, d services.Directory) Directory {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := gs.NewGRPCServer("bufnet", time.Second, logging.Nop(), d, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", 5*time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func newHTTP(t *testing.T, d services.Directory) Directory {
	t.Helper()
	ts := httptest.NewServer(httpserver.NewRouter(logging.Nop(), d, nil))
	c := NewHTTPClientWith(ts.URL+"/", ts.Client())
	t.Cleanup(func() {
		_ = c.Close()
		ts.Close()
	})
	return c
}

type transport struct {
	name string
	open func(*testing.T, services.Directory) Directory
}

var transports = []transport{{"rpc", newRPC}, {"http", newHTTP}}

// ---- tests ----

func TestClients_MapEveryOutcome(t *testing.T) {
	failures := map[common.Outcome]error{
		common.OutcomeNotFound:         common.ErrorNotFound,
		common.OutcomeAlreadyExists:    fmt.Errorf("insert: %w", common.ErrorAlreadyExists),
		common.OutcomeInvalidInput:     &common.ValidationError{Field: "keyword", Rule: "max=255"},
		common.OutcomeStoreUnavailable: fmt.Errorf("%w: database is locked", common.ErrorStoreUnavailable),
		common.OutcomeInternal:         errors.New("no such table: terms"),
	}

	for _, tr := range transports {
		for o, serverErr := range failures {
			t.Run(tr.name+"/"+o.String(), func(t *testing.T) {
				c := tr.open(t, &fakeDirectory{err: serverErr})

				_, err := c.Get(context.Background(), "HTTP")

				var re *RemoteError
				require.True(t, errors.As(err, &re), "got %v", err)
				assert.Equal(t, o, re.Outcome)
				assert.True(t, errors.Is(err, o.Err()))
				assert.Equal(t, common.Detail(serverErr), re.Detail)
			})
		}
	}
}

func TestClients_SameResultsOverBothTransports(t *testing.T) {
	for _, tr := range transports {
		t.Run(tr.name, func(t *testing.T) {
			f := &fakeDirectory{term: sampleTerm(), list: []models.Term{*sampleTerm()}}
			c := tr.open(t, f)
			ctx := context.Background()

			want := cm.Term{ID: 7, Keyword: "a/b c", Description: "slash and space", CreatedAt: t0, UpdatedAt: t0}

			got, err := c.Get(ctx, "a/b c")
			require.NoError(t, err)
			assert.Equal(t, "a/b c", f.gotKeyword)
			assert.Equal(t, want.Keyword, got.Keyword)
			assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
			assert.Equal(t, want.ID, got.ID)

			list, err := c.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, want.Description, list[0].Description)

			_, err = c.Create(ctx, "HTTP", "HyperText")
			require.NoError(t, err)
			assert.Equal(t, services.CreateTermInput{Keyword: "HTTP", Description: "HyperText"}, f.gotInput)

			nk := "HTTPS"
			_, err = c.Update(ctx, "HTTP", cm.Patch{Keyword: &nk})
			require.NoError(t, err)
			assert.Equal(t, "HTTP", f.gotKeyword)
			require.NotNil(t, f.gotPatch.Keyword)
			assert.Equal(t, "HTTPS", *f.gotPatch.Keyword)
			assert.Nil(t, f.gotPatch.Description)

			require.NoError(t, c.Delete(ctx, "HTTPS"))
			assert.Equal(t, "HTTPS", f.gotKeyword)
		})
	}
}

func TestClients_EmptyList(t *testing.T) {
	for _, tr := range transports {
		t.Run(tr.name, func(t *testing.T) {
			c := tr.open(t, &fakeDirectory{})
			list, err := c.List(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestClients_UnreachableServerIsNotARemoteError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	rpc, err := NewGRPCClient(addr, time.Second)
	require.NoError(t, err)
	defer rpc.Close()

	for name, c := range map[string]Directory{"rpc": rpc, "http": NewHTTPClient("http://"+addr, time.Second)} {
		t.Run(name, func(t *testing.T) {
			_, err := c.List(context.Background())
			require.Error(t, err)
			var re *RemoteError
			assert.False(t, errors.As(err, &re), "got %v", err)
		})
	}
}

func TestNew_PicksTransport(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	c, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &GRPCClient{}, c)
	require.NoError(t, c.Close())

	cfg.Transport = config.TransportHTTP
	c, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPClient{}, c)

	cfg.Transport = "smtp"
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnknownTransport)
}

func TestRemoteError_Message(t *testing.T) {
	assert.Equal(t, "Term not found", (&RemoteError{Outcome: common.OutcomeNotFound, Detail: "Term not found"}).Error())
	assert.Equal(t, "internal", (&RemoteError{Outcome: common.OutcomeInternal}).Error())
}
