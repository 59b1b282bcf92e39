package grpc

import (
	"context"
	"path"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
)

// operationByMethod names the directory operation behind each RPC method.
var operationByMethod = map[string]string{
	"ListTerms":  "list",
	"GetTerm":    "get",
	"CreateTerm": "create",
	"UpdateTerm": "update",
	"DeleteTerm": "delete",
}

// requestInterceptor tags every call with a request id, echoes it in the
// response header and records one log line and one metric sample.
func (s *GRPCServer) requestInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := incomingRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	method := path.Base(info.FullMethod)
	args := []any{"method", method, "code", code.String(), "duration", elapsed, "request_id", requestID}

	op, known := operationByMethod[method]
	if known && s.metrics != nil {
		s.metrics.Observe(metrics.TransportGRPC, op, outcomeOfCode(code), elapsed)
	}

	switch o := outcomeOfCode(code); {
	case !known:
		s.logger.Debug(ctx, "rpc", args...)
	case o == common.OutcomeStoreUnavailable || o == common.OutcomeInternal:
		s.logger.Error(ctx, "rpc", args...)
	default:
		s.logger.Info(ctx, "rpc", args...)
	}

	return resp, err
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
		return values[0]
	}
	return ""
}
