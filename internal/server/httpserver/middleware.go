package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
)

// statusWriter captures status code and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	// Ensure status is set if handler wrote body without calling WriteHeader.
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

type outcomeKey struct{}

// outcomeBox carries a failed outcome from a handler back to accessLog.
type outcomeBox struct {
	outcome common.Outcome
	set     bool
}

func setOutcome(ctx context.Context, o common.Outcome) {
	if box, ok := ctx.Value(outcomeKey{}).(*outcomeBox); ok {
		box.outcome, box.set = o, true
	}
}

// operationByRoute names the directory operation behind each route.
var operationByRoute = map[string]string{
	http.MethodGet + " /terms":              "list",
	http.MethodPost + " /terms":             "create",
	http.MethodGet + " /terms/{keyword}":    "get",
	http.MethodPut + " /terms/{keyword}":    "update",
	http.MethodDelete + " /terms/{keyword}": "delete",
}

// accessLog logs one line per HTTP request, echoes the request id and
// counts directory operations by outcome.
func accessLog(l logging.Logger, m *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())
			w.Header().Set(common.RequestIDHeaderName, reqID)

			box := &outcomeBox{}
			r = r.WithContext(context.WithValue(r.Context(), outcomeKey{}, box))
			ww := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			outcome := common.OutcomeOK
			switch {
			case box.set:
				outcome = box.outcome
			case ww.status >= http.StatusInternalServerError:
				outcome = common.OutcomeInternal
			}

			pattern := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				pattern = strings.TrimSuffix(rctx.RoutePattern(), "/")
			}
			if op, ok := operationByRoute[r.Method+" "+pattern]; ok && m != nil {
				m.Observe(metrics.TransportHTTP, op, outcome, elapsed)
			}

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.status,
				"outcome", outcome.String(),
				"bytes", ww.bytes,
				"duration", elapsed,
				"remote_ip", r.RemoteAddr,
				"request_id", reqID,
			}
			if outcome == common.OutcomeStoreUnavailable || outcome == common.OutcomeInternal {
				l.Error(r.Context(), "http_request", args...)
				return
			}
			l.Info(r.Context(), "http_request", args...)
		})
	}
}
