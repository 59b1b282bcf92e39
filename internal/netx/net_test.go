package netx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestDoJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var gotMethod, gotCT string
		var got item

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"name":"pong"}`)
		}))
		defer ts.Close()

		var out item
		err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL, item{Name: "ping"}, &out)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, "ping", got.Name)
		assert.Equal(t, "pong", out.Name)
	})

	t.Run("no body either way", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		require.NoError(t, DoJSON(context.Background(), ts.Client(), http.MethodDelete, ts.URL, nil, nil))
	})

	t.Run("non-2xx -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"detail":"taken"}`)
		}))
		defer ts.Close()

		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, nil)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusConflict, se.StatusCode)
		assert.JSONEq(t, `{"detail":"taken"}`, string(se.Body))
		assert.True(t, strings.Contains(err.Error(), "409"))
	})

	t.Run("undecodable reply", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `not json`)
		}))
		defer ts.Close()

		var out item
		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		err := DoJSON(context.Background(), http.DefaultClient, http.MethodGet, ts.URL, nil, nil)
		require.Error(t, err)

		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})
}
