package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/netx"
)

var outcomeByStatus = map[int]common.Outcome{
	http.StatusNotFound:            common.OutcomeNotFound,
	http.StatusConflict:            common.OutcomeAlreadyExists,
	http.StatusUnprocessableEntity: common.OutcomeInvalidInput,
	http.StatusInternalServerError: common.OutcomeInternal,
}

type HTTPClient struct {
	base string
	http *http.Client
}

// NewHTTPClient talks to the server at base, e.g. "http://127.0.0.1:8000".
func NewHTTPClient(base string, timeout time.Duration) *HTTPClient {
	return NewHTTPClientWith(base, &http.Client{Timeout: timeout})
}

// NewHTTPClientWith uses hc for every request.
func NewHTTPClientWith(base string, hc *http.Client) *HTTPClient {
	return &HTTPClient{base: strings.TrimSuffix(base, "/"), http: hc}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) termURL(keyword string) string {
	return c.base + "/terms/" + url.PathEscape(keyword)
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := netx.DoJSON(ctx, c.http, http.MethodGet, c.base+"/terms", nil, &terms); err != nil {
		return nil, mapHTTPError(err)
	}
	if terms == nil {
		terms = []models.Term{}
	}
	return terms, nil
}

func (c *HTTPClient) Get(ctx context.Context, keyword string) (*models.Term, error) {
	var t models.Term
	if err := netx.DoJSON(ctx, c.http, http.MethodGet, c.termURL(keyword), nil, &t); err != nil {
		return nil, mapHTTPError(err)
	}
	return &t, nil
}

func (c *HTTPClient) Create(ctx context.Context, keyword, description string) (*models.Term, error) {
	in := struct {
		Keyword     string `json:"keyword"`
		Description string `json:"description"`
	}{keyword, description}

	var t models.Term
	if err := netx.DoJSON(ctx, c.http, http.MethodPost, c.base+"/terms", in, &t); err != nil {
		return nil, mapHTTPError(err)
	}
	return &t, nil
}

func (c *HTTPClient) Update(ctx context.Context, keyword string, patch models.Patch) (*models.Term, error) {
	var t models.Term
	if err := netx.DoJSON(ctx, c.http, http.MethodPut, c.termURL(keyword), patch, &t); err != nil {
		return nil, mapHTTPError(err)
	}
	return &t, nil
}

func (c *HTTPClient) Delete(ctx context.Context, keyword string) error {
	if err := netx.DoJSON(ctx, c.http, http.MethodDelete, c.termURL(keyword), nil, nil); err != nil {
		return mapHTTPError(err)
	}
	return nil
}

// mapHTTPError reads the {"detail": ...} body of a failed reply. Statuses
// the glossary does not use, and failures before any reply, pass through.
func mapHTTPError(err error) error {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return err
	}
	o, ok := outcomeByStatus[se.StatusCode]
	if !ok {
		return err
	}

	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(se.Body, &body)

	if o == common.OutcomeInternal && body.Detail == storeUnavailableDetail {
		o = common.OutcomeStoreUnavailable
	}
	return &RemoteError{Outcome: o, Detail: body.Detail}
}
