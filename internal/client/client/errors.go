package client

import (
	"errors"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

var ErrUnknownTransport = errors.New("unknown transport")

// storeUnavailableDetail tells a busy store apart from other failures that
// share its status code.
var storeUnavailableDetail = common.Detail(common.ErrorStoreUnavailable)

// RemoteError is a failure the server reported.
type RemoteError struct {
	Outcome common.Outcome
	Detail  string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return e.Outcome.String()
	}
	return e.Detail
}

func (e *RemoteError) Unwrap() error {
	return e.Outcome.Err()
}
