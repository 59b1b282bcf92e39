package grpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

// codeByOutcome is the RPC status of every directory outcome.
var codeByOutcome = map[common.Outcome]codes.Code{
	common.OutcomeOK:               codes.OK,
	common.OutcomeNotFound:         codes.NotFound,
	common.OutcomeAlreadyExists:    codes.AlreadyExists,
	common.OutcomeInvalidInput:     codes.InvalidArgument,
	common.OutcomeStoreUnavailable: codes.Unavailable,
	common.OutcomeInternal:         codes.Internal,
}

// CodeOf maps an outcome to its status code.
func CodeOf(o common.Outcome) codes.Code {
	if c, ok := codeByOutcome[o]; ok {
		return c
	}
	return codes.Internal
}

func statusError(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(CodeOf(common.OutcomeOf(err)), common.Detail(err))
}

func outcomeOfCode(c codes.Code) common.Outcome {
	for o, code := range codeByOutcome {
		if code == c {
			return o
		}
	}
	return common.OutcomeInternal
}
