package httpserver

import (
	"net/http"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

// statusByOutcome is the HTTP status of every failed directory outcome.
// Success statuses depend on the route (200, 201, 204).
var statusByOutcome = map[common.Outcome]int{
	common.OutcomeNotFound:         http.StatusNotFound,
	common.OutcomeAlreadyExists:    http.StatusConflict,
	common.OutcomeInvalidInput:     http.StatusUnprocessableEntity,
	common.OutcomeStoreUnavailable: http.StatusInternalServerError,
	common.OutcomeInternal:         http.StatusInternalServerError,
}

// StatusOf maps a failed outcome to its HTTP status.
func StatusOf(o common.Outcome) int {
	if code, ok := statusByOutcome[o]; ok {
		return code
	}
	return http.StatusInternalServerError
}
