package common

import "errors"

// Outcome is the transport-neutral result kind of a directory operation.
// Every error returned by the service collapses into exactly one Outcome.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeAlreadyExists
	OutcomeInvalidInput
	OutcomeStoreUnavailable
	OutcomeInternal
)

// Outcomes lists every kind, in declaration order.
var Outcomes = []Outcome{
	OutcomeOK,
	OutcomeNotFound,
	OutcomeAlreadyExists,
	OutcomeInvalidInput,
	OutcomeStoreUnavailable,
	OutcomeInternal,
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeAlreadyExists:
		return "already_exists"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeStoreUnavailable:
		return "store_unavailable"
	default:
		return "internal"
	}
}

// Err returns the sentinel error of o, or nil for OutcomeOK.
func (o Outcome) Err() error {
	switch o {
	case OutcomeOK:
		return nil
	case OutcomeNotFound:
		return ErrorNotFound
	case OutcomeAlreadyExists:
		return ErrorAlreadyExists
	case OutcomeInvalidInput:
		return ErrorInvalidInput
	case OutcomeStoreUnavailable:
		return ErrorStoreUnavailable
	default:
		return ErrorInternal
	}
}

// OutcomeOf classifies err. A nil error is OutcomeOK; anything that does not
// wrap one of the taxonomy sentinels is OutcomeInternal.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrorInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, ErrorNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrorAlreadyExists):
		return OutcomeAlreadyExists
	case errors.Is(err, ErrorStoreUnavailable):
		return OutcomeStoreUnavailable
	default:
		return OutcomeInternal
	}
}

// Detail is the caller-facing message for err. Both transports send the
// same text for the same outcome; store-specific detail never leaves the
// service except for invalid input, whose message names the broken
// constraint.
func Detail(err error) string {
	switch OutcomeOf(err) {
	case OutcomeOK:
		return ""
	case OutcomeInvalidInput:
		var ve *ValidationError
		if errors.As(err, &ve) {
			return ve.Error()
		}
		return ErrorInvalidInput.Error()
	case OutcomeNotFound:
		return "Term not found"
	case OutcomeAlreadyExists:
		return "Term already exists"
	case OutcomeStoreUnavailable:
		return "store unavailable, retry later"
	default:
		return "internal error"
	}
}
