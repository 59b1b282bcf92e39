// Package common contains the outcome taxonomy and shared constants used by
// the glossary service and both of its transports.
package common

// RequestIDHeaderName is the HTTP header and gRPC metadata key carrying the
// per-request correlation id.
const RequestIDHeaderName = "x-request-id"

// MaxKeywordLength bounds a keyword, counted in Unicode code points.
const MaxKeywordLength = 255
