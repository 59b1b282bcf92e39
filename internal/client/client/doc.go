// Package client talks to a glossary server.
//
// # Overview
//
// Directory is the transport-agnostic contract. GRPCClient implements it
// over the RPC endpoint and HTTPClient over the HTTP one; New picks one
// from the configured transport.
//
// # Error Handling
//
// A failure reported by the server comes back as *RemoteError. It wraps the
// sentinel of its outcome from the common package, so callers match it with
// errors.Is(err, common.ErrorNotFound) and friends regardless of the
// transport. Detail carries the server's message.
//
// Connection failures are returned as they are.
package client
