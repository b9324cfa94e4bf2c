// Package transport sends qyl API requests over HTTP and turns responses into
// models or typed errors.
//
// # Adapter
//
// HTTPAdapter implements request.Adapter. It expands the request URL, runs
// the outgoing request through a middleware chain and hands the response to
// Dispatch, which applies the operation's error mapping. Streaming calls use
// a separate client without an overall timeout and return the raw body.
//
// # Middleware
//
// Middleware wraps an http.RoundTripper. The default chain, outermost first:
// panic recovery, request ID assignment (X-Request-ID), User-Agent,
// structured logging via log/slog, Prometheus instrumentation,
// authentication and body compression.
//
// # Event streams
//
// SSEReader optionally splits a raw stream into events for callers that
// want framing. The dispatcher never decodes streams.
package transport
