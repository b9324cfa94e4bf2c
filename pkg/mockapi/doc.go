// Package mockapi is an in-memory stand-in for the qyl REST API.
//
// It serves deployments, error groups, services, traces and metrics from a
// seeded Store, answers failures with problem+json bodies, pages listings
// with opaque cursors and relays Broker events as server-sent event streams.
// The SDK's integration tests and the mock-backend command run against it.
package mockapi
