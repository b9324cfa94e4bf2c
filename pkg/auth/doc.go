// Package auth attaches credentials to outgoing qyl API requests.
//
// Authenticators form a chain with three-outcome voting: each one either
// attaches its credentials (Yes), refuses the request (No), or declines to
// handle it (Abstain), for instance because the target host is not in its
// allow list. A default decision covers the case where every authenticator
// abstains.
//
// The chain runs as an http.RoundTripper, so a refused request never reaches
// the network.
package auth
