// Package client is the typed request-builder tree for the qyl REST API.
//
// Builders mirror the URL hierarchy:
//
//	c := client.New(adapter)
//	d, err := c.V1().Deployments().ByDeploymentID("d1").Get(ctx, nil)
//
// Builders are immutable values; navigation copies path parameters, so one
// builder may be shared by any number of goroutines. Every operation has a
// pure To<Method>RequestInformation counterpart that prepares the request
// without sending it. Invalid navigation arguments (an empty id) surface as
// a *serialization.ContractViolation from the operation, before any network
// call is made.
package client
