// Package http implements the REST transport of the member authentication
// server.
//
// It wires the chi router, the login endpoint and the bearer-protected
// member endpoints. Request tracing, access logging and token checks run
// as middleware before a request reaches the service layer.
package http
