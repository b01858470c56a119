// Package server runs the HTTP and gRPC transports of the member
// authentication server and shuts them down on SIGTERM, SIGINT or SIGQUIT.
package server
