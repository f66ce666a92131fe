// Package component defines the lifecycle contract for FindCare's
// infrastructure pieces (HTTP server, Mongo connection) and a registry
// that starts them in order and stops them in reverse.
package component
