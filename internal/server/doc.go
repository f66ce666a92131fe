// Package server provides the FindCare HTTP server built on Gin with
// h2c support, the standard middleware stack (recovery, request-ID, CORS,
// body-size limit, request logging), and lifecycle management.
//
// Start returns only once the listener has bound its port, so callers can
// treat its return as the readiness signal before opening a browser.
package server
