// Package middleware holds the Gin middleware stack for the FindCare
// server: panic recovery, request-ID propagation, CORS, body-size
// limiting, and request logging.
package middleware
