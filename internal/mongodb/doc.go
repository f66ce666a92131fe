// Package mongodb manages the MongoDB client lifecycle: connect and
// ping-validate on start, re-validate on every handle access, and release
// the client on every exit path. It persists nothing itself — it manages a
// connection handle, not data.
package mongodb
