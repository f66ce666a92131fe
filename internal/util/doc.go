// Package util contains small shared helpers: size parsing for the
// request body limit and string/HTML sanitization.
package util
