// Package provider holds the in-memory provider directory: the seed
// records, criteria-based filtering, and the paginated table projection
// returned by the lookup API.
package provider
