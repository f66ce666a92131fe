// Package api registers the FindCare HTTP surface: the provider lookup
// endpoint, the header link resolver, the wireframe placeholder endpoints,
// the static pages, and the operational endpoints.
package api
