// Package suggest aggregates search-suggestion (autocomplete) results from
// several unrelated upstream providers. It normalizes their response shapes
// into an ordered list of strings, spaces outbound requests with a shared
// rate limit, and can fan a single query out into derived queries before
// merging and deduplicating the results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, slog/).
package suggest
