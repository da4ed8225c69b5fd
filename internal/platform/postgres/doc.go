// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. The semi-structured parts of a supply document live
// in a JSONB column so caller-supplied fields survive round trips.
package postgres
