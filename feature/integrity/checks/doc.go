// Package checks implements the individual integrity checks: the bucket prefix
// structure used by bucket imports and the catalog database schema.
package checks
