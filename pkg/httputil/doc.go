// Package httputil provides shared HTTP plumbing for the database clients.
//
// Its main piece is [Limiter], a fixed min-interval politeness delay between
// requests to the same upstream database. Both HMDB and KEGG are public
// services without authenticated quotas; the limiter is a self-imposed
// courtesy, not a backpressure mechanism, and is injectable so a smarter
// policy can replace it without touching call sites.
package httputil
