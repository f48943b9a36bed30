// Package hmdb provides a client for the Human Metabolome Database.
//
// HMDB lookups are two-stage: [Client.SearchID] resolves a free-text
// metabolite name to an HMDB accession via the full-text search endpoint,
// and [Client.FetchMetabolite] retrieves the metabolite's XML document and
// extracts its taxonomic classification (super class, class, sub class) and
// pathway names.
//
// The search endpoint ranks matches itself; the client takes the first
// match and performs no disambiguation of its own.
package hmdb
