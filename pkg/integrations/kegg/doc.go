// Package kegg provides a client for the KEGG REST API.
//
// KEGG lookups are two-stage: [Client.FindID] resolves a free-text compound
// name to a KEGG compound identifier via the find endpoint, and
// [Client.FetchCompound] retrieves the compound's flat-file record and
// pathway links.
//
// All KEGG payloads are line-oriented plain text. The compound's
// primary/secondary type is a substring heuristic over the flat-file record,
// not a structured field; see [Client.FetchCompound].
package kegg
