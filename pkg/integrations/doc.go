// Package integrations provides shared HTTP functionality for the external
// biochemical database clients (HMDB and KEGG).
//
// Each database has its own subpackage with a Client that embeds
// [Client] from this package. The base client handles request construction,
// per-call deadlines, response status classification, and observability
// hooks; the subpackages handle endpoint layout and payload parsing.
//
// # Error Handling
//
// All request failures are returned as coded errors from
// [github.com/metaboclass/metaboclass/pkg/errors]:
//   - NETWORK_ERROR for transport failures and non-2xx statuses
//   - TIMEOUT for deadline breaches
//   - PARSE_ERROR for malformed response bodies
//
// Callers decide policy. The pipeline collapses resolution-stage failures to
// "ID not found" and records fetch-stage failures as per-item error statuses;
// neither aborts a run.
package integrations
