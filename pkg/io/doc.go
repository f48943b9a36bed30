// Package io reads metabolite name lists and writes result tables.
//
// Input is a CSV whose first column (or a named column) holds metabolite
// names; names are taken verbatim, with no validation or normalization.
// Output is the classification table as CSV or JSON, containing only the
// columns at least one row populates.
package io
