package classify

import "strings"

// Column names for the result table, in canonical output order.
const (
	ColName         = "name"
	ColFinalType    = "final_type"
	ColSuperClass   = "super_class"
	ColClass        = "class"
	ColSubClass     = "sub_class"
	ColHMDBPathways = "hmdb_pathways"
	ColKEGGPathways = "kegg_pathways"
	ColHMDBID       = "hmdb_id"
	ColKEGGID       = "kegg_id"
	ColDescription  = "description"
	ColHMDBStatus   = "hmdb_status"
	ColKEGGStatus   = "kegg_status"
)

var allColumns = []string{
	ColName,
	ColFinalType,
	ColSuperClass,
	ColClass,
	ColSubClass,
	ColHMDBPathways,
	ColKEGGPathways,
	ColHMDBID,
	ColKEGGID,
	ColDescription,
	ColHMDBStatus,
	ColKEGGStatus,
}

// Table is an ordered collection of classified records, one per unique
// metabolite name. Row order matches first-occurrence input order; putting
// a record under an existing name overwrites the earlier row in place
// (last write wins).
type Table struct {
	order []string
	rows  map[string]Record
}

// NewTable creates an empty result table.
func NewTable() *Table {
	return &Table{rows: make(map[string]Record)}
}

// Put inserts or replaces the row for r.Name.
func (t *Table) Put(r Record) {
	if _, ok := t.rows[r.Name]; !ok {
		t.order = append(t.order, r.Name)
	}
	t.rows[r.Name] = r
}

// Get returns the row for name, if present.
func (t *Table) Get(name string) (Record, bool) {
	r, ok := t.rows[name]
	return r, ok
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.order) }

// Rows returns all rows in first-occurrence input order.
func (t *Table) Rows() []Record {
	out := make([]Record, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.rows[name])
	}
	return out
}

// Columns returns the column names populated by at least one row, in
// canonical order. Name is always present; a column like kegg_id appears
// only if some row carries a value for it.
func (t *Table) Columns() []string {
	var cols []string
	for _, col := range allColumns {
		if col == ColName {
			cols = append(cols, col)
			continue
		}
		for _, name := range t.order {
			if _, ok := t.rows[name].Value(col); ok {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// Value returns the value of the named column for this record and whether
// the column is populated. Pathway columns return []string; everything else
// returns string. Status columns are populated whenever a lookup ran.
func (r Record) Value(col string) (any, bool) {
	switch col {
	case ColName:
		return r.Name, true
	case ColFinalType:
		return r.FinalType, r.FinalType != ""
	case ColSuperClass:
		return r.HMDB.SuperClass, r.HMDB.SuperClass != ""
	case ColClass:
		return r.HMDB.Class, r.HMDB.Class != ""
	case ColSubClass:
		return r.HMDB.SubClass, r.HMDB.SubClass != ""
	case ColHMDBPathways:
		return r.HMDB.Pathways, len(r.HMDB.Pathways) > 0
	case ColKEGGPathways:
		return r.KEGG.Pathways, len(r.KEGG.Pathways) > 0
	case ColHMDBID:
		return r.HMDB.ID, r.HMDB.ID != ""
	case ColKEGGID:
		return r.KEGG.ID, r.KEGG.ID != ""
	case ColDescription:
		return r.KEGG.Description, r.KEGG.Description != ""
	case ColHMDBStatus:
		return r.HMDB.Status.String(), r.HMDB.Status.State != StateMissing
	case ColKEGGStatus:
		return r.KEGG.Status.String(), r.KEGG.Status.State != StateMissing
	default:
		return nil, false
	}
}

// CellString renders a column value as a single cell. Pathway lists are
// joined with "; ".
func (r Record) CellString(col string) string {
	v, ok := r.Value(col)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, "; ")
	default:
		return ""
	}
}
