package classify

import (
	"slices"
	"testing"
)

func TestTableOrderAndOverwrite(t *testing.T) {
	table := NewTable()
	table.Put(Record{Name: "glucose", FinalType: Primary})
	table.Put(Record{Name: "quercetin", FinalType: Secondary})
	table.Put(Record{Name: "glucose", FinalType: Unknown}) // last write wins

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	rows := table.Rows()
	if rows[0].Name != "glucose" || rows[1].Name != "quercetin" {
		t.Errorf("row order = [%s, %s], want first-occurrence order", rows[0].Name, rows[1].Name)
	}
	if rows[0].FinalType != Unknown {
		t.Errorf("glucose FinalType = %q, want overwritten value %q", rows[0].FinalType, Unknown)
	}

	if _, ok := table.Get("quercetin"); !ok {
		t.Error("Get(quercetin) not found")
	}
}

func TestTableColumnsOnlyPopulated(t *testing.T) {
	table := NewTable()
	table.Put(Record{
		Name:      "glucose",
		FinalType: Primary,
		HMDB: HMDBRecord{
			ID:         "HMDB0000122",
			SuperClass: "Organic oxygen compounds",
			Class:      "Organooxygen compounds",
			SubClass:   "Carbohydrates and carbohydrate conjugates",
			Status:     Found(),
		},
		KEGG: KEGGRecord{Status: IDNotFound()},
	})

	cols := table.Columns()

	for _, want := range []string{ColName, ColFinalType, ColSuperClass, ColHMDBID, ColHMDBStatus, ColKEGGStatus} {
		if !slices.Contains(cols, want) {
			t.Errorf("Columns() missing %q: %v", want, cols)
		}
	}
	// No row populates KEGG data or pathways, so those columns are absent.
	for _, absent := range []string{ColKEGGID, ColKEGGPathways, ColHMDBPathways, ColDescription} {
		if slices.Contains(cols, absent) {
			t.Errorf("Columns() should not contain %q: %v", absent, cols)
		}
	}

	// name always leads.
	if cols[0] != ColName {
		t.Errorf("Columns()[0] = %q, want %q", cols[0], ColName)
	}
}

func TestCellStringJoinsPathways(t *testing.T) {
	r := Record{
		Name: "glucose",
		HMDB: HMDBRecord{Pathways: []string{"Glycolysis", "Gluconeogenesis"}, Status: Found()},
	}

	if got := r.CellString(ColHMDBPathways); got != "Glycolysis; Gluconeogenesis" {
		t.Errorf("CellString(%s) = %q", ColHMDBPathways, got)
	}
	if got := r.CellString(ColKEGGPathways); got != "" {
		t.Errorf("CellString(%s) = %q, want empty", ColKEGGPathways, got)
	}
}

func TestRecordValueStatusPopulation(t *testing.T) {
	var r Record
	if _, ok := r.Value(ColHMDBStatus); ok {
		t.Error("status of a record with no lookup should be unpopulated")
	}

	r.HMDB.Status = IDNotFound()
	v, ok := r.Value(ColHMDBStatus)
	if !ok || v != "ID not found" {
		t.Errorf("Value(%s) = %v, %v", ColHMDBStatus, v, ok)
	}
}
