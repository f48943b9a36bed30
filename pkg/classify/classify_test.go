package classify

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name:     "explicit kegg type wins",
			record:   Record{KEGG: KEGGRecord{Type: Secondary}, HMDB: HMDBRecord{SuperClass: "Lipids and lipid-like molecules"}},
			expected: Secondary,
		},
		{
			name:     "kegg primary over secondary super class",
			record:   Record{KEGG: KEGGRecord{Type: Primary}, HMDB: HMDBRecord{SuperClass: "Flavonoids"}},
			expected: Primary,
		},
		{
			name:     "lipid super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Lipids and lipid-like molecules"}},
			expected: Primary,
		},
		{
			name:     "organic acid super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Organic acids and derivatives"}},
			expected: Primary,
		},
		{
			name:     "nucleoside super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Nucleosides, nucleotides, and analogues"}},
			expected: Primary,
		},
		{
			name:     "flavonoid substring case-insensitive",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Flavonoid glycoside"}},
			expected: Secondary,
		},
		{
			name:     "alkaloid super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Alkaloids and derivatives"}},
			expected: Secondary,
		},
		{
			name:     "terpene super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Prenol lipids (terpenes)"}},
			expected: Primary, // lipid is checked before terpene
		},
		{
			name:     "unknown super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Unknown"}},
			expected: Unknown,
		},
		{
			name:     "empty record",
			record:   Record{},
			expected: Unknown,
		},
		{
			name:     "unrelated super class",
			record:   Record{HMDB: HMDBRecord{SuperClass: "Benzenoids"}},
			expected: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.record); got != tt.expected {
				t.Errorf("Decide() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMergeSetsFinalType(t *testing.T) {
	r := Merge("quercetin",
		HMDBRecord{SuperClass: "Flavonoids", Status: Found()},
		KEGGRecord{Status: IDNotFound()},
	)

	if r.Name != "quercetin" {
		t.Errorf("Name = %q, want %q", r.Name, "quercetin")
	}
	if r.FinalType != Secondary {
		t.Errorf("FinalType = %q, want %q", r.FinalType, Secondary)
	}
	if r.HMDB.Status.State != StateFound {
		t.Errorf("HMDB state = %v, want %v", r.HMDB.Status.State, StateFound)
	}
}

func TestMergeTotalFailureStillClassified(t *testing.T) {
	r := Merge("mystery",
		HMDBRecord{Status: IDNotFound()},
		KEGGRecord{Status: Errored("unexpected status 503")},
	)

	if r.FinalType != Unknown {
		t.Errorf("FinalType = %q, want %q", r.FinalType, Unknown)
	}
	if got := r.KEGG.Status.String(); got != "Error: unexpected status 503" {
		t.Errorf("KEGG status = %q", got)
	}
	if got := r.HMDB.Status.String(); got != "ID not found" {
		t.Errorf("HMDB status = %q", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{Found(), "Found"},
		{IDNotFound(), "ID not found"},
		{Errored("boom"), "Error: boom"},
		{Status{}, ""},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
