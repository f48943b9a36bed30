package classify

// Merge combines the per-source records for one metabolite name into a
// single classified Record.
//
// The HMDB and KEGG field sets are disjoint, so merging is a plain overlay;
// were a collision ever introduced, the KEGG value would take precedence,
// which the final-type rule already encodes (an explicit KEGG type
// overrides the HMDB heuristic). The merged record always carries a final
// type, even when both sources failed.
func Merge(name string, h HMDBRecord, k KEGGRecord) Record {
	r := Record{Name: name, HMDB: h, KEGG: k}
	r.FinalType = Decide(r)
	return r
}
