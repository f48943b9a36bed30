// Package classify defines the per-metabolite record model and the
// primary/secondary classification rule.
//
// A run produces one [Record] per input metabolite name, combining an
// [HMDBRecord] and a [KEGGRecord]. The two sources are independent: failure
// in one never blocks population of the other, and per-source outcomes are
// carried as [Status] values rather than errors.
//
// The final type decision ([Decide]) prefers KEGG's explicit type tag and
// falls back to a keyword heuristic over the HMDB super class. The keyword
// lists are deliberately small; they are a documented heuristic, not a
// taxonomy lookup table.
package classify
