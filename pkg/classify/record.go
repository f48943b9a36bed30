package classify

import "fmt"

// State enumerates per-source lookup outcomes.
type State int

const (
	// StateMissing means no lookup was performed for this source.
	StateMissing State = iota
	// StateFound means the source returned a usable record.
	StateFound
	// StateIDNotFound means resolution produced no identifier. This is
	// indistinguishable from a transient failure at resolution time.
	StateIDNotFound
	// StateError means the detail fetch failed after a successful resolution.
	StateError
)

// Status records the outcome of one source's lookup for one metabolite.
type Status struct {
	State   State
	Message string // failure description, set only when State == StateError
}

// Found returns a success status.
func Found() Status { return Status{State: StateFound} }

// IDNotFound returns the status for a failed resolution.
func IDNotFound() Status { return Status{State: StateIDNotFound} }

// Errored returns the status for a failed detail fetch.
func Errored(message string) Status {
	return Status{State: StateError, Message: message}
}

// String renders the status the way the output table reports it.
func (s Status) String() string {
	switch s.State {
	case StateFound:
		return "Found"
	case StateIDNotFound:
		return "ID not found"
	case StateError:
		return fmt.Sprintf("Error: %s", s.Message)
	default:
		return ""
	}
}

// HMDBRecord holds the HMDB-sourced fields for one metabolite.
//
// All fields other than Status are zero unless Status.State is StateFound.
type HMDBRecord struct {
	ID         string   // HMDB accession
	SuperClass string   // taxonomy fields default to "Unknown" when the
	Class      string   // document does not populate them
	SubClass   string
	Pathways   []string // pathway names in document order
	Status     Status
}

// KEGGRecord holds the KEGG-sourced fields for one metabolite.
//
// All fields other than Status are zero unless Status.State is StateFound.
type KEGGRecord struct {
	ID          string   // KEGG compound identifier
	Type        string   // "primary" or "secondary"; "" when absent
	Pathways    []string // unique pathway codes in first-seen order
	Description string
	Status      Status
}

// Record is the merged, classified result for one metabolite name.
type Record struct {
	Name      string
	HMDB      HMDBRecord
	KEGG      KEGGRecord
	FinalType string // always one of primary, secondary, unknown
}
