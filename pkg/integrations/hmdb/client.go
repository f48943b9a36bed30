package hmdb

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
	"github.com/metaboclass/metaboclass/pkg/integrations"
)

// DefaultBaseURL is the production HMDB endpoint.
const DefaultBaseURL = "https://hmdb.ca"

// UnknownClass is the placeholder recorded for taxonomy fields the XML
// document does not populate.
const UnknownClass = "Unknown"

// Metabolite holds the classification and pathway data extracted from an
// HMDB metabolite document.
//
// Taxonomy fields are never empty in a valid Metabolite; absent fields are
// filled with [UnknownClass]. Pathways preserves document order and may be
// nil when the document lists none.
type Metabolite struct {
	ID         string   // HMDB accession (e.g., "HMDB0000122")
	SuperClass string   // Taxonomic super class (e.g., "Organic oxygen compounds")
	Class      string   // Taxonomic class
	SubClass   string   // Taxonomic sub class
	Pathways   []string // Pathway names in document order (nil if none)
}

// Client provides access to the HMDB search and metabolite detail endpoints.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an HMDB client. An empty baseURL selects
// [DefaultBaseURL]; tests and alternate deployments can point elsewhere.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// SearchID resolves a metabolite name to an HMDB accession via the
// full-text search endpoint.
//
// The first match wins; no ranking or disambiguation is applied. Returns a
// coded error (ID_NOT_FOUND for an empty match list, NETWORK_ERROR/TIMEOUT/
// PARSE_ERROR for request failures) when no accession can be produced.
func (c *Client) SearchID(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/unearth/q?query=%s&searcher=metabolites", c.baseURL, integrations.URLEncode(name))

	var data searchResponse
	if err := c.GetJSON(ctx, url, integrations.SearchTimeout, &data); err != nil {
		return "", err
	}
	if len(data.Metabolites) == 0 || data.Metabolites[0].HMDBID == "" {
		return "", apperrors.New(apperrors.ErrCodeIDNotFound, "no HMDB match for %q", name)
	}
	return data.Metabolites[0].HMDBID, nil
}

// FetchMetabolite retrieves the XML document for an HMDB accession and
// extracts classification and pathway data.
//
// The pathways element may hold a single pathway or a list; both decode to
// a slice, so callers always see a sequence. Pathway entries that are not
// well-formed elements are dropped by the decoder.
func (c *Client) FetchMetabolite(ctx context.Context, id string) (*Metabolite, error) {
	url := fmt.Sprintf("%s/metabolites/%s.xml", c.baseURL, integrations.PathEncode(id))

	body, err := c.GetText(ctx, url, integrations.DetailTimeout)
	if err != nil {
		return nil, err
	}

	var doc metaboliteDoc
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "decode metabolite document for %s", id)
	}

	m := &Metabolite{
		ID:         id,
		SuperClass: orUnknown(doc.Classification.SuperClass),
		Class:      orUnknown(doc.Classification.Class),
		SubClass:   orUnknown(doc.Classification.SubClass),
	}
	// Pathway names are carried verbatim, surrounding whitespace included.
	for _, p := range doc.Pathways.Pathway {
		m.Pathways = append(m.Pathways, p.Name)
	}
	return m, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownClass
	}
	return strings.TrimSpace(s)
}

type searchResponse struct {
	Metabolites []searchHit `json:"metabolites"`
}

type searchHit struct {
	HMDBID string `json:"hmdb_id"`
}

type metaboliteDoc struct {
	XMLName        xml.Name `xml:"metabolite"`
	Classification struct {
		SuperClass string `xml:"super_class"`
		Class      string `xml:"class"`
		SubClass   string `xml:"sub_class"`
	} `xml:"classification"`
	Pathways struct {
		Pathway []struct {
			Name string `xml:"name"`
		} `xml:"pathway"`
	} `xml:"pathways"`
}
