package kegg

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
	"github.com/metaboclass/metaboclass/pkg/integrations"
)

// DefaultBaseURL is the production KEGG REST endpoint.
const DefaultBaseURL = "http://rest.kegg.jp"

// Compound type values derived from the flat-file record.
const (
	TypePrimary   = "primary"
	TypeSecondary = "secondary"
)

// secondaryMarker is the literal phrase whose presence anywhere in the
// flat-file record classifies a compound as a secondary metabolite. This is
// a heuristic over the BRITE hierarchy text, not a structured field.
const secondaryMarker = "Secondary metabolites"

// Compound holds the type, description, and pathway data for a KEGG
// compound.
//
// Pathways contains unique pathway codes (e.g., "map00010") in first-seen
// order; duplicates in the link payload are collapsed. Type is always
// TypePrimary or TypeSecondary in a valid Compound.
type Compound struct {
	ID          string   // KEGG compound identifier (e.g., "C00031")
	Type        string   // TypePrimary or TypeSecondary
	Description string   // Second line of the flat-file record ("" if absent)
	Pathways    []string // Unique pathway codes (nil if none)
}

// Client provides access to the KEGG find, get, and link endpoints.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a KEGG client. An empty baseURL selects
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

// FindID resolves a compound name to a KEGG compound identifier.
//
// The find endpoint returns one candidate per line, "<db>:<id>\t<name>".
// FindID takes the identifier portion after the first colon of the first
// non-empty line; no fuzzy matching or candidate scoring is attempted.
// Returns a coded error (ID_NOT_FOUND for an empty response, PARSE_ERROR
// for a malformed candidate line, NETWORK_ERROR/TIMEOUT for request
// failures) when no identifier can be produced.
func (c *Client) FindID(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/find/compound/%s", c.baseURL, integrations.PathEncode(name))

	body, err := c.GetText(ctx, url, integrations.SearchTimeout)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", apperrors.New(apperrors.ErrCodeParse, "blank candidate line")
		}
		_, id, ok := strings.Cut(fields[0], ":")
		if !ok || id == "" {
			return "", apperrors.New(apperrors.ErrCodeParse, "malformed candidate line %q", line)
		}
		return id, nil
	}
	return "", apperrors.New(apperrors.ErrCodeIDNotFound, "no KEGG match for %q", name)
}

// FetchCompound retrieves the flat-file record and pathway links for a KEGG
// compound identifier.
//
// Two requests are issued (detail and pathway links) and form a single
// failure unit: if either fails, no Compound is returned. The type is
// "secondary" iff the detail payload contains the literal phrase
// "Secondary metabolites", else "primary". The description is the second
// line of the detail payload, or "" when fewer than two lines exist.
func (c *Client) FetchCompound(ctx context.Context, id string) (*Compound, error) {
	detailURL := fmt.Sprintf("%s/get/cpd:%s", c.baseURL, integrations.PathEncode(id))
	detail, err := c.GetText(ctx, detailURL, integrations.DetailTimeout)
	if err != nil {
		return nil, err
	}

	linkURL := fmt.Sprintf("%s/link/pathway/cpd:%s", c.baseURL, integrations.PathEncode(id))
	links, err := c.GetText(ctx, linkURL, integrations.DetailTimeout)
	if err != nil {
		return nil, err
	}

	pathways, err := parsePathwayLinks(links)
	if err != nil {
		return nil, err
	}

	compoundType := TypePrimary
	if strings.Contains(detail, secondaryMarker) {
		compoundType = TypeSecondary
	}

	return &Compound{
		ID:          id,
		Type:        compoundType,
		Description: secondLine(detail),
		Pathways:    pathways,
	}, nil
}

// parsePathwayLinks extracts unique pathway codes from the link payload,
// "<compound-ref>\t<pathway-ref>" per line, stripping the "path:" prefix.
// First-seen order is preserved.
func parsePathwayLinks(body string) ([]string, error) {
	var codes []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		_, ref, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeParse, "malformed pathway line %q", line)
		}
		code := strings.TrimPrefix(strings.TrimSpace(ref), "path:")
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes, nil
}

func secondLine(body string) string {
	lines := strings.Split(body, "\n")
	if len(lines) > 1 {
		return lines[1]
	}
	return ""
}
