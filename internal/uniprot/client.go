// Package uniprot resolves a raw protein sequence to a UniProtKB primary
// accession with a single exact-match search.
package uniprot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/seqlab/prothub/internal/telemetry"
)

const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb/search"

// ErrNoMatch means the sequence mapped to nothing: empty input, a
// non-success response, or zero search results.
var ErrNoMatch = errors.New("no accession matched the sequence")

// Client talks to the UniProtKB search endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResult struct {
	PrimaryAccession string `json:"primaryAccession"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// ExtractSequence strips FASTA header lines (those starting with '>')
// and concatenates the remaining lines, trimmed, into one sequence.
func ExtractSequence(input string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// ResolveSequence maps a free-text (optionally FASTA) block to a primary
// accession. An empty sequence short-circuits to ErrNoMatch without any
// remote call. One request, at most one result, no retry.
func (c *Client) ResolveSequence(ctx context.Context, input string) (string, error) {
	sequence := ExtractSequence(input)
	if sequence == "" {
		return "", ErrNoMatch
	}

	ctx, span := telemetry.Tracer("prothub/uniprot").Start(ctx, "uniprot.ResolveSequence")
	defer span.End()
	span.SetAttributes(attribute.Int("sequence_length", len(sequence)))

	params := url.Values{}
	params.Set("query", fmt.Sprintf("sequence:%q", sequence))
	params.Set("format", "json")
	params.Set("size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create uniprot request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uniprot search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrNoMatch
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode uniprot response: %w", err)
	}
	if len(body.Results) == 0 {
		return "", ErrNoMatch
	}
	if body.Results[0].PrimaryAccession == "" {
		return "", fmt.Errorf("uniprot result missing primaryAccession")
	}

	return body.Results[0].PrimaryAccession, nil
}
