// Package stringdb fetches pairwise protein interaction records from the
// STRING network API.
package stringdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/seqlab/prothub/internal/telemetry"
)

const (
	DefaultBaseURL = "https://string-db.org/api"

	outputFormat = "json"
	method       = "network"
)

// ErrNoData means the service reported failure or returned no records
// for the query.
var ErrNoData = errors.New("no interaction data found")

// Interaction is one record of the network response. Endpoint names and
// the confidence score are required; a record missing any of them is a
// decode failure.
type Interaction struct {
	PreferredNameA string  `json:"preferredName_A"`
	PreferredNameB string  `json:"preferredName_B"`
	Score          float64 `json:"score"`
}

// interactionRecord is the wire shape. Score is a pointer so a missing
// field is distinguishable from a genuine 0.0.
type interactionRecord struct {
	PreferredNameA string   `json:"preferredName_A"`
	PreferredNameB string   `json:"preferredName_B"`
	Score          *float64 `json:"score"`
}

// Client talks to the STRING interaction endpoint.
type Client struct {
	BaseURL        string
	CallerIdentity string
	HTTPClient     *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:        DefaultBaseURL,
		CallerIdentity: "prothub",
		HTTPClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

// RequiredScore converts a 0-1 threshold to the 0-1000 integer scale the
// service expects.
func RequiredScore(threshold float64) int {
	return int(math.Round(threshold * 1000))
}

// Network fetches the interaction partners of an accession for one
// species at a minimum confidence threshold. One POST, no pagination,
// no retry.
func (c *Client) Network(ctx context.Context, accession string, species int, minScore float64) ([]Interaction, error) {
	ctx, span := telemetry.Tracer("prothub/stringdb").Start(ctx, "stringdb.Network")
	defer span.End()
	span.SetAttributes(
		attribute.String("accession", accession),
		attribute.Int("species", species),
	)

	form := url.Values{}
	form.Set("identifiers", accession)
	form.Set("species", strconv.Itoa(species))
	form.Set("caller_identity", c.CallerIdentity)
	form.Set("required_score", strconv.Itoa(RequiredScore(minScore)))

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseURL, outputFormat, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create string-db request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("string-db request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoData
	}

	var raw []interactionRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode string-db response: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoData
	}
	records := make([]Interaction, 0, len(raw))
	for i, r := range raw {
		if r.PreferredNameA == "" || r.PreferredNameB == "" {
			return nil, fmt.Errorf("interaction record %d missing endpoint name", i)
		}
		if r.Score == nil {
			return nil, fmt.Errorf("interaction record %d missing score", i)
		}
		records = append(records, Interaction{
			PreferredNameA: r.PreferredNameA,
			PreferredNameB: r.PreferredNameB,
			Score:          *r.Score,
		})
	}

	return records, nil
}
