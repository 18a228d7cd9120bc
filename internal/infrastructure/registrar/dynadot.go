// Package registrar provides HTTP adapters for the two domain registrar
// APIs. Responses are kept as opaque payloads alongside the few fields the
// service layer needs; neither registrar publishes a Go SDK.
package registrar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

const dynadotName = "dynadot"

const defaultHTTPTimeout = 15 * time.Second

// DynadotClient calls the Dynadot advanced JSON API (api3).
type DynadotClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewDynadotClient builds a client. baseURL is overridable for tests;
// empty selects the production endpoint.
func NewDynadotClient(apiKey, baseURL string) *DynadotClient {
	if baseURL == "" {
		baseURL = "https://api.dynadot.com"
	}
	return &DynadotClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (c *DynadotClient) Name() string { return dynadotName }

type dynadotSearchResponse struct {
	SearchResponse struct {
		ResponseCode  string `json:"ResponseCode"`
		Error         string `json:"Error"`
		SearchResults []struct {
			DomainName string `json:"DomainName"`
			Available  string `json:"Available"`
			Price      string `json:"Price"`
		} `json:"SearchResults"`
	} `json:"SearchResponse"`
}

// CheckAvailability runs a search command for a single domain.
func (c *DynadotClient) CheckAvailability(ctx context.Context, domain string) (*ports.DomainCheckResult, error) {
	raw, err := c.call(ctx, url.Values{
		"command":    {"search"},
		"domain0":    {domain},
		"show_price": {"1"},
	})
	if err != nil {
		return nil, err
	}

	var parsed dynadotSearchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("dynadot: decode search response: %w", err)
	}
	if parsed.SearchResponse.Error != "" {
		return nil, fmt.Errorf("dynadot: %s", parsed.SearchResponse.Error)
	}
	if len(parsed.SearchResponse.SearchResults) == 0 {
		return nil, fmt.Errorf("dynadot: empty search response for %s", domain)
	}

	result := parsed.SearchResponse.SearchResults[0]
	return &ports.DomainCheckResult{
		Registrar: dynadotName,
		Domain:    domain,
		Available: strings.EqualFold(result.Available, "yes"),
		Price:     parsePrice(result.Price),
		Raw:       raw,
	}, nil
}

type dynadotRegisterResponse struct {
	RegisterResponse struct {
		Status string `json:"Status"`
		Error  string `json:"Error"`
	} `json:"RegisterResponse"`
}

// Register registers the domain for the given number of years. Dynadot
// takes registrant details from the account profile, so contact is unused.
func (c *DynadotClient) Register(ctx context.Context, domain string, years int, _ ports.Contact) (*ports.RegistrationResult, error) {
	raw, err := c.call(ctx, url.Values{
		"command":  {"register"},
		"domain":   {domain},
		"duration": {strconv.Itoa(years)},
	})
	if err != nil {
		return nil, err
	}

	var parsed dynadotRegisterResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("dynadot: decode register response: %w", err)
	}

	res := &ports.RegistrationResult{
		Registrar: dynadotName,
		Domain:    domain,
		Success:   strings.EqualFold(parsed.RegisterResponse.Status, "success"),
		Raw:       raw,
	}
	if !res.Success {
		res.Error = parsed.RegisterResponse.Error
		if res.Error == "" {
			res.Error = fmt.Sprintf("dynadot: register status %q", parsed.RegisterResponse.Status)
		}
	}
	return res, nil
}

func (c *DynadotClient) call(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api3.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("dynadot: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dynadot: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dynadot: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dynadot: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// parsePrice extracts the leading number from price strings such as
// "12.99 in USD". Returns 0 when no number is present.
func parsePrice(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	p, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return p
}
