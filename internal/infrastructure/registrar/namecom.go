package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

const namecomName = "namecom"

// NamecomClient calls the Name.com v4 REST API with basic auth.
type NamecomClient struct {
	username string
	token    string
	baseURL  string
	http     *http.Client
}

// NewNamecomClient builds a client. baseURL is overridable for tests;
// empty selects the production endpoint.
func NewNamecomClient(username, token, baseURL string) *NamecomClient {
	if baseURL == "" {
		baseURL = "https://api.name.com"
	}
	return &NamecomClient{
		username: username,
		token:    token,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (c *NamecomClient) Name() string { return namecomName }

type namecomCheckResponse struct {
	Results []struct {
		DomainName    string  `json:"domainName"`
		Purchasable   bool    `json:"purchasable"`
		PurchasePrice float64 `json:"purchasePrice"`
	} `json:"results"`
}

// CheckAvailability queries the checkAvailability endpoint for one domain.
func (c *NamecomClient) CheckAvailability(ctx context.Context, domain string) (*ports.DomainCheckResult, error) {
	raw, err := c.call(ctx, http.MethodPost, "/v4/domains:checkAvailability", map[string]any{
		"domainNames": []string{domain},
	})
	if err != nil {
		return nil, err
	}

	var parsed namecomCheckResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("namecom: decode check response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("namecom: empty check response for %s", domain)
	}

	result := parsed.Results[0]
	return &ports.DomainCheckResult{
		Registrar: namecomName,
		Domain:    domain,
		Available: result.Purchasable,
		Price:     result.PurchasePrice,
		Raw:       raw,
	}, nil
}

// Register purchases the domain for the given number of years, passing the
// registrant contact to the registrar.
func (c *NamecomClient) Register(ctx context.Context, domain string, years int, contact ports.Contact) (*ports.RegistrationResult, error) {
	body := map[string]any{
		"domain": map[string]any{
			"domainName": domain,
		},
		"years": years,
	}
	if contact.Email != "" {
		body["domain"].(map[string]any)["contacts"] = map[string]any{
			"registrant": namecomContact(contact),
		}
	}

	raw, err := c.call(ctx, http.MethodPost, "/v4/domains", body)
	if err != nil {
		return nil, err
	}

	return &ports.RegistrationResult{
		Registrar: namecomName,
		Domain:    domain,
		Success:   true,
		Raw:       raw,
	}, nil
}

func namecomContact(contact ports.Contact) map[string]string {
	return map[string]string{
		"firstName": contact.FirstName,
		"lastName":  contact.LastName,
		"email":     contact.Email,
		"phone":     contact.Phone,
		"address1":  contact.Address,
		"city":      contact.City,
		"zip":       contact.Zip,
		"country":   contact.Country,
	}
}

func (c *NamecomClient) call(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("namecom: encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("namecom: build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("namecom: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("namecom: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("namecom: unexpected status %s: %s", strconv.Itoa(resp.StatusCode), strings.TrimSpace(string(body)))
	}
	return body, nil
}
