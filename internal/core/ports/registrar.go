package ports

import (
	"context"
	"encoding/json"
)

// DomainCheckResult is the outcome of one registrar's availability lookup.
// A failed lookup still produces a result with Error set; callers always
// receive one result per registrar queried.
type DomainCheckResult struct {
	Registrar string          `json:"registrar"`
	Domain    string          `json:"domain"`
	Available bool            `json:"available"`
	Price     float64         `json:"price,omitempty"`
	Raw       json.RawMessage `json:"raw,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// RegistrationResult is the outcome of a registrar registration call.
type RegistrationResult struct {
	Registrar string          `json:"registrar"`
	Domain    string          `json:"domain"`
	Success   bool            `json:"success"`
	Raw       json.RawMessage `json:"raw,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Contact holds the registrant details some registrars require.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// Registrar wraps a third-party domain registration API.
type Registrar interface {
	// Name identifies the registrar in results and logs (e.g. "dynadot").
	Name() string
	CheckAvailability(ctx context.Context, domain string) (*DomainCheckResult, error)
	Register(ctx context.Context, domain string, years int, contact Contact) (*RegistrationResult, error)
}
