package ports

import "context"

// DomainCheck pairs the independent availability results from both
// configured registrars. Both fields are always populated; a registrar
// failure is embedded in its own result rather than thrown.
type DomainCheck struct {
	Dynadot *DomainCheckResult `json:"dynadot"`
	Namecom *DomainCheckResult `json:"namecom"`
}

// DomainService checks domain availability across registrars.
type DomainService interface {
	// Check fans out to both registrars and returns both results,
	// regardless of individual registrar failure.
	Check(ctx context.Context, domain string) *DomainCheck
}
