package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Mattjhagen/expert-umbrella/internal/api/metrics"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// DomainService fans availability checks out to both configured registrars.
type DomainService struct {
	dynadot ports.Registrar
	namecom ports.Registrar
	logger  zerolog.Logger
}

func NewDomainService(dynadot, namecom ports.Registrar, logger zerolog.Logger) *DomainService {
	return &DomainService{dynadot: dynadot, namecom: namecom, logger: logger}
}

// Check queries both registrars concurrently and always returns both
// results. A registrar failure is folded into its own result's Error field
// rather than aborting the other branch.
func (s *DomainService) Check(ctx context.Context, domain string) *ports.DomainCheck {
	var wg sync.WaitGroup
	check := &ports.DomainCheck{}

	wg.Add(2)
	go func() {
		defer wg.Done()
		check.Dynadot = s.checkOne(ctx, s.dynadot, domain)
	}()
	go func() {
		defer wg.Done()
		check.Namecom = s.checkOne(ctx, s.namecom, domain)
	}()
	wg.Wait()

	return check
}

// checkOne runs a single registrar lookup and shapes any failure into a
// result value.
func (s *DomainService) checkOne(ctx context.Context, registrar ports.Registrar, domain string) *ports.DomainCheckResult {
	result, err := registrar.CheckAvailability(ctx, domain)
	if err != nil {
		metrics.DomainChecksTotal.WithLabelValues(registrar.Name(), "error").Inc()
		s.logger.Warn().Err(err).
			Str("registrar", registrar.Name()).
			Str("domain", domain).
			Msg("availability check failed")
		return &ports.DomainCheckResult{
			Registrar: registrar.Name(),
			Domain:    domain,
			Error:     err.Error(),
		}
	}

	outcome := "taken"
	if result.Available {
		outcome = "available"
	}
	metrics.DomainChecksTotal.WithLabelValues(registrar.Name(), outcome).Inc()
	return result
}
