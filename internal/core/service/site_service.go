package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// SiteService writes and publishes per-user static sites.
type SiteService struct {
	store  ports.SiteStore
	logger zerolog.Logger
}

func NewSiteService(store ports.SiteStore, logger zerolog.Logger) *SiteService {
	return &SiteService{store: store, logger: logger}
}

// Create writes the uploaded HTML document verbatim under a per-user,
// per-site path and returns the preview URL. Content is trusted and served
// back as-is.
func (s *SiteService) Create(ctx context.Context, input ports.CreateSiteInput) (*ports.CreateSiteResult, error) {
	siteID := domain.NewSiteID(time.Now())

	if err := s.store.Write(input.UserID, siteID, input.HTML); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Str("site_id", siteID).Msg("failed to write site document")
		return nil, fmt.Errorf("create site: %w", err)
	}

	s.logger.Info().
		Str("user_id", input.UserID).
		Str("site_id", siteID).
		Str("name", input.Name).
		Msg("site created")

	return &ports.CreateSiteResult{
		SiteID:     siteID,
		PreviewURL: domain.PublicPath(input.UserID, siteID),
	}, nil
}

// Publish confirms the site document exists and returns its public URL.
// There is no draft/live distinction; publishing a created site is a no-op
// confirmation.
func (s *SiteService) Publish(ctx context.Context, userID, siteID string) (string, error) {
	exists, err := s.store.Exists(userID, siteID)
	if err != nil {
		return "", fmt.Errorf("publish site: %w", err)
	}
	if !exists {
		return "", domain.ErrSiteNotFound
	}

	s.logger.Info().Str("user_id", userID).Str("site_id", siteID).Msg("site published")
	return domain.PublicPath(userID, siteID), nil
}
