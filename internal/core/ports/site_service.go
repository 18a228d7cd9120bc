package ports

import "context"

// CreateSiteInput carries the data for creating a site draft.
type CreateSiteInput struct {
	UserID string
	Name   string
	HTML   string
}

// CreateSiteResult is returned once the document has been written.
type CreateSiteResult struct {
	SiteID     string
	PreviewURL string
}

// SiteStore persists site documents.
type SiteStore interface {
	// Write stores the HTML document verbatim under (userID, siteID).
	Write(userID, siteID, html string) error
	// Exists reports whether a document exists for (userID, siteID).
	Exists(userID, siteID string) (bool, error)
}

// SiteService defines use-case operations for user sites.
type SiteService interface {
	Create(ctx context.Context, input CreateSiteInput) (*CreateSiteResult, error)
	// Publish confirms the site exists and returns its public URL.
	Publish(ctx context.Context, userID, siteID string) (string, error)
}
