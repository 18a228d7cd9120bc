package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

type stubSiteStore struct {
	docs     map[string]string // "<userID>/<siteID>" -> html
	writeErr error
}

func newStubSiteStore() *stubSiteStore {
	return &stubSiteStore{docs: make(map[string]string)}
}

func (s *stubSiteStore) Write(userID, siteID, html string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.docs[userID+"/"+siteID] = html
	return nil
}

func (s *stubSiteStore) Exists(userID, siteID string) (bool, error) {
	_, ok := s.docs[userID+"/"+siteID]
	return ok, nil
}

var siteIDPattern = regexp.MustCompile(`^site_\d+$`)

func TestSiteService_Create(t *testing.T) {
	store := newStubSiteStore()
	svc := NewSiteService(store, zerolog.Nop())

	result, err := svc.Create(context.Background(), ports.CreateSiteInput{
		UserID: "u1",
		Name:   "my site",
		HTML:   "<html><body>hi</body></html>",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !siteIDPattern.MatchString(result.SiteID) {
		t.Fatalf("site id %q does not match site_<timestamp>", result.SiteID)
	}
	if !strings.HasPrefix(result.PreviewURL, "/published/u1/") || !strings.HasSuffix(result.PreviewURL, "/index.html") {
		t.Fatalf("unexpected preview url: %s", result.PreviewURL)
	}

	// Content is stored verbatim.
	if got := store.docs["u1/"+result.SiteID]; got != "<html><body>hi</body></html>" {
		t.Fatalf("stored document mutated: %q", got)
	}
}

func TestSiteService_Publish(t *testing.T) {
	store := newStubSiteStore()
	svc := NewSiteService(store, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateSiteInput{UserID: "u1", Name: "s", HTML: "<p>x</p>"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	url, err := svc.Publish(context.Background(), "u1", created.SiteID)
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if url != created.PreviewURL {
		t.Fatalf("public url %q differs from preview url %q", url, created.PreviewURL)
	}
}

func TestSiteService_Publish_UnknownSite(t *testing.T) {
	svc := NewSiteService(newStubSiteStore(), zerolog.Nop())

	if _, err := svc.Publish(context.Background(), "u1", "site_123"); err != domain.ErrSiteNotFound {
		t.Fatalf("expected ErrSiteNotFound, got %v", err)
	}
}
