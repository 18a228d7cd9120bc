// Package site stores user site documents on the local filesystem, one
// directory per (user, site) pair, served back verbatim over HTTP.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// FSStore implements ports.SiteStore over a root directory.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if needed and returns the store.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("site store: create root: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Root returns the directory static serving should be mounted on.
func (s *FSStore) Root() string { return s.root }

// Write stores the HTML document verbatim under <root>/<userID>/<siteID>/index.html.
func (s *FSStore) Write(userID, siteID, html string) error {
	dir, err := s.siteDir(userID, siteID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("site store: create dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, indexFile), []byte(html), 0o644); err != nil {
		return fmt.Errorf("site store: write document: %w", err)
	}
	return nil
}

// Exists reports whether a document exists for (userID, siteID).
func (s *FSStore) Exists(userID, siteID string) (bool, error) {
	dir, err := s.siteDir(userID, siteID)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(filepath.Join(dir, indexFile)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("site store: stat document: %w", err)
	}
	return true, nil
}

// siteDir resolves the directory for a site, rejecting identifiers that
// would escape the store root.
func (s *FSStore) siteDir(userID, siteID string) (string, error) {
	for _, id := range []string{userID, siteID} {
		if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
			return "", fmt.Errorf("site store: invalid identifier %q", id)
		}
	}
	return filepath.Join(s.root, userID, siteID), nil
}
