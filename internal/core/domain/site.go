package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrSiteNotFound = errors.New("site not found")

// Site describes a published static HTML bundle owned by a single user.
// The HTML itself lives on disk under the sites directory; only the
// identifiers and URLs travel through the API.
type Site struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSiteID derives a site identifier from a creation timestamp.
// Two creations in the same millisecond collide; acceptable for the
// per-user preview flow this backs.
func NewSiteID(t time.Time) string {
	return fmt.Sprintf("site_%d", t.UnixMilli())
}

// PublicPath returns the canonical serving path for a site's document.
func PublicPath(userID, siteID string) string {
	return fmt.Sprintf("/published/%s/%s/index.html", userID, siteID)
}
