package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// SiteHandler exposes the authenticated site create/publish endpoints.
type SiteHandler struct {
	service ports.SiteService
}

func NewSiteHandler(service ports.SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

type createSiteRequest struct {
	Name string `json:"name" validate:"required"`
	HTML string `json:"html" validate:"required"`
}

type createSiteResponse struct {
	SiteID     string `json:"siteId"`
	PreviewURL string `json:"previewUrl"`
}

// Create handles POST /api/site/create.
//
// @Summary      Create a site from an HTML document
// @Tags         sites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSiteRequest  true  "Site name and HTML"
// @Success      201   {object}  createSiteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/site/create [post]
func (h *SiteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createSiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateSiteInput{
		UserID: userID,
		Name:   req.Name,
		HTML:   req.HTML,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create site"})
	}

	return c.JSON(http.StatusCreated, createSiteResponse{
		SiteID:     result.SiteID,
		PreviewURL: result.PreviewURL,
	})
}

type publishSiteRequest struct {
	SiteID string `json:"siteId" validate:"required"`
}

type publishSiteResponse struct {
	PublicURL string `json:"publicUrl"`
}

// Publish handles POST /api/site/publish.
//
// @Summary      Publish a created site
// @Tags         sites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishSiteRequest  true  "Site identifier"
// @Success      200   {object}  publishSiteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/site/publish [post]
func (h *SiteHandler) Publish(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req publishSiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	publicURL, err := h.service.Publish(c.Request().Context(), userID, req.SiteID)
	if err != nil {
		if err == domain.ErrSiteNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "site not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to publish site"})
	}

	return c.JSON(http.StatusOK, publishSiteResponse{PublicURL: publicURL})
}
