package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beyond-platform/content-api/internal/api/metrics"
	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// ContentHandler serves all three catalog namespaces; the :kind route
// parameter selects videos, podcasts, or summits.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

var kindParams = map[string]domain.Kind{
	"videos":   domain.KindVideo,
	"podcasts": domain.KindPodcast,
	"summits":  domain.KindSummit,
}

func kindParam(c echo.Context) (domain.Kind, error) {
	kind, ok := kindParams[c.Param("kind")]
	if !ok {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown content kind")
	}
	return kind, nil
}

// List returns the catalog for one kind, newest first, decorated with like
// counts and the viewer's own liked flag.
//
// @Summary      List content items
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Content kind"  Enums(videos, podcasts, summits)
// @Success      200   {array}   ports.ContentItemView
// @Failure      404   {object}  map[string]string
// @Router       /v1/content/{kind} [get]
func (h *ContentHandler) List(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	viewerID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), kind, viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Create adds a catalog entry pointing at externally hosted media.
//
// @Summary      Create a content item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string             true  "Content kind"  Enums(videos, podcasts, summits)
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.ContentItem
// @Failure      400   {object}  map[string]string
// @Router       /v1/content/{kind} [post]
func (h *ContentHandler) Create(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateItemInput{
		Kind:        kind,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(kind), "create").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update rewrites an item's title and description. The URL is immutable;
// replacing the media means replacing the item.
//
// @Summary      Update a content item
// @Tags         content
// @Accept       json
// @Security     BearerAuth
// @Param        kind  path  string             true  "Content kind"  Enums(videos, podcasts, summits)
// @Param        id    path  int                true  "Item id"
// @Param        body  body  updateItemRequest  true  "New item details"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/content/{kind}/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Update(c.Request().Context(), ports.UpdateItemInput{
		Kind:        kind,
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(kind), "update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an item and its likes. Deleting a missing id succeeds
// quietly.
//
// @Summary      Delete a content item
// @Tags         content
// @Security     BearerAuth
// @Param        kind  path  string  true  "Content kind"  Enums(videos, podcasts, summits)
// @Param        id    path  int     true  "Item id"
// @Success      204
// @Router       /v1/content/{kind}/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), kind, id); err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(kind), "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Like records the viewer's like on an item. Liking twice is a no-op; the
// response carries the resulting count either way.
//
// @Summary      Like a content item
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Content kind"  Enums(videos, podcasts, summits)
// @Param        id    path      int     true  "Item id"
// @Success      200   {object}  likeResponse
// @Router       /v1/content/{kind}/{id}/like [post]
func (h *ContentHandler) Like(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	viewerID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.service.Like(ctx, kind, viewerID, id); err != nil {
		return err
	}

	count, err := h.service.LikeCount(ctx, kind, id)
	if err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues(string(kind), "like").Inc()
	return c.JSON(http.StatusOK, likeResponse{Likes: count, Liked: true})
}

// Unlike removes the viewer's like. Removing an absent like is a no-op.
//
// @Summary      Unlike a content item
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Content kind"  Enums(videos, podcasts, summits)
// @Param        id    path      int     true  "Item id"
// @Success      200   {object}  likeResponse
// @Router       /v1/content/{kind}/{id}/like [delete]
func (h *ContentHandler) Unlike(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}
	viewerID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.service.Unlike(ctx, kind, viewerID, id); err != nil {
		return err
	}

	count, err := h.service.LikeCount(ctx, kind, id)
	if err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues(string(kind), "unlike").Inc()
	return c.JSON(http.StatusOK, likeResponse{Likes: count, Liked: false})
}
