package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"residence-facilities/internal/domain"
)

type handlers struct {
	deps    Deps
	metrics *metrics
	logger  *zap.Logger
}

// redirectNavigator answers the request with a redirect to the target path.
type redirectNavigator struct {
	c *gin.Context
}

func (n redirectNavigator) NavigateTo(path string) {
	n.c.Redirect(http.StatusSeeOther, path)
}

// discardNavigator is used where buttons are serialized, not pressed.
type discardNavigator struct{}

func (discardNavigator) NavigateTo(string) {}

// selectionParam reads the category query; absent or empty means "all".
func selectionParam(c *gin.Context) string {
	if v := c.Query("category"); v != "" {
		return v
	}
	return domain.CategoryAll
}

func (h *handlers) listCategories(c *gin.Context) {
	ctx := c.Request.Context()
	cats, err := h.deps.CategorySvc.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	counts, err := h.deps.FacilitySvc.Counts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	results := toCategoryResponses(cats, counts)
	c.JSON(http.StatusOK, listResponse[categoryResponse]{Count: len(results), Results: results})
}

func (h *handlers) getCategory(c *gin.Context) {
	ctx := c.Request.Context()
	cat, err := h.deps.CategorySvc.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	counts, err := h.deps.FacilitySvc.Counts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryResponse{ID: cat.ID, Label: cat.Label, Count: counts[cat.ID]})
}

func (h *handlers) listFacilities(c *gin.Context) {
	selection := selectionParam(c)
	items, err := h.deps.FacilitySvc.List(c.Request.Context(), selection)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.observeFilter(selection)
	if items == nil {
		items = []domain.Facility{}
	}
	c.JSON(http.StatusOK, facilityListResponse{Category: selection, Count: len(items), Results: items})
}

func (h *handlers) page(c *gin.Context) {
	selection := selectionParam(c)
	page, err := h.deps.FacilitySvc.Page(c.Request.Context(), selection, discardNavigator{})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.observeFilter(selection)
	c.JSON(http.StatusOK, page)
}

func (h *handlers) activateCTA(c *gin.Context) {
	cta, err := h.deps.FacilitySvc.Activate(c.Request.Context(), c.Param("id"), redirectNavigator{c: c})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.observeCTA(cta.ID)
	h.logger.Info("cta activated", zap.String("cta", cta.ID), zap.String("target", cta.Target))
}

func (h *handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{StatusCode: http.StatusNotFound, Message: err.Error()})
		return
	}
	h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorResponse{StatusCode: http.StatusInternalServerError, Message: "internal error"})
}
