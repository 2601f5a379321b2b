package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/dto"
	apierrors "github.com/yukikurage/studentorg/internal/errors"
	"github.com/yukikurage/studentorg/internal/middleware"
	"github.com/yukikurage/studentorg/internal/services"
	"github.com/yukikurage/studentorg/internal/utils"
)

// CRUDService is the service surface driven by CRUDHandler.
type CRUDService[M any, F any] interface {
	List(ctx context.Context, params services.ListParams) ([]M, int64, error)
	Get(ctx context.Context, id uint64) (*M, error)
	Create(ctx context.Context, input F) (*M, error)
	Update(ctx context.Context, id uint64, input F) (*M, error)
	Delete(ctx context.Context, id uint64) error
}

// Resource describes the screens of one entity. M is the model, F the form input.
type Resource[M any, F any] struct {
	Name    string // lower-case singular, used in messages
	Path    string // list URL, with trailing slash
	ListKey string
	Fields  []string
	Service CRUDService[M, F]
	ToDTO   func(M) interface{}
	ToInput func(M) F
	Label   func(M) string

	// Choices loads options for foreign-key fields; nil when there are none.
	Choices func(ctx context.Context) (map[string][]dto.Choice, error)

	// Ordering resolves the effective list ordering; nil when the list has a fixed order.
	Ordering func(key string) string
}

// CRUDHandler serves list, create, edit and delete screens for one Resource.
type CRUDHandler[M any, F any] struct {
	res      Resource[M, F]
	pageSize int
}

func NewCRUDHandler[M any, F any](res Resource[M, F], pageSize int) *CRUDHandler[M, F] {
	return &CRUDHandler[M, F]{
		res:      res,
		pageSize: pageSize,
	}
}

// Register mounts the resource routes on g.
func (h *CRUDHandler[M, F]) Register(g *gin.RouterGroup) {
	g.GET("/", h.List)
	g.GET("/add", h.AddForm)
	g.POST("/add", h.Create)

	item := g.Group("/:id", middleware.RequireEntityID())
	{
		item.GET("/edit", h.EditForm)
		item.POST("/edit", h.Update)
		item.GET("/delete", h.DeleteConfirm)
		item.POST("/delete", h.Delete)
	}
}

// List returns one page of rows matching q
func (h *CRUDHandler[M, F]) List(c *gin.Context) {
	params := services.ListParams{
		Query:      c.Query("q"),
		Ordering:   c.Query("ordering"),
		Pagination: utils.GetPaginationParams(c, h.pageSize),
	}

	items, total, err := h.res.Service.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = h.res.ToDTO(item)
	}

	resp := gin.H{
		h.res.ListKey: out,
		"pagination":  utils.NewPaginationResponse(params.Pagination, total),
		"q":           params.Query,
		"messages":    popFlashes(c),
	}
	if h.res.Ordering != nil {
		resp["ordering"] = h.res.Ordering(params.Ordering)
	}

	c.JSON(http.StatusOK, resp)
}

// AddForm returns an empty form
func (h *CRUDHandler[M, F]) AddForm(c *gin.Context) {
	var initial F
	form, err := h.form(c, h.res.Path+"add", initial)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

// Create validates the submitted form and redirects to the list on success
func (h *CRUDHandler[M, F]) Create(c *gin.Context) {
	var input F
	if err := c.ShouldBind(&input); err != nil {
		apierrors.BadRequest(c, "Invalid form submission")
		return
	}

	item, err := h.res.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("The %s %q was added successfully.", h.res.Name, h.res.Label(*item)))
	c.Redirect(http.StatusFound, h.res.Path)
}

// EditForm returns the form pre-filled with the current values
func (h *CRUDHandler[M, F]) EditForm(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	item, err := h.res.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	form, err := h.form(c, fmt.Sprintf("%s%d/edit", h.res.Path, id), h.res.ToInput(*item))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":   form,
		"object": h.res.ToDTO(*item),
	})
}

// Update validates the submitted form and redirects to the list on success
func (h *CRUDHandler[M, F]) Update(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	var input F
	if err := c.ShouldBind(&input); err != nil {
		apierrors.BadRequest(c, "Invalid form submission")
		return
	}

	item, err := h.res.Service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("The %s %q was changed successfully.", h.res.Name, h.res.Label(*item)))
	c.Redirect(http.StatusFound, h.res.Path)
}

// DeleteConfirm returns the object about to be deleted
func (h *CRUDHandler[M, F]) DeleteConfirm(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	item, err := h.res.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"confirm": dto.DeleteConfirmDTO{
			Action:  fmt.Sprintf("%s%d/delete", h.res.Path, id),
			Object:  h.res.ToDTO(*item),
			Message: fmt.Sprintf("Are you sure you want to delete %q?", h.res.Label(*item)),
		},
	})
}

// Delete removes the object and redirects to the list
func (h *CRUDHandler[M, F]) Delete(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)
	ctx := c.Request.Context()

	item, err := h.res.Service.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.res.Service.Delete(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("The %s %q was deleted successfully.", h.res.Name, h.res.Label(*item)))
	c.Redirect(http.StatusFound, h.res.Path)
}

func (h *CRUDHandler[M, F]) form(c *gin.Context, action string, initial F) (dto.FormDTO, error) {
	form := dto.FormDTO{
		Action:  action,
		Fields:  h.res.Fields,
		Initial: initial,
	}
	if h.res.Choices != nil {
		choices, err := h.res.Choices(c.Request.Context())
		if err != nil {
			return form, err
		}
		form.Choices = choices
	}
	return form, nil
}

// fail maps service errors onto API error responses.
func (h *CRUDHandler[M, F]) fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.BadRequestWithDetails(c, "Please correct the errors below.", verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, fmt.Sprintf("No %s found matching the query", h.res.Name))
	case errors.Is(err, services.ErrInUse):
		apierrors.Conflict(c, fmt.Sprintf("This %s cannot be deleted because other records still reference it.", h.res.Name))
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "resource", h.res.Name, "error", err)
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
