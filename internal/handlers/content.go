// internal/handlers/content.go
package handlers

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

// ContentStore is the persistence a ContentHandler needs. Every content
// service satisfies it.
type ContentStore[T any] interface {
	Name() string
	List(ctx context.Context, scopes ...services.Scope) ([]T, error)
	ListPage(ctx context.Context, params utils.PaginationParams, scopes ...services.Scope) ([]T, int64, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, input services.Input[T]) (*T, error)
	Update(ctx context.Context, id uint, input services.Input[T]) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// FilterFunc turns query parameters into list scopes.
type FilterFunc func(c *gin.Context) []services.Scope

// ContentHandler serves the list/get/create/update/delete routes of one
// entity. I is the request body type; PI is *I.
type ContentHandler[T any, I any, PI interface {
	*I
	services.Input[T]
}] struct {
	store   ContentStore[T]
	filters FilterFunc
}

func NewContentHandler[T any, I any, PI interface {
	*I
	services.Input[T]
}](store ContentStore[T], filters FilterFunc) *ContentHandler[T, I, PI] {
	return &ContentHandler[T, I, PI]{store: store, filters: filters}
}

// GET /api/{entities}
func (h *ContentHandler[T, I, PI]) List(c *gin.Context) {
	var scopes []services.Scope
	if h.filters != nil {
		scopes = h.filters(c)
	}

	params, paged := utils.GetPaginationParams(c)
	if !paged {
		rows, err := h.store.List(c.Request.Context(), scopes...)
		if err != nil {
			respondError(c, err, h.store.Name())
			return
		}
		utils.SuccessResponse(c, rows)
		return
	}

	rows, total, err := h.store.ListPage(c.Request.Context(), params, scopes...)
	if err != nil {
		respondError(c, err, h.store.Name())
		return
	}
	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(total, params))
	utils.SuccessResponse(c, rows)
}

// GET /api/{entities}/:id
func (h *ContentHandler[T, I, PI]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.store.Name())
		return
	}
	utils.SuccessResponse(c, row)
}

// POST /api/{entities}
func (h *ContentHandler[T, I, PI]) Create(c *gin.Context) {
	input := PI(new(I))
	if !bindJSON(c, input) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(input)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	row, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, h.store.Name())
		return
	}
	utils.CreatedResponse(c, row)
}

// PATCH /api/{entities}/:id
func (h *ContentHandler[T, I, PI]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	input := PI(new(I))
	if !bindPatchJSON(c, input) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidatePartial(input)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	row, err := h.store.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, h.store.Name())
		return
	}
	utils.SuccessResponse(c, row)
}

// DELETE /api/{entities}/:id
func (h *ContentHandler[T, I, PI]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, h.store.Name())
		return
	}
	utils.NoContentResponse(c)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyInvalidID))
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.BadRequestResponse(c, utils.BindErrorMessage(err))
		return false
	}
	return true
}

// bindPatchJSON accepts an empty body as an empty change set.
func bindPatchJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, utils.BindErrorMessage(err))
		return false
	}
	return true
}

// respondError maps service errors onto status codes. Anything unexpected
// is logged and reported as a generic 500.
func respondError(c *gin.Context, err error, resource string) {
	lang := utils.GetLangFromContext(c)

	var inputErr *services.InputError
	switch {
	case errors.As(err, &inputErr):
		utils.BadRequestResponse(c, inputErr.Message)
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, "")
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyConflict, resource))
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"resource": resource,
		}).Error("Request failed")
		utils.InternalErrorResponse(c)
	}
}
