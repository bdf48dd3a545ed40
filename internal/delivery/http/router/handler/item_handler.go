package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"
)

// ItemHandler holds dependencies for listing-related handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListItems handles the public item catalogue listing.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "items retrieved")
}

// GetItem handles the public single-item read.
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid item id")
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "item retrieved")
}

// CreateItem handles listing creation. The request is a multipart form so
// the client can attach one media file alongside the item fields; the
// seller identity comes from the session token, never from the form.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	name := c.FormValue("name")
	if name == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid price")
	}

	input := &usecase.CreateItemInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Status:      c.FormValue("status"),
		Condition:   c.FormValue("condition"),
	}

	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "invalid category id")
		}
		input.CategoryID = categoryID
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "unreadable upload")
		}
		defer src.Close()

		input.Upload = &usecase.MediaUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get(echo.HeaderContentType),
			AltText:     c.FormValue("alt_text"),
			Content:     src,
		}
	}

	item, err := h.uc.CreateItem(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "item created")
}

// UpdateItem handles a partial update on a listing owned by the caller.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid item id")
	}

	var input *usecase.UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "invalid item input")
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), userID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "item updated")
}

// DeleteItem handles listing removal by its owner.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	userID, role, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid item id")
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, role, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "item deleted")
}
