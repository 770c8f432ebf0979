package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/ports"
)

// WishlistHandler handles the per-user wishlist endpoints. Every route
// requires an authenticated principal, enforced by the service guards.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type wishlistStatusResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

// Add handles POST /api/wishlist/:productId.
//
// @Summary      Add a product to the caller's wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      201        {object}  domain.WishlistItem
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/wishlist/{productId} [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	item, err := h.service.AddToWishlist(c.Request().Context(), currentPrincipal(c), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Remove handles DELETE /api/wishlist/:productId.
//
// @Summary      Remove a product from the caller's wishlist
// @Tags         wishlist
// @Security     BearerAuth
// @Param        productId  path  string  true  "Product id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.service.RemoveFromWishlist(c.Request().Context(), currentPrincipal(c), c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/wishlist.
//
// @Summary      List the caller's wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.WishlistItem
// @Failure      401  {object}  errorResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	items, err := h.service.MyWishlist(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Check handles GET /api/wishlist/check/:productId.
//
// @Summary      Check whether a product is in the caller's wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  wishlistStatusResponse
// @Failure      401        {object}  errorResponse
// @Router       /api/wishlist/check/{productId} [get]
func (h *WishlistHandler) Check(c echo.Context) error {
	in, err := h.service.InWishlist(c.Request().Context(), currentPrincipal(c), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlistStatusResponse{InWishlist: in})
}
