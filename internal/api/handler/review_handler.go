package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/ports"
)

// ReviewHandler handles product review endpoints.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Content   string `json:"content"`
}

// ByProduct handles GET /api/reviews/product/:productId.
//
// @Summary      List reviews for a product
// @Tags         reviews
// @Produce      json
// @Param        productId  path     string  true  "Product id"
// @Success      200        {array}  domain.Review
// @Router       /api/reviews/product/{productId} [get]
func (h *ReviewHandler) ByProduct(c echo.Context) error {
	reviews, err := h.service.ListReviewsByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Rating handles GET /api/reviews/product/:productId/rating.
//
// @Summary      Get the derived rating aggregate for a product
// @Tags         reviews
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  domain.RatingSummary
// @Router       /api/reviews/product/{productId}/rating [get]
func (h *ReviewHandler) Rating(c echo.Context) error {
	summary, err := h.service.ProductRating(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Create handles POST /api/reviews.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.CreateReview(c.Request().Context(), currentPrincipal(c), ports.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Delete handles DELETE /api/reviews/:id (owner only).
//
// @Summary      Delete an owned review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id  path  string  true  "Review id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReview(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
