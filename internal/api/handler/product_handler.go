package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/ports"
)

// ProductHandler handles catalog endpoints. Reads are public; writes go
// through the admin role check in the service.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"    validate:"required"`
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ByCategory handles GET /api/products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path     string  true  "Category name"
// @Success      200       {array}  domain.Product
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.service.ListProductsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /api/products/search?keyword=.
//
// @Summary      Search products by name
// @Tags         products
// @Produce      json
// @Param        keyword  query    string  true  "Substring matched against product names"
// @Success      200      {array}  domain.Product
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.SearchProducts(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.CreateProduct(c.Request().Context(), currentPrincipal(c), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/:id (admin only).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), currentPrincipal(c), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
}
