package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/multitool_api/internal/service"
	"github.com/GTDGit/multitool_api/internal/utils"
)

// ProductHandler handles product-related HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
	exposeErrors   bool
}

// NewProductHandler constructs a ProductHandler. When exposeErrors is set,
// failure responses carry the underlying error text.
func NewProductHandler(productService *service.ProductService, exposeErrors bool) *ProductHandler {
	return &ProductHandler{productService: productService, exposeErrors: exposeErrors}
}

// SearchProducts returns one page of products matching the query-string filters.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	filter, page := service.ParseSearchQuery(c.Request.URL.Query())

	result, err := h.productService.Search(c.Request.Context(), filter, page)
	if err != nil {
		logError(c, err, "product search failed")
		h.fail(c, "Failed to search products", err)
		return
	}

	utils.Success(c, http.StatusOK, "Products retrieved successfully", result)
}

// GetCategories returns product counts per category.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	result, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		logError(c, err, "category listing failed")
		h.fail(c, "Failed to fetch categories", err)
		return
	}

	utils.Success(c, http.StatusOK, "Categories retrieved successfully", result)
}

func (h *ProductHandler) fail(c *gin.Context, message string, err error) {
	if h.exposeErrors {
		utils.ErrorWithDetail(c, http.StatusInternalServerError, message, err)
		return
	}
	utils.Error(c, http.StatusInternalServerError, message)
}
