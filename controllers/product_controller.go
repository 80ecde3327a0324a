package controllers

import (
	"strings"

	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// ListProducts handles GET /v1/products with optional category and q filters
func (h *Controller) ListProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)
	filter := repository.ProductFilter{
		CategoryID: c.Query("category"),
		Query:      strings.TrimSpace(c.Query("q")),
		Page:       pageOf(pagination),
	}

	total, products, err := h.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	pagination.SetTotal(total)
	utils.SendPaginatedResponse(c, "Products retrieved successfully", products, pagination)
}

// SearchProducts handles GET /v1/products/search?q=
func (h *Controller) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.BadRequest(c, "Search query is required", nil)
		return
	}
	pagination := utils.NewPagination(c)

	total, products, err := h.Catalog.Search(c.Request.Context(), query, pageOf(pagination))
	if err != nil {
		respondError(c, err, "Search failed")
		return
	}
	pagination.SetTotal(total)
	utils.SendPaginatedResponse(c, "Search results", products, pagination)
}

// GetProduct handles GET /v1/products/:id
func (h *Controller) GetProduct(c *gin.Context) {
	product, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	utils.Success(c, "Product retrieved successfully", product)
}

// CreateProduct handles POST /v1/admin/products
func (h *Controller) CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product, err := h.Catalog.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	utils.LogInfo("Product %s created", product.ID)
	utils.Created(c, "Product created successfully", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *Controller) UpdateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	utils.LogInfo("Product %s updated", product.ID)
	utils.Success(c, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *Controller) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	utils.LogInfo("Product %s deleted", id)
	utils.Success(c, "Product deleted successfully", nil)
}

// AddProductVariant handles POST /v1/admin/products/:id/variants
func (h *Controller) AddProductVariant(c *gin.Context) {
	var in services.VariantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	variant, err := h.Catalog.AddVariant(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to add variant")
		return
	}
	utils.Created(c, "Variant added successfully", variant)
}

// DeleteProductVariant handles DELETE /v1/admin/products/:id/variants/:variantId
func (h *Controller) DeleteProductVariant(c *gin.Context) {
	if err := h.Catalog.DeleteVariant(c.Request.Context(), c.Param("id"), c.Param("variantId")); err != nil {
		respondError(c, err, "Failed to delete variant")
		return
	}
	utils.Success(c, "Variant deleted successfully", nil)
}

// ReindexProducts handles POST /v1/admin/products/reindex
func (h *Controller) ReindexProducts(c *gin.Context) {
	n, err := h.Catalog.ReindexAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to reindex products")
		return
	}
	utils.LogInfo("Reindexed %d products", n)
	utils.Success(c, "Products reindexed", gin.H{"indexed": n})
}
