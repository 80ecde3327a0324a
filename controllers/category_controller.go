package controllers

import (
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /v1/categories
func (h *Controller) ListCategories(c *gin.Context) {
	categories, err := h.Catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch categories")
		return
	}
	utils.Success(c, "Categories retrieved successfully", categories)
}

func (h *Controller) CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	category, err := h.Catalog.CreateCategory(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	utils.LogInfo("Category %s created", category.Slug)
	utils.Created(c, "Category created successfully", category)
}

func (h *Controller) UpdateCategory(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	category, err := h.Catalog.UpdateCategory(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	utils.Success(c, "Category updated successfully", category)
}

func (h *Controller) DeleteCategory(c *gin.Context) {
	if err := h.Catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	utils.Success(c, "Category deleted successfully", nil)
}
