package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

type CategoryReq struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.DB.Find(&categories).Error; err != nil {
		return serverError(c, "Could not fetch categories.")
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req CategoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required.")
	}

	category := models.Category{Name: req.Name}
	if err := h.DB.Create(&category).Error; err != nil {
		return serverError(c, "Could not create category.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Category created successfully"})
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid category ID.")
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		return notFound(c, "Category not found")
	}
	return c.JSON(fiber.Map{"category": category})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid category ID.")
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		return notFound(c, "Category not found")
	}

	var req CategoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}

	category.Name = req.Name
	if err := h.DB.Save(&category).Error; err != nil {
		return serverError(c, "Could not update category.")
	}

	return c.JSON(fiber.Map{"message": "Category updated successfully"})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid category ID.")
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		return notFound(c, "Category not found")
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		return serverError(c, "Could not delete category.")
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
