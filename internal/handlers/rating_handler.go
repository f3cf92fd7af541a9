package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type RatingHandler struct {
	DB *gorm.DB
}

func NewRatingHandler(db *gorm.DB) *RatingHandler {
	return &RatingHandler{DB: db}
}

type CreateRatingReq struct {
	Stars       *int  `json:"stars"`
	SeekerID    *uint `json:"seeker_id"`
	RequesterID *uint `json:"requester_id"`
	TaskID      uint  `json:"task_id"`
}

type UpdateRatingReq struct {
	Stars *int `json:"stars"`
}

func (h *RatingHandler) List(c *fiber.Ctx) error {
	var ratings []models.Rating
	if err := h.DB.Find(&ratings).Error; err != nil {
		return serverError(c, "Could not fetch ratings.")
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) Create(c *fiber.Ctx) error {
	var req CreateRatingReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	// A rating targets the seeker or the requester of a task, never both
	// and never neither.
	if req.Stars == nil || req.TaskID == 0 ||
		(req.SeekerID == nil && req.RequesterID == nil) ||
		(req.SeekerID != nil && req.RequesterID != nil) {
		return badRequest(c, "Invalid fields")
	}

	if *req.Stars < 1 || *req.Stars > 5 {
		return badRequest(c, "Stars must be between 1 and 5")
	}

	rating := models.Rating{Stars: *req.Stars}

	if req.SeekerID != nil {
		var seeker models.TaskSeeker
		if err := h.DB.Where("user_id = ?", *req.SeekerID).First(&seeker).Error; err != nil {
			return badRequest(c, "Seeker ID does not exist")
		}
		rating.SeekerID = &seeker.ID
	}
	if req.RequesterID != nil {
		var requester models.Requester
		if err := h.DB.Where("user_id = ?", *req.RequesterID).First(&requester).Error; err != nil {
			return badRequest(c, "Requester ID does not exist")
		}
		rating.RequesterID = &requester.ID
	}

	var task models.Task
	if err := h.DB.First(&task, req.TaskID).Error; err != nil {
		return badRequest(c, "Task ID does not exist")
	}
	rating.TaskID = task.ID

	if err := h.DB.Create(&rating).Error; err != nil {
		return serverError(c, "Could not create rating.")
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}

func (h *RatingHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid rating ID.")
	}

	var rating models.Rating
	if err := h.DB.First(&rating, id).Error; err != nil {
		return notFound(c, "Rating not found")
	}
	return c.JSON(rating)
}

func (h *RatingHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid rating ID.")
	}

	var rating models.Rating
	if err := h.DB.First(&rating, id).Error; err != nil {
		return notFound(c, "Rating not found")
	}

	var req UpdateRatingReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Stars != nil {
		if *req.Stars < 1 || *req.Stars > 5 {
			return badRequest(c, "Stars must be between 1 and 5")
		}
		rating.Stars = *req.Stars
	}

	if err := h.DB.Save(&rating).Error; err != nil {
		return serverError(c, "Could not update rating.")
	}

	return c.JSON(fiber.Map{"message": "Rating updated successfully"})
}

func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid rating ID.")
	}

	var rating models.Rating
	if err := h.DB.First(&rating, id).Error; err != nil {
		return notFound(c, "Rating not found")
	}

	if err := h.DB.Delete(&rating).Error; err != nil {
		return serverError(c, "Could not delete rating.")
	}

	return c.JSON(fiber.Map{"message": "Rating deleted successfully"})
}
