package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type PostulantHandler struct {
	DB *gorm.DB
}

func NewPostulantHandler(db *gorm.DB) *PostulantHandler {
	return &PostulantHandler{DB: db}
}

type CreatePostulantReq struct {
	Status   string   `json:"status"`
	SeekerID uint     `json:"seeker_id"`
	Price    *float64 `json:"price"`
	TaskID   uint     `json:"task_id"`
}

// UpdatePostulantReq is decoded strictly; unknown field names are a 400, not
// a silent write to whatever attribute happens to match.
type UpdatePostulantReq struct {
	Status   *string  `json:"status"`
	Price    *float64 `json:"price"`
	SeekerID *uint    `json:"seeker_id"`
	TaskID   *uint    `json:"task_id"`
}

func (h *PostulantHandler) List(c *fiber.Ctx) error {
	var postulants []models.Postulant
	if err := h.DB.Preload("Seeker.User").Find(&postulants).Error; err != nil {
		return serverError(c, "Could not fetch postulants.")
	}
	return c.JSON(postulants)
}

func (h *PostulantHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid postulant ID.")
	}

	var postulant models.Postulant
	if err := h.DB.Preload("Seeker.User").First(&postulant, id).Error; err != nil {
		return notFound(c, "Postulant not found")
	}
	return c.JSON(postulant)
}

func (h *PostulantHandler) Create(c *fiber.Ctx) error {
	var req CreatePostulantReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Status == "" || req.SeekerID == 0 || req.Price == nil {
		return badRequest(c, "Missing fields.")
	}

	// seeker_id carries the owning user's id, consistent with tasks and
	// ratings.
	var seeker models.TaskSeeker
	if err := h.DB.Where("user_id = ?", req.SeekerID).First(&seeker).Error; err != nil {
		return notFound(c, "Task seeker with given user ID not found.")
	}

	var task models.Task
	if err := h.DB.First(&task, req.TaskID).Error; err != nil {
		return notFound(c, "Task ID not found.")
	}

	postulant := models.Postulant{
		Status:   req.Status,
		SeekerID: seeker.ID,
		Price:    *req.Price,
		TaskID:   task.ID,
	}
	if err := h.DB.Create(&postulant).Error; err != nil {
		return serverError(c, "Could not create postulant.")
	}

	return c.JSON(fiber.Map{"message": "Postulant created"})
}

func (h *PostulantHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid postulant ID.")
	}

	var postulant models.Postulant
	if err := h.DB.First(&postulant, id).Error; err != nil {
		return notFound(c, "Postulant not found")
	}

	var req UpdatePostulantReq
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c, "Unknown or invalid field in request body.")
	}
	if req.Status == nil && req.Price == nil && req.SeekerID == nil && req.TaskID == nil {
		return badRequest(c, "No data provided")
	}

	if req.SeekerID != nil {
		var seeker models.TaskSeeker
		if err := h.DB.Where("user_id = ?", *req.SeekerID).First(&seeker).Error; err != nil {
			return notFound(c, "Task seeker with given user ID not found.")
		}
		postulant.SeekerID = seeker.ID
	}
	if req.TaskID != nil {
		var task models.Task
		if err := h.DB.First(&task, *req.TaskID).Error; err != nil {
			return notFound(c, "Task ID not found.")
		}
		postulant.TaskID = task.ID
	}
	if req.Status != nil {
		postulant.Status = *req.Status
	}
	if req.Price != nil {
		postulant.Price = *req.Price
	}

	if err := h.DB.Save(&postulant).Error; err != nil {
		return serverError(c, "Could not update postulant.")
	}

	return c.JSON(fiber.Map{"message": "Postulant successfully updated"})
}

func (h *PostulantHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid postulant ID.")
	}

	var postulant models.Postulant
	if err := h.DB.First(&postulant, id).Error; err != nil {
		return notFound(c, "Postulant not found.")
	}

	if err := h.DB.Delete(&postulant).Error; err != nil {
		return serverError(c, "Could not delete postulant.")
	}

	return c.JSON(fiber.Map{"message": "Postulant deleted successfully."})
}
