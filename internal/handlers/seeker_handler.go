package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type SeekerHandler struct {
	DB *gorm.DB
}

func NewSeekerHandler(db *gorm.DB) *SeekerHandler {
	return &SeekerHandler{DB: db}
}

type UpdateSeekerReq struct {
	OverallRating       *float64 `json:"overall_rating"`
	TotalRequestedTasks *int     `json:"total_requested_tasks"`
	TotalReviews        *int     `json:"total_reviews"`
}

func (h *SeekerHandler) List(c *fiber.Ctx) error {
	var seekers []models.TaskSeeker
	if err := h.DB.Preload("User").Find(&seekers).Error; err != nil {
		return serverError(c, "Could not fetch task seekers.")
	}
	return c.JSON(seekers)
}

func (h *SeekerHandler) Add(c *fiber.Ctx) error {
	var req AddRoleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}
	if req.UserID == 0 {
		return badRequest(c, "Missing user id.")
	}

	var user models.User
	if err := h.DB.First(&user, req.UserID).Error; err != nil {
		return notFound(c, "User not found.")
	}

	if user.Role == models.RoleTaskSeeker || user.Role == models.RoleBoth {
		return badRequest(c, "User already has task seeker role.")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.TaskSeeker{UserID: user.ID}).Error; err != nil {
			return err
		}
		hasRequester, err := userHasRequester(tx, user.ID)
		if err != nil {
			return err
		}
		user.Role = models.RoleFor(hasRequester, true)
		return tx.Save(&user).Error
	})
	if err != nil {
		return serverError(c, "Could not add task seeker role.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Task seeker role successfully added to user."})
}

func (h *SeekerHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid seeker ID.")
	}

	var seeker models.TaskSeeker
	if err := h.DB.Preload("User").First(&seeker, id).Error; err != nil {
		return notFound(c, "Seeker not found.")
	}
	return c.JSON(seeker)
}

func (h *SeekerHandler) GetByUserID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID.")
	}

	var seeker models.TaskSeeker
	if err := h.DB.Preload("User").Where("user_id = ?", id).First(&seeker).Error; err != nil {
		return notFound(c, "Seeker not found.")
	}
	return c.JSON(seeker)
}

func (h *SeekerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid seeker ID.")
	}

	var seeker models.TaskSeeker
	if err := h.DB.First(&seeker, id).Error; err != nil {
		return notFound(c, "Seeker not found.")
	}

	var req UpdateSeekerReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.OverallRating != nil {
		seeker.OverallRating = *req.OverallRating
	}
	if req.TotalRequestedTasks != nil {
		seeker.TotalRequestedTasks = *req.TotalRequestedTasks
	}
	if req.TotalReviews != nil {
		seeker.TotalReviews = *req.TotalReviews
	}

	if err := h.DB.Save(&seeker).Error; err != nil {
		return serverError(c, "Could not update seeker.")
	}

	return c.JSON(fiber.Map{"message": "Seeker info edited successfully."})
}

func (h *SeekerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid seeker ID.")
	}

	var seeker models.TaskSeeker
	if err := h.DB.First(&seeker, id).Error; err != nil {
		return notFound(c, "Seeker not found.")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&seeker).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, seeker.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		hasRequester, err := userHasRequester(tx, user.ID)
		if err != nil {
			return err
		}
		user.Role = models.RoleFor(hasRequester, false)
		return tx.Save(&user).Error
	})
	if err != nil {
		return serverError(c, "Could not remove seeker role.")
	}

	return c.JSON(fiber.Map{"message": "Removed seeker role successfully."})
}
