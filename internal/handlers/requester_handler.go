package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type RequesterHandler struct {
	DB *gorm.DB
}

func NewRequesterHandler(db *gorm.DB) *RequesterHandler {
	return &RequesterHandler{DB: db}
}

type AddRoleReq struct {
	UserID uint `json:"user_id"`
}

type UpdateRequesterReq struct {
	OverallRating       *float64 `json:"overall_rating"`
	TotalRequestedTasks *int     `json:"total_requested_tasks"`
	TotalReviews        *int     `json:"total_reviews"`
	AverageBudget       *float64 `json:"average_budget"`
}

func (h *RequesterHandler) List(c *fiber.Ctx) error {
	var requesters []models.Requester
	if err := h.DB.Preload("User").Find(&requesters).Error; err != nil {
		return serverError(c, "Could not fetch requesters.")
	}
	return c.JSON(requesters)
}

func (h *RequesterHandler) Add(c *fiber.Ctx) error {
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

	if user.Role == models.RoleRequester || user.Role == models.RoleBoth {
		return badRequest(c, "User already has requester role.")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Requester{UserID: user.ID}).Error; err != nil {
			return err
		}
		hasSeeker, err := userHasSeeker(tx, user.ID)
		if err != nil {
			return err
		}
		user.Role = models.RoleFor(true, hasSeeker)
		return tx.Save(&user).Error
	})
	if err != nil {
		return serverError(c, "Could not add requester role.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Requester role successfully added to user."})
}

func (h *RequesterHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid requester ID.")
	}

	var requester models.Requester
	if err := h.DB.Preload("User").First(&requester, id).Error; err != nil {
		return notFound(c, "Requester not found.")
	}
	return c.JSON(requester)
}

func (h *RequesterHandler) GetByUserID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID.")
	}

	var requester models.Requester
	if err := h.DB.Preload("User").Where("user_id = ?", id).First(&requester).Error; err != nil {
		return notFound(c, "Requester not found.")
	}
	return c.JSON(requester)
}

func (h *RequesterHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid requester ID.")
	}

	var requester models.Requester
	if err := h.DB.First(&requester, id).Error; err != nil {
		return notFound(c, "Requester not found.")
	}

	var req UpdateRequesterReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.OverallRating != nil {
		requester.OverallRating = *req.OverallRating
	}
	if req.TotalRequestedTasks != nil {
		requester.TotalRequestedTasks = *req.TotalRequestedTasks
	}
	if req.TotalReviews != nil {
		requester.TotalReviews = *req.TotalReviews
	}
	if req.AverageBudget != nil {
		requester.AverageBudget = *req.AverageBudget
	}

	if err := h.DB.Save(&requester).Error; err != nil {
		return serverError(c, "Could not update requester.")
	}

	return c.JSON(fiber.Map{"message": "Requester info edited successfully."})
}

func (h *RequesterHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid requester ID.")
	}

	var requester models.Requester
	if err := h.DB.First(&requester, id).Error; err != nil {
		return notFound(c, "Requester not found.")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&requester).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, requester.UserID).Error; err != nil {
			// Owning user already gone; nothing to downgrade.
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		hasSeeker, err := userHasSeeker(tx, user.ID)
		if err != nil {
			return err
		}
		user.Role = models.RoleFor(false, hasSeeker)
		return tx.Save(&user).Error
	})
	if err != nil {
		return serverError(c, "Could not remove requester role.")
	}

	return c.JSON(fiber.Map{"message": "Removed requester role successfully."})
}

func userHasSeeker(tx *gorm.DB, userID uint) (bool, error) {
	var n int64
	if err := tx.Model(&models.TaskSeeker{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func userHasRequester(tx *gorm.DB, userID uint) (bool, error) {
	var n int64
	if err := tx.Model(&models.Requester{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
