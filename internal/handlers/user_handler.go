package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
	"github.com/taskmates/taskmates-be/internal/utils"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

type CreateUserReq struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

// UpdateUserReq uses pointers so that a field absent from the payload is
// skipped while a present zero value is still applied. Role is deliberately
// not here; it only changes through the requester/task-seeker endpoints.
type UpdateUserReq struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	FullName       *string `json:"full_name"`
	Description    *string `json:"description"`
	ProfilePicture *string `json:"profile_picture"`
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Preload("Requester").Preload("Seeker").Find(&users).Error; err != nil {
		return serverError(c, "Could not fetch users.")
	}
	return c.JSON(users)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.FullName == "" {
		return badRequest(c, "Missing fields.")
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return badRequest(c, "Email already used.")
	} else if err != gorm.ErrRecordNotFound {
		return serverError(c, "Could not create user.")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return serverError(c, "Could not create user.")
	}

	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashed,
		FullName:    req.FullName,
		Description: req.Description,
		Role:        models.RoleNone,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return serverError(c, "Could not create user.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully."})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID.")
	}

	var user models.User
	if err := h.DB.Preload("Requester").Preload("Seeker").First(&user, id).Error; err != nil {
		return notFound(c, "User not found.")
	}
	return c.JSON(user)
}

func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	var user models.User
	if err := h.DB.Preload("Requester").Preload("Seeker").
		Where("username = ?", c.Params("username")).
		First(&user).Error; err != nil {
		return notFound(c, "User not found.")
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID.")
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return notFound(c, "User not found.")
	}

	var req UpdateUserReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return serverError(c, "Could not update user.")
		}
		user.Password = hashed
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Description != nil {
		user.Description = *req.Description
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return serverError(c, "Could not update user.")
	}

	return c.JSON(fiber.Map{"message": "User edited successfully."})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID.")
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return notFound(c, "User not found.")
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		return serverError(c, "Could not delete user.")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully."})
}
