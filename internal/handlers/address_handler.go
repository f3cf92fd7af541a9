package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

type AddressHandler struct {
	DB *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{DB: db}
}

type CreateAddressReq struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	UserID    *uint    `json:"user_id"`
}

// UpdateAddressReq enumerates the fields a caller may change. The body is
// decoded strictly, so unknown attribute names are rejected rather than
// silently applied or dropped.
type UpdateAddressReq struct {
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	UserID    *uint    `json:"user_id"`
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	var addresses []models.Address
	if err := h.DB.Find(&addresses).Error; err != nil {
		return serverError(c, "Could not fetch addresses.")
	}
	return c.JSON(addresses)
}

func (h *AddressHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid address ID.")
	}

	var address models.Address
	if err := h.DB.First(&address, id).Error; err != nil {
		return notFound(c, "Address not found")
	}
	return c.JSON(address)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var req CreateAddressReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Address == "" || req.Latitude == nil || req.Longitude == nil || req.UserID == nil {
		return badRequest(c, "Missing fields.")
	}

	var user models.User
	if err := h.DB.First(&user, *req.UserID).Error; err != nil {
		return notFound(c, "User not found.")
	}

	address := models.Address{
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		UserID:    &user.ID,
	}
	if err := h.DB.Create(&address).Error; err != nil {
		return serverError(c, "Could not save address.")
	}

	return c.JSON(fiber.Map{"message": "Address saved."})
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid address ID.")
	}

	var address models.Address
	if err := h.DB.First(&address, id).Error; err != nil {
		return notFound(c, "Address not found")
	}

	var req UpdateAddressReq
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c, "Unknown or invalid field in request body.")
	}
	if req.Address == nil && req.Latitude == nil && req.Longitude == nil && req.UserID == nil {
		return badRequest(c, "No data provided")
	}

	if req.Address != nil {
		if *req.Address == "" {
			return badRequest(c, "The address cannot be empty")
		}
		address.Address = *req.Address
	}
	if req.Latitude != nil {
		address.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		address.Longitude = *req.Longitude
	}
	if req.UserID != nil {
		var user models.User
		if err := h.DB.First(&user, *req.UserID).Error; err != nil {
			return notFound(c, "User not found.")
		}
		address.UserID = &user.ID
	}

	if err := h.DB.Save(&address).Error; err != nil {
		return serverError(c, "Could not update address.")
	}

	return c.JSON(fiber.Map{"message": "Address successfully updated"})
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid address ID.")
	}

	var address models.Address
	if err := h.DB.First(&address, id).Error; err != nil {
		return notFound(c, "address not found")
	}

	if err := h.DB.Delete(&address).Error; err != nil {
		return serverError(c, "Could not delete address.")
	}

	return c.JSON(fiber.Map{"message": "Address successfully deleted"})
}
