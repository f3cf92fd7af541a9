package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/taskmates/taskmates-be/internal/models"
)

const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	DB *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

type CreateTaskReq struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DeliveryLocation string   `json:"delivery_location"`
	DeliveryLat      *float64 `json:"delivery_lat"`
	DeliveryLgt      *float64 `json:"delivery_lgt"`
	PickupLocation   string   `json:"pickup_location"`
	PickupLat        *float64 `json:"pickup_lat"`
	PickupLgt        *float64 `json:"pickup_lgt"`
	DueDate          string   `json:"due_date"`
	RequesterID      uint     `json:"requester_id"`
	CategoryID       uint     `json:"category_id"`
	Budget           *float64 `json:"budget"`
}

type UpdateTaskReq struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	DeliveryLocation *string  `json:"delivery_location"`
	DeliveryLat      *float64 `json:"delivery_lat"`
	DeliveryLgt      *float64 `json:"delivery_lgt"`
	PickupLocation   *string  `json:"pickup_location"`
	PickupLat        *float64 `json:"pickup_lat"`
	PickupLgt        *float64 `json:"pickup_lgt"`
	DueDate          *string  `json:"due_date"`
	Status           *string  `json:"status"`
	CategoryID       *uint    `json:"category_id"`
	SeekerID         *uint    `json:"seeker_id"`
	Budget           *float64 `json:"budget"`
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	var tasks []models.Task
	if err := h.taskQuery().Find(&tasks).Error; err != nil {
		return serverError(c, "Could not fetch tasks.")
	}

	out := make([]fiber.Map, 0, len(tasks))
	for i := range tasks {
		out = append(out, serializeTask(&tasks[i]))
	}
	return c.JSON(out)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req CreateTaskReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.Title == "" || req.Description == "" || req.DueDate == "" ||
		req.RequesterID == 0 || req.CategoryID == 0 || req.Budget == nil ||
		req.DeliveryLocation == "" || req.DeliveryLat == nil || req.DeliveryLgt == nil ||
		req.PickupLocation == "" || req.PickupLat == nil || req.PickupLgt == nil {
		return badRequest(c, "Missing fields.")
	}

	// requester_id denotes the owning user's id, same as everywhere else in
	// the API.
	var requester models.Requester
	if err := h.DB.Where("user_id = ?", req.RequesterID).First(&requester).Error; err != nil {
		return notFound(c, "Requester with given user ID not found.")
	}

	var category models.Category
	if err := h.DB.First(&category, req.CategoryID).Error; err != nil {
		return notFound(c, "Category not found.")
	}

	dueDate, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		return badRequest(c, "Invalid due date format")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		delivery, err := findOrCreateAddress(tx, req.DeliveryLocation, *req.DeliveryLat, *req.DeliveryLgt)
		if err != nil {
			return err
		}
		pickup, err := findOrCreateAddress(tx, req.PickupLocation, *req.PickupLat, *req.PickupLgt)
		if err != nil {
			return err
		}

		task := models.Task{
			Title:              req.Title,
			Description:        req.Description,
			DeliveryLocationID: delivery.ID,
			PickupLocationID:   pickup.ID,
			DueDate:            datatypes.Date(dueDate),
			RequesterID:        requester.ID,
			CategoryID:         category.ID,
			Budget:             *req.Budget,
			Status:             models.TaskStatusPending,
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return serverError(c, "Could not create task.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Task posted successfully."})
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID.")
	}

	var task models.Task
	if err := h.taskQuery().First(&task, id).Error; err != nil {
		return notFound(c, "Task not found.")
	}
	return c.JSON(serializeTask(&task))
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID.")
	}

	var task models.Task
	if err := h.DB.First(&task, id).Error; err != nil {
		return notFound(c, "Task not found.")
	}

	var req UpdateTaskReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid body.")
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return badRequest(c, "Invalid due date format.")
		}
		task.DueDate = datatypes.Date(dueDate)
	}

	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			return badRequest(c, "Invalid status value.")
		}
		task.Status = status
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := h.DB.First(&category, *req.CategoryID).Error; err != nil {
			return notFound(c, "Category not found.")
		}
		task.CategoryID = category.ID
	}

	if req.SeekerID != nil {
		var seeker models.TaskSeeker
		if err := h.DB.Where("user_id = ?", *req.SeekerID).First(&seeker).Error; err != nil {
			return notFound(c, "Task seeker not found.")
		}
		task.SeekerID = &seeker.ID
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Budget != nil {
		task.Budget = *req.Budget
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		// Unlike create, new locations never reuse an existing row.
		if req.DeliveryLocation != nil {
			delivery := models.Address{
				Address:   *req.DeliveryLocation,
				Latitude:  floatOrZero(req.DeliveryLat),
				Longitude: floatOrZero(req.DeliveryLgt),
			}
			if err := tx.Create(&delivery).Error; err != nil {
				return err
			}
			task.DeliveryLocationID = delivery.ID
		}
		if req.PickupLocation != nil {
			pickup := models.Address{
				Address:   *req.PickupLocation,
				Latitude:  floatOrZero(req.PickupLat),
				Longitude: floatOrZero(req.PickupLgt),
			}
			if err := tx.Create(&pickup).Error; err != nil {
				return err
			}
			task.PickupLocationID = pickup.ID
		}
		return tx.Save(&task).Error
	})
	if err != nil {
		return serverError(c, "Could not update task.")
	}

	return c.JSON(fiber.Map{"message": "Task edited successfully."})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID.")
	}

	var task models.Task
	if err := h.DB.First(&task, id).Error; err != nil {
		return notFound(c, "Task not found.")
	}

	if err := h.DB.Delete(&task).Error; err != nil {
		return serverError(c, "Could not delete task.")
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully."})
}

func (h *TaskHandler) taskQuery() *gorm.DB {
	return h.DB.
		Preload("DeliveryLocation").
		Preload("PickupLocation").
		Preload("Requester.User").
		Preload("Seeker.User").
		Preload("Category").
		Preload("Ratings").
		Preload("Applicants")
}

// findOrCreateAddress reuses an address row with the exact same text, so
// repeated task locations do not pile up duplicate rows.
func findOrCreateAddress(tx *gorm.DB, text string, lat, lgt float64) (*models.Address, error) {
	var address models.Address
	err := tx.Where("address = ?", text).First(&address).Error
	if err == nil {
		return &address, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	address = models.Address{Address: text, Latitude: lat, Longitude: lgt}
	if err := tx.Create(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// serializeTask flattens the task with the resolved context the frontend
// reads: category name, raw location strings, the requester's user and the
// assigned seeker.
func serializeTask(t *models.Task) fiber.Map {
	ratings := t.Ratings
	if ratings == nil {
		ratings = []models.Rating{}
	}
	applicants := t.Applicants
	if applicants == nil {
		applicants = []models.Postulant{}
	}

	out := fiber.Map{
		"id":                   t.ID,
		"title":                t.Title,
		"description":          t.Description,
		"delivery_location_id": t.DeliveryLocationID,
		"pickup_location_id":   t.PickupLocationID,
		"due_date":             t.DueDate,
		"requester_id":         t.RequesterID,
		"seeker_id":            t.SeekerID,
		"category_id":          t.CategoryID,
		"budget":               t.Budget,
		"status":               t.Status,
		"creation_date":        t.CreationDate,
		"ratings":              ratings,
		"applicants":           applicants,
	}
	if t.Category != nil {
		out["category_name"] = t.Category.Name
	}
	if t.DeliveryLocation != nil {
		out["delivery_location"] = t.DeliveryLocation.Address
	}
	if t.PickupLocation != nil {
		out["pickup_location"] = t.PickupLocation.Address
	}
	if t.Requester != nil {
		out["requester_user"] = t.Requester.User
	}
	if t.Seeker != nil {
		out["seeker"] = t.Seeker
	}
	return out
}
