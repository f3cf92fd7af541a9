package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register wires every resource's routes onto the given router group.
func Register(api fiber.Router, db *gorm.DB) {
	taskH := NewTaskHandler(db)
	addressH := NewAddressHandler(db)
	categoryH := NewCategoryHandler(db)
	userH := NewUserHandler(db)
	requesterH := NewRequesterHandler(db)
	seekerH := NewSeekerHandler(db)
	ratingH := NewRatingHandler(db)
	postulantH := NewPostulantHandler(db)

	api.Get("/tasks", taskH.List)
	api.Post("/tasks", taskH.Create)
	api.Get("/tasks/:id", taskH.Get)
	api.Put("/tasks/:id", taskH.Update)
	api.Delete("/tasks/:id", taskH.Delete)

	api.Get("/addresses", addressH.List)
	api.Post("/addresses", addressH.Create)
	api.Get("/addresses/:id", addressH.Get)
	api.Put("/addresses/:id", addressH.Update)
	api.Delete("/addresses/:id", addressH.Delete)

	api.Get("/categories", categoryH.List)
	api.Post("/categories", categoryH.Create)
	api.Get("/categories/:id", categoryH.Get)
	api.Put("/categories/:id", categoryH.Update)
	api.Delete("/categories/:id", categoryH.Delete)

	api.Get("/users", userH.List)
	api.Post("/users", userH.Create)
	// The numeric constraint keeps lookups by id and by username apart.
	api.Get("/users/:id<int>", userH.Get)
	api.Get("/users/:username", userH.GetByUsername)
	api.Put("/users/:id", userH.Update)
	api.Delete("/users/:id", userH.Delete)

	api.Get("/requesters", requesterH.List)
	api.Post("/requesters", requesterH.Add)
	api.Get("/requesters/user_id/:id", requesterH.GetByUserID)
	api.Get("/requesters/:id", requesterH.Get)
	api.Put("/requesters/:id", requesterH.Update)
	api.Delete("/requesters/:id", requesterH.Delete)

	api.Get("/task-seekers", seekerH.List)
	api.Post("/task-seekers", seekerH.Add)
	api.Get("/task-seekers/user_id/:id", seekerH.GetByUserID)
	api.Get("/task-seekers/:id", seekerH.Get)
	api.Put("/task-seekers/:id", seekerH.Update)
	api.Delete("/task-seekers/:id", seekerH.Delete)

	api.Get("/ratings", ratingH.List)
	api.Post("/ratings", ratingH.Create)
	api.Get("/ratings/:id", ratingH.Get)
	api.Put("/ratings/:id", ratingH.Update)
	api.Delete("/ratings/:id", ratingH.Delete)

	api.Get("/postulants", postulantH.List)
	api.Post("/postulants", postulantH.Create)
	api.Get("/postulants/:id", postulantH.Get)
	api.Put("/postulants/:id", postulantH.Update)
	api.Delete("/postulants/:id", postulantH.Delete)
}
