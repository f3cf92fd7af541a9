package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/taskmates/taskmates-be/internal/config"
	"github.com/taskmates/taskmates-be/internal/db"
	"github.com/taskmates/taskmates-be/internal/handlers"
	"github.com/taskmates/taskmates-be/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Requester{},
		&models.TaskSeeker{},
		&models.Task{},
		&models.Postulant{},
		&models.Rating{},
	); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.Register(app.Group("/api"), gdb)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
