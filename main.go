package main

import (
	"log"
	"time"

	"trainhub/config"
	evaluationController "trainhub/controllers/evaluation"
	mentorController "trainhub/controllers/mentor"
	moduleController "trainhub/controllers/module"
	participantController "trainhub/controllers/participant"
	userController "trainhub/controllers/user"
	"trainhub/database"
	"trainhub/middleware"
	evaluationRoutes "trainhub/routers/evaluationRoutes"
	mentorRoutes "trainhub/routers/mentorRoutes"
	moduleRoutes "trainhub/routers/moduleRoutes"
	participantRoutes "trainhub/routers/participantRoutes"
	userRoutes "trainhub/routers/userRoutes"
	"trainhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tokens := middleware.NewTokenService(cfg.JWTKey, 24*time.Hour)
	hasher := utils.NewHasher(cfg.SaltRound)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	userRoutes.SetupUserRoutes(app, userController.New(db, tokens, hasher), tokens, db)
	mentorRoutes.SetupMentorRoutes(app, mentorController.New(db), tokens)
	moduleRoutes.SetupModuleRoutes(app, moduleController.New(db), tokens)
	participantRoutes.SetupParticipantRoutes(app, participantController.New(db), tokens)
	evaluationRoutes.SetupEvaluationRoutes(app, evaluationController.New(db), tokens)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
