package main

import (
	"context"
	"log"

	"quiz-enroll-backend/internal/config"
	"quiz-enroll-backend/internal/handlers"
	"quiz-enroll-backend/internal/services"
	"quiz-enroll-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Enrollment API
// @version         1.0
// @description     CRUD for users and quizzes plus atomic quiz enrollment
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var st store.Store
	if cfg.FirestoreProjectID != "" {
		fs, err := store.NewFirestore(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Fatalf("failed to connect to firestore: %v", err)
		}
		defer fs.Close()
		st = fs
		log.Printf("using firestore project %s", cfg.FirestoreProjectID)
	} else {
		st = store.NewMemory()
		log.Println("FIRESTORE_PROJECT_ID not set, using in-memory store")
	}

	userService := services.NewUserService(st)
	quizService := services.NewQuizService(st)
	enrollmentService := services.NewEnrollmentService(st)

	userHandler := handlers.NewUserHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.PATCH("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			quizzes.POST("/:id/enrollments", enrollmentHandler.Enroll)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
