package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edhorizon/pipeline-service/internal/infra/database"
	"github.com/edhorizon/pipeline-service/internal/infra/http/handlers"
	"github.com/edhorizon/pipeline-service/internal/infra/http/middleware"
	"github.com/edhorizon/pipeline-service/internal/infra/mail"
	"github.com/edhorizon/pipeline-service/internal/infra/queue"
	"github.com/edhorizon/pipeline-service/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	stageRepo := database.NewStageRepository(db)
	profileRepo := database.NewProfileRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)

	// Notifier worker consumes lead events off the queue.
	worker := queue.NewWorker(rabbitMQ.Ch, meteredNotifier{mailSender}, profileRepo)
	go worker.Start(queue.QueueName)

	// Usecases
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	updateLeadUC := usecase.NewUpdateLeadFieldsUseCase(leadRepo)
	moveLeadUC := usecase.NewMoveLeadUseCase(leadRepo, usecase.AllowAuthenticated, producer)
	listStagesUC := usecase.NewListStagesUseCase(stageRepo)
	addStageUC := usecase.NewAddStageUseCase(stageRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(listLeadsUC, createLeadUC, updateLeadUC, moveLeadUC)
	stageHandler := handlers.NewStageHandler(listStagesUC, addStageUC)
	boardHandler := handlers.NewBoardHandler(listStagesUC, listLeadsUC, moveLeadUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Authenticate(profileRepo))

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Patch("/leads/{leadId}", leadHandler.HandleUpdate)
	r.Post("/leads/{leadId}/move", leadHandler.HandleMove)

	r.Get("/stages", stageHandler.HandleList)
	r.Post("/stages", stageHandler.HandleAdd)

	r.Get("/board", boardHandler.HandleGet)
	r.Post("/board/drag/start", boardHandler.HandleDragStart)
	r.Post("/board/drag/over", boardHandler.HandleDragOver)
	r.Post("/board/drag/leave", boardHandler.HandleDragLeave)
	r.Post("/board/drag/end", boardHandler.HandleDragEnd)
	r.Post("/board/drop", boardHandler.HandleDrop)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("pipeline service listening on %s", port)
	http.ListenAndServe(port, r)
}

// meteredNotifier counts delivery failures before handing the error back to
// the worker's nack path.
type meteredNotifier struct {
	inner queue.NotificationSender
}

func (m meteredNotifier) SendStageChanged(to, leadName, toStage string) error {
	err := m.inner.SendStageChanged(to, leadName, toStage)
	if err != nil {
		middleware.RecordNotificationError("email")
	}
	return err
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
