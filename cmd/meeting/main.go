package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"meetscribe-backend/internal/capture"
	"meetscribe-backend/internal/extraction"
	"meetscribe-backend/internal/ingest"
	"meetscribe-backend/internal/notification"
	taskdomain "meetscribe-backend/internal/task/domain"
	taskRepo "meetscribe-backend/internal/task/repository"
	userdomain "meetscribe-backend/internal/user/domain"
	userRepo "meetscribe-backend/internal/user/repository"
	"meetscribe-backend/pkg/ai"
	"meetscribe-backend/pkg/config"
	"meetscribe-backend/pkg/database"
	"meetscribe-backend/pkg/fcm"
	"meetscribe-backend/pkg/speech"
)

// The meeting binary runs the capture pipeline: listen to the meeting,
// extract tasks, and hand them to the ingestion queue. The API server
// observes the queue through its status file.
func main() {
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(&userdomain.User{}, &taskdomain.Task{}, &notification.Notification{}, &notification.DeviceToken{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	taskRepository := taskRepo.NewGormTaskRepository(db)
	userRepository := userRepo.NewGormUserRepository(db)
	notifRepository := notification.NewGormRepository(db)

	// FCM is optional; without credentials notifications stay DB-only.
	var pusher notification.Pusher
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			pusher = fcmClient
		}
	}
	notifService := notification.NewService(notifRepository, pusher)

	generator, err := ai.NewGenerator(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}

	extractor := extraction.NewExtractor(generator, userRepository)

	queue := ingest.NewQueue(taskRepository, notifService, ingest.NewFileSink(cfg.QueueStatusFile), cfg.QueueCapacity)
	queue.Start()

	recognizer := speech.NewHTTPRecognizer(cfg.SpeechServiceURL, cfg.ListenTimeout, cfg.PhraseTimeLimit)
	loop := capture.NewLoop(recognizer, extractor, userRepository, queue)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("Stopping meeting recording...")
		cancel()
	}()

	log.Println("Starting meeting recording... (Ctrl+C to stop)")
	loop.Run(ctx)
}
