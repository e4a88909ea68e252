package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/albenaa/albenaa-api/internal/infra/auth"
	"github.com/albenaa/albenaa-api/internal/infra/database"
	"github.com/albenaa/albenaa-api/internal/infra/http/handlers"
	"github.com/albenaa/albenaa-api/internal/infra/http/middleware"
	"github.com/albenaa/albenaa-api/internal/infra/integration/translate"
	"github.com/albenaa/albenaa-api/internal/infra/mail"
	"github.com/albenaa/albenaa-api/internal/infra/queue"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// RabbitMQ is optional: without it the API still serves requests, only
	// the notification emails stop.
	var rabbitConn *amqp091.Connection
	var producer queue.ProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, notifications disabled: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Ch)

			mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
			if mailPort == 0 {
				mailPort = 587
			}
			mailSender := mail.NewEmailSender(
				os.Getenv("MAIL_HOST"), mailPort,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				os.Getenv("MAIL_FROM"), os.Getenv("MAIL_INBOX"),
			)

			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
		}
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	interactionRepo := database.NewInteractionRepository(db)
	userRepo := database.NewUserRepository(db)
	subscriberRepo := database.NewSubscriberRepository(db)
	projectRepo := database.NewProjectRepository(db)
	serviceRepo := database.NewServiceRepository(db)
	testimonialRepo := database.NewTestimonialRepository(db)
	galleryRepo := database.NewGalleryRepository(db)
	partnershipRepo := database.NewPartnershipRepository(db)
	credentialRepo := database.NewCredentialRepository(db)
	processStepRepo := database.NewProcessStepRepository(db)
	technicalSpecRepo := database.NewTechnicalSpecRepository(db)
	translationRepo := database.NewTranslationRepository(db)
	metricRepo := database.NewEngineeringMetricRepository(db)
	beforeAfterRepo := database.NewBeforeAfterRepository(db)

	// Sessions
	sessions := auth.NewSessionStore("albenaa_session", 24*time.Hour)

	// Integrations
	var translateClient translate.ClientInterface
	if translateURL := os.Getenv("TRANSLATE_URL"); translateURL != "" {
		translateClient = translate.NewClient(translateURL, os.Getenv("TRANSLATE_API_KEY"))
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, sessions)
	contactHandler := handlers.NewContactHandler(leadRepo, producer)
	leadHandler := handlers.NewLeadHandler(leadRepo, producer)
	customerHandler := handlers.NewCustomerHandler(customerRepo, interactionRepo)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipRepo)
	credentialHandler := handlers.NewCredentialHandler(credentialRepo)
	processStepHandler := handlers.NewProcessStepHandler(processStepRepo)
	technicalSpecHandler := handlers.NewTechnicalSpecHandler(technicalSpecRepo)
	translationHandler := handlers.NewTranslationHandler(translationRepo)
	metricHandler := handlers.NewEngineeringMetricHandler(metricRepo)
	beforeAfterHandler := handlers.NewBeforeAfterHandler(beforeAfterRepo)
	translateHandler := handlers.NewTranslateHandler(translateClient)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "https://albenaa.com", "https://www.albenaa.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Public site
	r.Get("/api/projects", projectHandler.ListPublic)
	r.Get("/api/projects/slug/{slug}", projectHandler.GetBySlug)
	r.Get("/api/projects/{id}", projectHandler.GetPublic)
	r.Get("/api/services", serviceHandler.ListPublic)
	r.Get("/api/testimonials", testimonialHandler.ListPublic)
	r.Get("/api/gallery", galleryHandler.ListPublic)
	r.Get("/api/partnerships", partnershipHandler.ListPublic)
	r.Get("/api/credentials", credentialHandler.ListPublic)
	r.Get("/api/process-steps", processStepHandler.ListPublic)
	r.Get("/api/technical-specs", technicalSpecHandler.ListPublic)
	r.Get("/api/engineering-metrics", metricHandler.ListPublic)
	r.Get("/api/before-after", beforeAfterHandler.ListPublic)
	r.Get("/api/translations", translationHandler.ListPublic)
	r.Post("/api/contact", contactHandler.Submit)
	r.Post("/api/subscribers", subscriberHandler.Subscribe)

	// Auth
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Get("/api/auth/me", authHandler.Me)

	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))

		r.Get("/api/leads", leadHandler.List)
		r.Post("/api/leads", leadHandler.Create)
		r.Get("/api/leads/stats", leadHandler.Stats)
		r.Get("/api/leads/{id}", leadHandler.Get)
		r.Put("/api/leads/{id}", leadHandler.Update)

		r.Get("/api/admin/customers", customerHandler.List)
		r.Post("/api/admin/customers", customerHandler.Create)
		r.Get("/api/admin/customers/{id}", customerHandler.Get)
		r.Put("/api/admin/customers/{id}", customerHandler.Update)
		r.Post("/api/admin/customers/{id}/interactions", customerHandler.CreateInteraction)

		r.Get("/api/admin/subscribers", subscriberHandler.List)
		r.Post("/api/admin/subscribers", subscriberHandler.Create)

		r.Put("/api/admin/users/{id}/password", userHandler.UpdatePassword)
		r.Post("/api/translate", translateHandler.Translate)

		adminCRUD := func(r chi.Router, path string, list, create, get, update, del http.HandlerFunc) {
			r.Get("/api/admin/"+path, list)
			r.Post("/api/admin/"+path, create)
			r.Get("/api/admin/"+path+"/{id}", get)
			r.Put("/api/admin/"+path+"/{id}", update)
			r.Delete("/api/admin/"+path+"/{id}", del)
		}

		adminCRUD(r, "projects", projectHandler.List, projectHandler.Create, projectHandler.Get, projectHandler.Update, projectHandler.Delete)
		adminCRUD(r, "services", serviceHandler.List, serviceHandler.Create, serviceHandler.Get, serviceHandler.Update, serviceHandler.Delete)
		adminCRUD(r, "testimonials", testimonialHandler.List, testimonialHandler.Create, testimonialHandler.Get, testimonialHandler.Update, testimonialHandler.Delete)
		adminCRUD(r, "gallery", galleryHandler.List, galleryHandler.Create, galleryHandler.Get, galleryHandler.Update, galleryHandler.Delete)
		adminCRUD(r, "partnerships", partnershipHandler.List, partnershipHandler.Create, partnershipHandler.Get, partnershipHandler.Update, partnershipHandler.Delete)
		adminCRUD(r, "credentials", credentialHandler.List, credentialHandler.Create, credentialHandler.Get, credentialHandler.Update, credentialHandler.Delete)
		adminCRUD(r, "process-steps", processStepHandler.List, processStepHandler.Create, processStepHandler.Get, processStepHandler.Update, processStepHandler.Delete)
		adminCRUD(r, "technical-specs", technicalSpecHandler.List, technicalSpecHandler.Create, technicalSpecHandler.Get, technicalSpecHandler.Update, technicalSpecHandler.Delete)
		adminCRUD(r, "translations", translationHandler.List, translationHandler.Create, translationHandler.Get, translationHandler.Update, translationHandler.Delete)
		adminCRUD(r, "engineering-metrics", metricHandler.List, metricHandler.Create, metricHandler.Get, metricHandler.Update, metricHandler.Delete)
		adminCRUD(r, "before-after", beforeAfterHandler.List, beforeAfterHandler.Create, beforeAfterHandler.Get, beforeAfterHandler.Update, beforeAfterHandler.Delete)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Albenaa API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
