package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexhub/config"
	"lexhub/cron"
	"lexhub/database"
	clauseRepoPkg "lexhub/database/repository/clause"
	consultationRepoPkg "lexhub/database/repository/consultation"
	contractRepoPkg "lexhub/database/repository/contract"
	lawyerRepoPkg "lexhub/database/repository/lawyer"
	templateRepoPkg "lexhub/database/repository/template"
	"lexhub/handlers"
	"lexhub/routes"
	clauseSvc "lexhub/services/clause"
	contractSvc "lexhub/services/contract"
	"lexhub/services/intelligence"
	lawyerSvc "lexhub/services/lawyer"
	meetingSvc "lexhub/services/meeting"
	"lexhub/services/notification"
	"lexhub/services/payment"
	"lexhub/services/signaling"
	templateSvc "lexhub/services/template"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	lawyerRepo := lawyerRepoPkg.NewMongoLawyerRepo()
	consultationRepo := consultationRepoPkg.NewMongoConsultationRepo()
	contractRepo := contractRepoPkg.NewMongoContractRepo()
	clauseRepo := clauseRepoPkg.NewMongoClauseRepo()
	templateRepo := templateRepoPkg.NewMongoTemplateRepo()

	if repo, ok := lawyerRepo.(*lawyerRepoPkg.MongoLawyerRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure lawyer indexes: %v", err)
		}
	}
	if repo, ok := consultationRepo.(*consultationRepoPkg.MongoConsultationRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure consultation indexes: %v", err)
		}
	}

	// Services.
	meetingService := meetingSvc.NewMeetingService()
	notificationService := notification.NewBrevoNotificationService()
	paymentHandler := payment.NewStripePaymentHandler()

	lawyerService := &lawyerSvc.DefaultLawyerService{
		Repo:          lawyerRepo,
		Consultations: consultationRepo,
		Meetings:      meetingService,
		Payments:      paymentHandler,
	}
	if notificationService != nil {
		lawyerService.Notifier = notificationService
	}

	aiClient, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize AI client: %v", err)
	}
	contractService := &contractSvc.DefaultContractService{
		Repo:      contractRepo,
		Clauses:   clauseRepo,
		Templates: templateRepo,
		AI:        aiClient,
	}
	clauseService := &clauseSvc.DefaultClauseService{Repo: clauseRepo}
	templateService := &templateSvc.DefaultTemplateService{Repo: templateRepo}

	var speechClient intelligence.Transcriber
	if sc, err := intelligence.NewGoogleSpeechClient(context.Background(), config.AppConfig.GoogleServiceAccountFile); err != nil {
		logger.Sugar().Warnf("main: dictation disabled: %v", err)
	} else {
		speechClient = sc
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: storage service disabled: %v", err)
	}

	hub := signaling.NewHub()

	if notificationService != nil {
		cron.InitReminderWorker(notificationService, consultationRepo, lawyerRepo)
	}

	// Router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Lawyers:   lawyerService,
		Contracts: contractService,
		Clauses:   clauseService,
		Templates: templateService,
		Meetings:  meetingService,
		Storage:   storageService,
		Speech:    speechClient,
		Hub:       hub,
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
