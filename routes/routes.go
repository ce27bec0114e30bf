package routes

import (
	"net/http"
	"time"

	"lexhub/handlers"
	"lexhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLawyerRoutes registers lawyer directory and scheduling endpoints.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		// Public directory endpoints.
		api.GET("", hb.SearchLawyers)
		api.GET("/:lawyerId", hb.GetLawyer)
		api.GET("/:lawyerId/slots", hb.GetAvailableSlots)

		// Protected endpoints.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.CreateLawyerProfile)
		protected.PATCH("/:lawyerId", hb.UpdateLawyer)
		protected.PATCH("/:lawyerId/availability", hb.UpdateAvailability)
		protected.POST("/:lawyerId/consultations", hb.BookConsultation)
	}
}

// RegisterConsultationRoutes registers consultation lifecycle endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetConsultationHistory)
		api.PATCH("/:id/status", hb.UpdateConsultationStatus)
		api.POST("/:id/join", hb.JoinConsultation)
		api.POST("/:id/end", hb.EndConsultation)
		api.POST("/:id/feedback", hb.AddFeedback)
		api.POST("/:id/pay", hb.PayConsultation)
	}
}

// RegisterContractRoutes registers contract and drafting endpoints.
func RegisterContractRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contracts")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateContract)
		api.GET("", hb.ListContracts)
		api.GET("/:id", hb.GetContract)
		api.PUT("/:id", hb.UpdateContract)
		api.DELETE("/:id", hb.DeleteContract)
		api.POST("/generate", hb.GenerateContract)
		api.POST("/from-template", hb.CreateContractFromTemplate)
		api.POST("/:id/rewrite-section", hb.RewriteSection)
		api.POST("/:id/analyze", hb.AnalyzeContract)
		api.POST("/suggest-clause", hb.SuggestClause)
		api.POST("/dictate", hb.DictateContractNotes)
	}
}

// RegisterTemplateRoutes registers template library endpoints.
func RegisterTemplateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/templates")
	{
		api.GET("", hb.SearchTemplates)
		api.GET("/:id", hb.GetTemplate)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.CreateTemplate)
		protected.PUT("/:id", hb.UpdateTemplate)
		protected.DELETE("/:id", hb.DeleteTemplate)
		protected.POST("/:id/reviews", hb.ReviewTemplate)
	}
}

// RegisterClauseRoutes registers clause library endpoints.
func RegisterClauseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clauses")
	{
		api.GET("", hb.SearchClauses)
		api.GET("/:id", hb.GetClause)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.CreateClause)
		protected.PUT("/:id", hb.UpdateClause)
		protected.DELETE("/:id", hb.DeleteClause)
	}
}

// RegisterStorageRoutes registers document storage endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.UploadDocument)
		api.DELETE("/:fileId", hb.DeleteDocument)
	}
}

// RegisterSignalingRoute registers the WebSocket signaling endpoint.
func RegisterSignalingRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws/consultations/:roomId", middleware.JWTAuthMiddleware(), hb.SignalingSocket)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LexHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterLawyerRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterContractRoutes(r, hb)
	RegisterTemplateRoutes(r, hb)
	RegisterClauseRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterSignalingRoute(r, hb)
	RegisterHealthRoute(r)
}
