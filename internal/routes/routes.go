package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/cache"
	"github.com/vkclicks/vkclicks-api/internal/config"
	"github.com/vkclicks/vkclicks-api/internal/handlers"
	infraRepo "github.com/vkclicks/vkclicks-api/internal/infra/repository"
	"github.com/vkclicks/vkclicks-api/internal/middleware"
	"github.com/vkclicks/vkclicks-api/internal/notify"
	"github.com/vkclicks/vkclicks-api/internal/storage"
	ucBooking "github.com/vkclicks/vkclicks-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	mailer := notify.NewMailer(cfg)
	dispatcher := notify.NewDispatcher(mailer)

	summaryCache := cache.New(cfg.RedisURL, cfg.SummaryCacheTTL)

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		dispatcher,
		cfg.SiteName,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, dispatcher)

	profileHandler := handlers.NewProfileHandler(db, store, cfg)
	portfolioHandler := handlers.NewPortfolioHandler(db, store, cfg)
	teamHandler := handlers.NewTeamHandler(db)
	packageHandler := handlers.NewPackageHandler(db)

	publicHandler := handlers.NewPublicHandler(db)
	bookingHandler := handlers.NewBookingHandler(createBookingUC)
	reviewHandler := handlers.NewReviewHandler(db, summaryCache)

	// ======================================================
	// 📁 MEDIA (LOCAL DRIVER ONLY)
	// ======================================================
	if cfg.StorageDriver == "local" {
		r.Static(cfg.StorageBaseURL, cfg.StoragePath)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup/", authHandler.Signup)
		api.POST("/auth/login/", authHandler.Login)
		api.POST("/auth/forgot/", authHandler.ForgotPassword)
		api.POST("/auth/reset/", authHandler.ResetPassword)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/photographer/all/", publicHandler.ListPhotographers)
		api.GET("/photographer/:id/", publicHandler.GetPhotographer)
		api.GET("/photographer/:id/portfolio/", publicHandler.ListPortfolio)

		api.POST("/bookings/", bookingHandler.Create)

		api.GET("/photographer/:id/reviews/", reviewHandler.List)
		api.POST("/photographer/:id/reviews/", reviewHandler.Create)
		api.GET("/photographer/:id/reviews/summary/", reviewHandler.Summary)

		api.GET("/reviews/:pk/", reviewHandler.Get)
		api.PUT("/reviews/:pk/", reviewHandler.Update)
		api.DELETE("/reviews/:pk/", reviewHandler.Delete)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/photographer")
		secured.Use(middleware.AuthMiddleware(db))
		{
			secured.GET("/profile/", profileHandler.Get)
			secured.POST("/profile/", profileHandler.Save)

			secured.GET("/portfolio/", portfolioHandler.List)
			secured.POST("/portfolio/", portfolioHandler.Create)
			secured.PUT("/portfolio/:id/", portfolioHandler.Update)
			secured.DELETE("/portfolio/:id/", portfolioHandler.Delete)

			secured.GET("/team/", teamHandler.List)
			secured.POST("/team/", teamHandler.Create)
			secured.PUT("/team/:id/", teamHandler.Update)
			secured.DELETE("/team/:id/", teamHandler.Delete)

			secured.GET("/packages/", packageHandler.List)
			secured.POST("/packages/", packageHandler.Create)
			secured.PUT("/packages/:id/", packageHandler.Update)
			secured.DELETE("/packages/:id/", packageHandler.Delete)
		}
	}
}
