// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/handlers"
	"github.com/sportsfed/fedsite/internal/middleware"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/storage"
	"github.com/sportsfed/fedsite/internal/utils"
)

const Version = "1.0.0"

// Dependencies are the long-lived collaborators the router wires into
// services. Store may be nil when uploads are not configured.
type Dependencies struct {
	DB       *gorm.DB
	Config   *config.Config
	Cache    cache.Cache
	Store    storage.ObjectStore
	JWT      *utils.JWTManager
	Notifier services.ContactNotifier
}

// contentRoutes registers the five CRUD routes of one entity. Reads are
// public and writes require an admin.
func contentRoutes[T any, I any, PI interface {
	*I
	services.Input[T]
}](group *gin.RouterGroup, h *handlers.ContentHandler[T, I, PI], admin gin.HandlerFunc) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", admin, h.Create)
	group.PATCH("/:id", admin, h.Update)
	group.DELETE("/:id", admin, h.Delete)
}

func Initialize(deps Dependencies) *gin.Engine {
	db, cfg, c := deps.DB, deps.Config, deps.Cache

	// Initialize services
	authService := services.NewAuthService(db, deps.JWT)
	adminService := services.NewAdminService(db)
	storageService := services.NewStorageService(deps.Store, cfg.Storage)
	contactService := services.NewContactService(db, c, deps.Notifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, adminService)
	adminHandler := handlers.NewAdminHandler(adminService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	contactHandler := handlers.NewContactHandler(contactService)
	healthHandler := handlers.NewHealthHandler(db, Version)

	limits := middleware.NewRateLimits(cfg.RateLimit)
	adminRequired := middleware.AdminRequired(authService)
	superAdminRequired := middleware.SuperAdminRequired(authService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(limits.General)
	r.Use(middleware.AuditLog(adminService))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		contentRoutes(api.Group("/hero-slides"),
			handlers.NewContentHandler[models.HeroSlide, services.HeroSlideInput](services.NewHeroSlideService(db, c), handlers.ActiveFilter),
			adminRequired)
		contentRoutes(api.Group("/news"),
			handlers.NewContentHandler[models.News, services.NewsInput](services.NewNewsService(db, c), handlers.FeaturedFilter),
			adminRequired)
		contentRoutes(api.Group("/events"),
			handlers.NewContentHandler[models.Event, services.EventInput](services.NewEventService(db, c), handlers.FeaturedFilter),
			adminRequired)
		contentRoutes(api.Group("/players"),
			handlers.NewContentHandler[models.Player, services.PlayerInput](services.NewPlayerService(db, c), nil),
			adminRequired)
		contentRoutes(api.Group("/clubs"),
			handlers.NewContentHandler[models.Club, services.ClubInput](services.NewClubService(db, c), nil),
			adminRequired)
		contentRoutes(api.Group("/member-states"),
			handlers.NewContentHandler[models.MemberState, services.MemberStateInput](services.NewMemberStateService(db, c), nil),
			adminRequired)
		contentRoutes(api.Group("/leaders"),
			handlers.NewContentHandler[models.Leader, services.LeaderInput](services.NewLeaderService(db, c), nil),
			adminRequired)
		contentRoutes(api.Group("/media"),
			handlers.NewContentHandler[models.Media, services.MediaInput](services.NewMediaService(db, c), handlers.CategoryFilter),
			adminRequired)
		contentRoutes(api.Group("/affiliations"),
			handlers.NewContentHandler[models.Affiliation, services.AffiliationInput](services.NewAffiliationService(db, c), nil),
			adminRequired)
		contentRoutes(api.Group("/settings"),
			handlers.NewContentHandler[models.SiteSetting, services.SiteSettingInput](services.NewSiteSettingService(db, c), nil),
			adminRequired)

		// Contact messages are written by the public and read by admins.
		contacts := api.Group("/contacts")
		{
			h := handlers.NewContentHandler[models.Contact, services.ContactInput](contactService, nil)
			contacts.POST("", limits.Contact, h.Create)
			contacts.GET("", adminRequired, h.List)
			contacts.GET("/:id", adminRequired, h.Get)
			contacts.PATCH("/:id", adminRequired, h.Update)
			contacts.PATCH("/:id/read", adminRequired, contactHandler.MarkRead)
			contacts.DELETE("/:id", adminRequired, h.Delete)
		}

		// Authentication routes
		auth := api.Group("/admin")
		{
			auth.POST("/login", limits.Auth, authHandler.Login)
			auth.GET("/me", adminRequired, authHandler.Me)
			auth.PATCH("/me/password", limits.Auth, adminRequired, authHandler.ChangePassword)
		}

		// Admin account management
		admins := api.Group("/admins")
		admins.Use(superAdminRequired)
		{
			admins.GET("", adminHandler.ListAdmins)
			admins.POST("", adminHandler.CreateAdmin)
			admins.PATCH("/:id", adminHandler.UpdateAdmin)
			admins.DELETE("/:id", adminHandler.DeleteAdmin)
		}

		api.GET("/audit-logs", superAdminRequired, adminHandler.ListAuditLogs)
		api.POST("/upload", adminRequired, limits.Upload, uploadHandler.Upload)
	}

	return r
}
