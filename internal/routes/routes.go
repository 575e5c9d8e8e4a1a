package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/snapverse/snapverse-api/internal/config"
	"github.com/snapverse/snapverse-api/internal/handlers"
	"github.com/snapverse/snapverse-api/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	followHandler *handlers.FollowHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	moderationHandler *handlers.ModerationHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	// Uploaded media is served statically.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Payment webhook — unauthenticated, called by the gateway
	api.Post("/payments/webhook", paymentHandler.Webhook)

	// Viewer-shaped reads: anonymous allowed, token honored when present
	read := api.Group("", middleware.JWTOptional(cfg))
	read.Get("/feed", postHandler.Feed)
	read.Get("/posts/:id", postHandler.Get)
	read.Get("/posts/:id/comments", commentHandler.List)
	read.Get("/posts/:id/reactions", postHandler.Reactions)
	read.Get("/comments/:id/replies", commentHandler.Replies)
	read.Get("/users/:username/profile", userHandler.GetProfile)
	read.Get("/users/:id/posts", postHandler.UserPosts)
	read.Get("/users/:id/followers", followHandler.Followers)
	read.Get("/users/:id/following", followHandler.Following)
	read.Get("/users/:id/follow-stats", followHandler.Stats)

	// Authenticated surface
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/me", userHandler.Me)
	protected.Put("/me/profile", userHandler.UpdateProfile)
	protected.Put("/me/privacy", userHandler.SetPrivacy)
	protected.Post("/me/profile-picture", userHandler.UploadProfilePicture)
	protected.Post("/me/cover-photo", userHandler.UploadCoverPhoto)
	protected.Get("/me/posts", postHandler.MyPosts)

	protected.Post("/users/:id/follow", followHandler.Follow)
	protected.Delete("/users/:id/follow", followHandler.Unfollow)
	protected.Delete("/users/:id/follower", followHandler.RemoveFollower)
	protected.Get("/follow-requests", followHandler.PendingRequests)
	protected.Post("/follow-requests/:id/approve", followHandler.Approve)
	protected.Post("/follow-requests/:id/reject", followHandler.Reject)

	protected.Post("/posts", postHandler.Create)
	protected.Put("/posts/:id", postHandler.Update)
	protected.Delete("/posts/:id", postHandler.Delete)
	protected.Post("/posts/:id/react", postHandler.React)
	protected.Delete("/posts/:id/react", postHandler.RemoveReaction)
	protected.Post("/posts/:id/comments", commentHandler.Create)
	protected.Put("/comments/:id", commentHandler.Update)
	protected.Delete("/comments/:id", commentHandler.Delete)

	protected.Post("/reports", moderationHandler.CreateReport)
	protected.Post("/blocks", moderationHandler.BlockUser)
	protected.Delete("/blocks/:id", moderationHandler.UnblockUser)
	protected.Get("/blocks", moderationHandler.BlockedUsers)

	protected.Post("/payments/pro", paymentHandler.InitiatePro)
	protected.Get("/payments/status", paymentHandler.Status)

	// Moderator panel
	mod := api.Group("/mod", middleware.JWTProtected(cfg), middleware.ModeratorRequired(db, cfg))
	mod.Get("/reports", moderationHandler.ListReports)
	mod.Put("/reports/:id", moderationHandler.ActionReport)
}
