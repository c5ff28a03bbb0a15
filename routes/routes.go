package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/BEFamily/config"
	"github.com/patiponrmutl/BEFamily/handlers"
	"github.com/patiponrmutl/BEFamily/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	reg := handlers.NewRegistrationHandler()
	mem := handlers.NewMemberHandler()
	art := handlers.NewArticleHandler()
	ann := handlers.NewAnnouncementHandler()
	alb := handlers.NewAlbumHandler()
	gb := handlers.NewGuestbookHandler()
	cfgH := handlers.NewConfigHandler()
	up := handlers.NewUploadHandler(cfg)
	bk := handlers.NewBackupHandler(cfg)

	adminMW := middlewares.VerifyAdminToken(cfg.JWTSecret)
	memberMW := middlewares.VerifyMemberToken(cfg.JWTSecret)
	optionalMW := middlewares.OptionalAuth(cfg.JWTSecret)

	e.GET("/healthz", handlers.Health)

	api := e.Group("/api")

	// ===== Public =====
	api.GET("/configs", cfgH.Public)

	api.GET("/members", mem.List)
	api.GET("/members/tree", mem.Tree)
	api.GET("/members/:id", mem.Get)

	// บทความ: แนบโทเคนแอดมินได้เพื่อเห็นฉบับร่าง
	api.GET("/articles", art.List, optionalMW)
	api.GET("/articles/:id", art.Get, optionalMW)

	api.GET("/announcements", ann.List)
	api.GET("/announcements/:id", ann.Get)

	api.GET("/albums", alb.List)
	api.GET("/albums/:id", alb.Get)

	api.GET("/guestbook", gb.List)
	api.POST("/guestbook", gb.Create, optionalMW)

	// ===== Auth =====
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/admin/login", auth.AdminLogin)
	api.POST("/auth/member/login", auth.MemberLogin)
	api.GET("/auth/member/profile", auth.MemberProfile, memberMW)
	api.GET("/auth/admin/profile", auth.AdminProfile, adminMW)
	api.PUT("/auth/admin/password", auth.ChangeAdminPassword, adminMW)

	// ===== Admin =====
	admin := api.Group("/admin", adminMW)

	admin.POST("/members", mem.Create)
	admin.PUT("/members/:id", mem.Update)
	admin.DELETE("/members/:id", mem.Delete)
	admin.POST("/members/:id/account", mem.CreateAccount)

	admin.GET("/registration-requests", reg.List)
	admin.PUT("/registration-requests/:id", reg.Review)

	admin.POST("/articles", art.Create)
	admin.PUT("/articles/:id", art.Update)
	admin.DELETE("/articles/:id", art.Delete)

	admin.GET("/announcements", ann.ListAll)
	admin.POST("/announcements", ann.Create)
	admin.PUT("/announcements/:id", ann.Update)
	admin.DELETE("/announcements/:id", ann.Delete)

	admin.POST("/albums", alb.Create)
	admin.PUT("/albums/:id", alb.Update)
	admin.DELETE("/albums/:id", alb.Delete)
	admin.POST("/albums/:id/images", alb.AddImage)
	admin.PUT("/albums/images/:imageId", alb.UpdateImage)
	admin.DELETE("/albums/images/:imageId", alb.DeleteImage)

	admin.GET("/guestbook", gb.ListAll)
	admin.PUT("/guestbook/:id/approve", gb.Approve)
	admin.PUT("/guestbook/:id/reply", gb.Reply)
	admin.DELETE("/guestbook/:id", gb.Delete)

	admin.GET("/configs", cfgH.All)
	admin.GET("/configs/:key", cfgH.Get)
	admin.PUT("/configs", cfgH.BulkUpdate)
	admin.PUT("/configs/:key", cfgH.Update)

	admin.POST("/upload/image", up.UploadImage)
	admin.POST("/upload/images", up.UploadImages)

	admin.GET("/backups", bk.List)
	admin.POST("/backups", bk.Create)
	admin.POST("/backups/:id/restore", bk.Restore)
	admin.DELETE("/backups/:id", bk.Delete)
}
