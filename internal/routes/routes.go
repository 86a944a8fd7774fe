package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/config"
	"github.com/jakob2230/agridomMobileApp/internal/handlers"
	"github.com/jakob2230/agridomMobileApp/internal/middleware"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(db, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	leaveHandler := handlers.NewLeaveHandler(db)

	api := router.Group("/api")
	{
		api.POST("/login/", authHandler.Login)
		api.POST("/time-in/", attendanceHandler.TimeIn)
		api.POST("/time-out/", attendanceHandler.TimeOut)
		api.GET("/attendance/", attendanceHandler.ListToday)
		api.POST("/submit-leave/", leaveHandler.Submit)
		api.GET("/leave-requests/", leaveHandler.List)
	}

	staff := api.Group("/leave-requests")
	staff.Use(middleware.AuthRequired(cfg.JwtSecret), middleware.RequireStaff())
	{
		staff.PATCH("/:id/approve", leaveHandler.Approve)
		staff.PATCH("/:id/reject", leaveHandler.Reject)
	}
}
