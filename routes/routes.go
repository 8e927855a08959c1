package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staylux-backend/controllers"
	"staylux-backend/middleware"
	"staylux-backend/services"
)

// SetupRouter wires controllers into the gin engine. The admin group is
// deliberately unauthenticated, matching the original portal; the /api/my
// group requires a session token because the booking correlation email has
// to come from somewhere explicit.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	sc *controllers.StatsController,
	ac *controllers.AuthController,
	cc *controllers.ContactController,
	authSvc *services.AuthService,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// One limiter for everything a visitor can write to.
	publicWrites := middleware.NewRateLimiter(1, 5)

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.List)
			rooms.GET("/:id", rc.Get)
		}

		api.POST("/bookings", publicWrites.Limit(), bc.Create)
		api.POST("/contact", publicWrites.Limit(), cc.Submit)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", publicWrites.Limit(), ac.Signup)
			auth.POST("/login", publicWrites.Limit(), ac.Login)
			auth.GET("/me", middleware.RequireSession(authSvc), ac.Me)
		}

		my := api.Group("/my", middleware.RequireSession(authSvc))
		{
			my.GET("/bookings", bc.MyBookings)
			my.POST("/bookings/:id/cancel", bc.CancelOwn)
		}

		admin := api.Group("/admin")
		{
			adminRooms := admin.Group("/rooms")
			{
				adminRooms.GET("", rc.AdminList)
				adminRooms.POST("", rc.Create)
				adminRooms.GET("/:id", rc.Get)
				adminRooms.PATCH("/:id", rc.Update)
				adminRooms.DELETE("/:id", rc.Delete)
			}

			adminBookings := admin.Group("/bookings")
			{
				adminBookings.GET("", bc.AdminList)
				adminBookings.GET("/:id", bc.Get)
				adminBookings.PATCH("/:id/status", bc.ChangeStatus)
				adminBookings.DELETE("/:id", bc.Delete)
			}

			admin.GET("/dashboard", sc.Dashboard)
			admin.GET("/reports", sc.Reports)
		}
	}

	return r
}
