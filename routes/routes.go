package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
	"hotel-backoffice/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the HTTP surface. Reads of the room
// catalogue are public; everything else behind /client, /rent and the room
// mutations requires a session.
func SetupRouter(
	ac *controllers.AuthController,
	cc *controllers.ClientController,
	rc *controllers.RentController,
	nc *controllers.NumberController,
	sessions *services.SessionService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/login", ac.Login)
	r.GET("/login", ac.LoginStatus)
	r.GET("/logout", ac.Logout)

	auth := middleware.RequireAuth(sessions)

	client := r.Group("/client", auth)
	{
		client.GET("", cc.ListGuests)
		client.GET("/:id", cc.GetGuest)
		client.POST("", cc.CreateGuest)
		client.PUT("/:id", cc.UpdateGuest)
		client.DELETE("/:id", cc.DeleteGuest)

		// Mutations without an id are rejected, not silently ignored.
		client.PUT("", controllers.MissingID)
		client.DELETE("", controllers.MissingID)
	}

	rent := r.Group("/rent", auth)
	{
		rent.GET("", rc.ListBookings)
		rent.GET("/:id", rc.GetBooking)
		rent.POST("", rc.CreateBooking)
		rent.PUT("/:id", rc.UpdateBooking)
		rent.DELETE("/:id", rc.DeleteBooking)

		rent.PUT("", controllers.MissingID)
		rent.DELETE("", controllers.MissingID)
	}

	r.GET("/number", nc.QueryRooms)
	r.GET("/number/:number", nc.QueryRooms)
	r.POST("/number", auth, nc.CreateRoom)
	r.PUT("/number/:number", auth, nc.UpdateRoom)
	r.DELETE("/number/:number", auth, nc.DeleteRoom)
	r.PUT("/number", auth, controllers.MissingID)
	r.DELETE("/number", auth, controllers.MissingID)

	return r
}
