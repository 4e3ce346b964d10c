package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hacklog-app/hacklog/internal/handlers"
)

// APIEndpoints wires the route table. authRequired is the session
// middleware; everything except login, logout and the public profile
// sits behind it.
func APIEndpoints(
	r *gin.Engine,
	authH *handlers.AuthHandler,
	projectH *handlers.ProjectHandler,
	profileH *handlers.ProfileHandler,
	authRequired gin.HandlerFunc,
) {
	r.Use(cors.New(corsConfig()))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
		authGroup.GET("/user", authRequired, authH.GetMe)
	}

	// Public portfolio page, no session needed
	api.GET("/profile/:username", profileH.PublicProfile)

	authed := api.Group("", authRequired)
	{
		authed.GET("/projects", projectH.ListProjects)
		authed.POST("/projects", projectH.CreateProject)
		authed.GET("/projects/:id", projectH.GetProject)
		authed.PUT("/projects/:id", projectH.UpdateProject)
		authed.DELETE("/projects/:id", projectH.DeleteProject)
		authed.GET("/search", projectH.SearchProjects)
		authed.PUT("/profile/username", profileH.UpdateUsername)
		authed.PUT("/profile", profileH.UpdateProfile)
	}
}

func corsConfig() cors.Config {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}
