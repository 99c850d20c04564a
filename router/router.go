// router.go - Explicit route table for the site

package router

import (
	"time"

	"go-climate-backend/handlers"
	"go-climate-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the Gin engine with every route wired to the given handler set.
func New(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.SecureHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public browsing pages
	r.GET("/", h.Home)
	r.GET("/articles", h.ListArticles)
	r.GET("/article/:id", h.GetArticle)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)

	// Account pages
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)

	// Admin panel. No auth middleware here on purpose: the original site
	// never checks the caller, and preserving that behavior is required.
	r.GET("/admin", h.Admin)
	r.GET("/create_article", h.ShowCreateArticle)
	r.POST("/create_article", h.CreateArticle)

	return r
}
