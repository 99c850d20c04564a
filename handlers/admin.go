// admin.go - Admin panel listing and article creation
//
// The admin surface performs no caller verification: login redirects here,
// but nothing distinguishes an authenticated request from any other. That
// matches the original site and is deliberate.

package handlers

import (
	"log"
	"net/http"

	"go-climate-backend/models"
	"go-climate-backend/store"

	"github.com/gin-gonic/gin"
)

type CreateArticleInput struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	Content  string `form:"content" binding:"required"`
	Category string `form:"category" binding:"required"`
	Author   string `form:"author" binding:"required"`
}

// Admin returns the full article list for the admin panel, newest first.
func (h *Handler) Admin(c *gin.Context) {
	articles, err := h.Articles.ListByCategory(store.CategoryAll)
	if err != nil {
		log.Printf("Failed to list articles for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ShowCreateArticle serves the article creation form page.
func (h *Handler) ShowCreateArticle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "create_article"})
}

// CreateArticle inserts a new article and redirects to the admin panel.
// Fields must be present but their contents are not validated.
func (h *Handler) CreateArticle(c *gin.Context) {
	var input CreateArticleInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.Articles.Insert(models.Article{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Content:  input.Content,
		Category: input.Category,
		Author:   input.Author,
	})
	if err != nil {
		log.Printf("Failed to create article: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}
