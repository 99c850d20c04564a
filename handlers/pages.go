// pages.go - Public browsing pages: home, article listing and detail

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"go-climate-backend/store"

	"github.com/gin-gonic/gin"
)

// featuredLimit caps the home page and related-article lists.
const featuredLimit = 3

// Home returns the most recent articles for the landing page.
func (h *Handler) Home(c *gin.Context) {
	articles, err := h.Articles.ListRecent(featuredLimit)
	if err != nil {
		log.Printf("Failed to list recent articles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ListArticles returns the article listing, optionally filtered by the
// category query param. The default "all" returns everything.
func (h *Handler) ListArticles(c *gin.Context) {
	category := c.DefaultQuery("category", store.CategoryAll)
	articles, err := h.Articles.ListByCategory(category)
	if err != nil {
		log.Printf("Failed to list articles for category %q: %v", category, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"articles":         articles,
		"current_category": category,
	})
}

// GetArticle returns a single article plus up to three related articles
// from the same category.
func (h *Handler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	article, err := h.Articles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		log.Printf("Failed to fetch article %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	related, err := h.Articles.ListRelated(article.Category, article.ID, featuredLimit)
	if err != nil {
		log.Printf("Failed to fetch related articles for %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article":          article,
		"related_articles": related,
	})
}

// About serves the static about page content.
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       "About",
		"description": "Learn about climate change, its causes, and what we can do about it.",
	})
}

// Contact serves the static contact page content.
func (h *Handler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Contact",
		"email": "team@climate.example",
	})
}
