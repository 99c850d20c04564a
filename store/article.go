package store

import (
	"errors"
	"time"

	"go-climate-backend/models"

	"gorm.io/gorm"
)

// CategoryAll is the sentinel category that matches every article.
const CategoryAll = "all"

// recencyOrder sorts newest first; id breaks ties between articles created
// in the same clock tick.
const recencyOrder = "date_created DESC, id DESC"

type ArticleStore struct {
	db *gorm.DB
}

func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// ListRecent returns up to limit articles, newest first.
func (s *ArticleStore) ListRecent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Order(recencyOrder).Limit(limit).Find(&articles).Error
	return articles, err
}

// ListByCategory returns articles whose category exactly equals category,
// newest first. The sentinel CategoryAll returns every article. A category
// with no matches yields an empty slice, not an error.
func (s *ArticleStore) ListByCategory(category string) ([]models.Article, error) {
	var articles []models.Article
	query := s.db.Order(recencyOrder)
	if category != CategoryAll {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&articles).Error
	return articles, err
}

// GetByID returns the article with the given id, or ErrNotFound.
func (s *ArticleStore) GetByID(id uint) (models.Article, error) {
	var article models.Article
	err := s.db.First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return article, ErrNotFound
	}
	return article, err
}

// ListRelated returns up to limit articles sharing category, excluding the
// article with id excludeID.
func (s *ArticleStore) ListRelated(category string, excludeID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.
		Where("category = ? AND id <> ?", category, excludeID).
		Order(recencyOrder).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// Insert persists a new article and returns it with its assigned id.
// Omitted author and creation time get the site defaults.
func (s *ArticleStore) Insert(article models.Article) (models.Article, error) {
	if article.Author == "" {
		article.Author = "Climate Team"
	}
	if article.DateCreated.IsZero() {
		article.DateCreated = time.Now().UTC()
	}
	err := s.db.Create(&article).Error
	return article, err
}

// Count reports how many articles are stored. Used by the seeding check.
func (s *ArticleStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}
