package store

import (
	"path/filepath"
	"testing"
	"time"

	"go-climate-backend/database"
	"go-climate-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// newTestDB opens a fresh sqlite database under the test's temp dir.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}

// insertFixtures creates one article per entry with strictly decreasing age,
// so the last entry is the most recent.
func insertFixtures(t *testing.T, s *ArticleStore, categories ...string) []models.Article {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	inserted := make([]models.Article, 0, len(categories))
	for i, cat := range categories {
		a, err := s.Insert(models.Article{
			Title:       "Article",
			Subtitle:    "Subtitle for article",
			Content:     "Content",
			Category:    cat,
			Author:      "Tester",
			DateCreated: base.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
		inserted = append(inserted, a)
	}
	return inserted
}

func TestInsertAndGetByID(t *testing.T) {
	s := NewArticleStore(newTestDB(t))

	created, err := s.Insert(models.Article{
		Title:    "Understanding Global Warming",
		Subtitle: "The science behind rising temperatures",
		Content:  "Long form content",
		Category: "Science",
		Author:   "Climate Research Team",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := s.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Subtitle, got.Subtitle)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Author, got.Author)
}

func TestInsertDefaults(t *testing.T) {
	s := NewArticleStore(newTestDB(t))

	created, err := s.Insert(models.Article{
		Title:    "No author given",
		Subtitle: "Defaults should fill in",
		Content:  "Content",
		Category: "Science",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Climate Team", created.Author)
	assert.False(t, created.DateCreated.IsZero())
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	s := NewArticleStore(newTestDB(t))

	inserted := insertFixtures(t, s, "Science", "Science", "Impact")
	seen := map[uint]bool{}
	for _, a := range inserted {
		assert.False(t, seen[a.ID], "id %d assigned twice", a.ID)
		seen[a.ID] = true
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := NewArticleStore(newTestDB(t))

	_, err := s.GetByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRecentOrderAndLimit(t *testing.T) {
	s := NewArticleStore(newTestDB(t))
	insertFixtures(t, s, "Science", "Solutions", "Impact", "Solutions", "Science")

	articles, err := s.ListRecent(3)
	assert.NoError(t, err)
	assert.Len(t, articles, 3)
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].DateCreated.After(articles[i-1].DateCreated),
			"articles must be ordered newest first")
	}

	// Limit larger than the table returns everything, still sorted.
	articles, err = s.ListRecent(50)
	assert.NoError(t, err)
	assert.Len(t, articles, 5)
}

func TestListRecentEmptyStore(t *testing.T) {
	s := NewArticleStore(newTestDB(t))

	articles, err := s.ListRecent(3)
	assert.NoError(t, err)
	assert.Empty(t, articles)
}

func TestListByCategory(t *testing.T) {
	s := NewArticleStore(newTestDB(t))
	insertFixtures(t, s, "Science", "Solutions", "Impact", "Solutions")

	solutions, err := s.ListByCategory("Solutions")
	assert.NoError(t, err)
	assert.Len(t, solutions, 2)
	for _, a := range solutions {
		assert.Equal(t, "Solutions", a.Category)
	}

	science, err := s.ListByCategory("Science")
	assert.NoError(t, err)
	assert.Len(t, science, 1)

	// Case-sensitive exact match: "solutions" is a different category.
	lower, err := s.ListByCategory("solutions")
	assert.NoError(t, err)
	assert.Empty(t, lower)

	all, err := s.ListByCategory(CategoryAll)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListByCategoryAllIsUnionOfCategories(t *testing.T) {
	s := NewArticleStore(newTestDB(t))
	insertFixtures(t, s, "Science", "Solutions", "Impact", "Solutions")

	all, err := s.ListByCategory(CategoryAll)
	assert.NoError(t, err)

	perCategory := map[uint]bool{}
	for _, cat := range []string{"Science", "Solutions", "Impact"} {
		articles, err := s.ListByCategory(cat)
		assert.NoError(t, err)
		for _, a := range articles {
			perCategory[a.ID] = true
		}
	}

	assert.Len(t, all, len(perCategory))
	for _, a := range all {
		assert.True(t, perCategory[a.ID], "article %d missing from per-category union", a.ID)
	}
}

func TestListRelated(t *testing.T) {
	s := NewArticleStore(newTestDB(t))
	inserted := insertFixtures(t, s, "Solutions", "Solutions", "Solutions", "Science", "Solutions")
	subject := inserted[0]

	related, err := s.ListRelated(subject.Category, subject.ID, 3)
	assert.NoError(t, err)
	assert.Len(t, related, 3)
	for _, a := range related {
		assert.NotEqual(t, subject.ID, a.ID, "related list must exclude the article itself")
		assert.Equal(t, subject.Category, a.Category)
	}
}

func TestListRelatedNoOthersInCategory(t *testing.T) {
	s := NewArticleStore(newTestDB(t))
	inserted := insertFixtures(t, s, "Impact", "Science")

	related, err := s.ListRelated("Impact", inserted[0].ID, 3)
	assert.NoError(t, err)
	assert.Empty(t, related)
}
