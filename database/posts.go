package database

import (
	"errors"

	"github.com/justin-echternach/onewheel-blog/constants"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostSummary is the listing projection: just enough to render an index link.
type PostSummary struct {
	Title string
	Slug  string
}

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// ListSummaries returns title and slug for every post, in stored order.
func (s *PostStore) ListSummaries() ([]PostSummary, error) {
	var summaries []PostSummary
	result := s.db.Model(&Post{}).Select("title", "slug").
		Limit(constants.MAX_POSTS_TO_SHOW).Find(&summaries)
	if result.Error != nil {
		return nil, result.Error
	}
	return summaries, nil
}

// Get returns the post with the given slug, or nil when no such post exists.
func (s *PostStore) Get(slug string) (*Post, error) {
	var post Post
	result := s.db.Where("slug = ?", slug).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// Create inserts a new post. A duplicate slug violates the unique index and
// surfaces as the driver's constraint error.
func (s *PostStore) Create(title, slug, markdown string) error {
	post := Post{Title: title, Slug: slug, Markdown: markdown}
	return s.db.Create(&post).Error
}

// Update replaces title, slug and markdown on the row matching the given
// slug. The key is whatever slug the caller hands in; when an edit changes
// the slug field, the lookup uses the changed value.
func (s *PostStore) Update(slug, title, newSlug, markdown string) error {
	result := s.db.Model(&Post{}).Where("slug = ?", slug).
		Updates(map[string]any{"title": title, "slug": newSlug, "markdown": markdown})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the post with the given slug. Deleting a slug that does
// not exist is an error, not a no-op. The row is removed outright rather
// than soft-deleted so the slug can be reused by a later create.
func (s *PostStore) Delete(slug string) error {
	result := s.db.Unscoped().Where("slug = ?", slug).Delete(&Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert inserts the post or, when the slug is already present, replaces
// its title and markdown. Used by the seed binary.
func (s *PostStore) Upsert(title, slug, markdown string) error {
	post := Post{Title: title, Slug: slug, Markdown: markdown}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "markdown", "updated_at"}),
	}).Create(&post).Error
}
