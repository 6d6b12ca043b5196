package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:posts_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	assert := assert.New(t)
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("My First Post!", "my-first-post", "# Hello"))

	post, err := posts.Get("my-first-post")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal("My First Post!", post.Title)
	assert.Equal("my-first-post", post.Slug)
	assert.Equal("# Hello", post.Markdown)
}

func TestGetMissingSlugReturnsNil(t *testing.T) {
	posts := NewPostStore(newTestDB(t))

	post, err := posts.Get("missing-slug")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestCreateDuplicateSlugFails(t *testing.T) {
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("A", "a", "B"))
	assert.Error(t, posts.Create("Other", "a", "Other"))
}

func TestUpdateReplacesAllFields(t *testing.T) {
	assert := assert.New(t)
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("A", "a", "B"))
	require.NoError(t, posts.Update("a", "A2", "a2", "B2"))

	moved, err := posts.Get("a2")
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal("A2", moved.Title)
	assert.Equal("B2", moved.Markdown)

	old, err := posts.Get("a")
	require.NoError(t, err)
	assert.Nil(old)
}

func TestUpdateMissingSlugIsStoreError(t *testing.T) {
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("A", "a", "B"))

	err := posts.Update("a2", "A2", "a2", "B2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the existing row stays untouched
	post, err := posts.Get("a")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "A", post.Title)
}

func TestDeleteThenGetReturnsNil(t *testing.T) {
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("A", "a", "B"))
	require.NoError(t, posts.Delete("a"))

	post, err := posts.Get("a")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestDeleteMissingSlugIsStoreError(t *testing.T) {
	posts := NewPostStore(newTestDB(t))
	assert.ErrorIs(t, posts.Delete("missing-slug"), gorm.ErrRecordNotFound)
}

func TestDeletedSlugCanBeReused(t *testing.T) {
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Create("A", "a", "B"))
	require.NoError(t, posts.Delete("a"))
	assert.NoError(t, posts.Create("A again", "a", "B again"))
}

func TestListSummariesTracksCreatesAndDeletes(t *testing.T) {
	assert := assert.New(t)
	posts := NewPostStore(newTestDB(t))

	for i := 0; i < 4; i++ {
		require.NoError(t, posts.Create(fmt.Sprintf("Post %d", i), fmt.Sprintf("post-%d", i), "body"))
	}
	require.NoError(t, posts.Delete("post-1"))
	require.NoError(t, posts.Delete("post-3"))

	summaries, err := posts.ListSummaries()
	require.NoError(t, err)
	assert.Len(summaries, 2)

	seen := map[string]bool{}
	for _, summary := range summaries {
		assert.False(seen[summary.Slug], "duplicate slug %q in listing", summary.Slug)
		seen[summary.Slug] = true
	}
	assert.True(seen["post-0"])
	assert.True(seen["post-2"])
}

func TestUpsertInsertsThenReplaces(t *testing.T) {
	assert := assert.New(t)
	posts := NewPostStore(newTestDB(t))

	require.NoError(t, posts.Upsert("A", "a", "B"))
	require.NoError(t, posts.Upsert("A2", "a", "B2"))

	summaries, err := posts.ListSummaries()
	require.NoError(t, err)
	assert.Len(summaries, 1)

	post, err := posts.Get("a")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal("A2", post.Title)
	assert.Equal("B2", post.Markdown)
}
