package constants

const (
	APP_NAME          = "Onewheel Blog"
	MAX_POSTS_TO_SHOW = 2000

	// route token that addresses the empty editor instead of a stored post
	NEW_POST_SLUG = "new"
)
