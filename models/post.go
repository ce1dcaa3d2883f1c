package models

import "time"

// Post is a video-sharing content record. Posts are immutable after creation
// from this client's perspective.
type Post struct {
	// ID is the backend-assigned document identifier.
	ID string `json:"$id"`

	// Title is the display title; full-text search matches against it.
	Title string `json:"title"`

	// ThumbnailURL points at the preview image resolved during upload.
	ThumbnailURL string `json:"thumbnail"`

	// VideoURL points at the playable video file.
	VideoURL string `json:"video"`

	// Prompt is the AI prompt the video was generated from.
	Prompt string `json:"prompt"`

	// Creator is the resolved creator relation. It is nil when the relation
	// is dangling; callers must treat creator fields as optional.
	Creator *User `json:"creator,omitempty"`

	// CreatedAt orders feed queries (descending).
	CreatedAt time.Time `json:"$createdAt"`
}

// PostFromDocument maps a raw video document onto a Post. A missing or
// unresolved creator relation yields Creator == nil, never an error.
func PostFromDocument(doc Document) Post {
	post := Post{
		ID:           doc.ID,
		Title:        doc.String("title"),
		ThumbnailURL: doc.String("thumbnail"),
		VideoURL:     doc.String("video"),
		Prompt:       doc.String("prompt"),
		CreatedAt:    doc.CreatedAt,
	}

	if creatorDoc, ok := doc.Child("creator"); ok {
		creator := UserFromDocument(creatorDoc)
		post.Creator = &creator
	}

	return post
}

// VideoPostForm carries the raw input for creating a post: title, prompt,
// the creator's user document ID, and the two assets pending upload.
type VideoPostForm struct {
	Title     string
	Prompt    string
	CreatorID string
	Thumbnail Asset
	Video     Asset
}
