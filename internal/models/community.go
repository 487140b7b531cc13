package models

import "time"

// FeedSort orders the community feed.
type FeedSort string

const (
	FeedSortHot FeedSort = "hot"
	FeedSortNew FeedSort = "new"
	FeedSortTop FeedSort = "top"
)

// Post is a community feed post.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Alias        string    `json:"alias"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Topic        string    `json:"topic"`
	Verified     bool      `json:"verified"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is a reply on a community post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Alias     string    `json:"alias"`
	Body      string    `json:"body"`
	Verified  bool      `json:"verified"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Thread is a post together with its comments.
type Thread struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}
