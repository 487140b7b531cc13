package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/verifiedwealth/vw/internal/models"
)

// ListFeed retrieves the community feed, optionally sorted and filtered
// by topic.
func (c *Client) ListFeed(ctx context.Context, sort models.FeedSort, topic string) ([]models.Post, error) {
	params := url.Values{}
	if sort != "" {
		params.Set("sort", string(sort))
	}
	if topic != "" {
		params.Set("topic", topic)
	}

	path := "/community"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	var posts []models.Post
	if err := c.get(ctx, path, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// CreatePost publishes a new post to the feed.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.post(ctx, "/community", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetThread retrieves a post with its comments.
func (c *Client) GetThread(ctx context.Context, postID string) (*models.Thread, error) {
	var thread models.Thread
	if err := c.get(ctx, fmt.Sprintf("/community/%s", postID), &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// CreateComment replies to a post.
func (c *Client) CreateComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.post(ctx, fmt.Sprintf("/community/%s/comments", postID), req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

type voteRequest struct {
	Delta int `json:"delta"`
}

// VotePost casts an up (+1) or down (-1) vote on a post.
func (c *Client) VotePost(ctx context.Context, postID string, delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("vote delta must be 1 or -1, got %d", delta)
	}
	return c.post(ctx, fmt.Sprintf("/community/%s/vote", postID), voteRequest{Delta: delta}, nil)
}

// VoteComment casts an up (+1) or down (-1) vote on a comment.
func (c *Client) VoteComment(ctx context.Context, commentID string, delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("vote delta must be 1 or -1, got %d", delta)
	}
	return c.post(ctx, fmt.Sprintf("/community/comments/%s/vote", commentID), voteRequest{Delta: delta}, nil)
}
